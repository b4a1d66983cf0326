package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

const minimalYAML = `
environment: test
sentiment:
  lexicon:
    bull: 4.0
    bear: -4.0
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, minimalYAML))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Fatalf("port %d, want default 8080", cfg.Server.Port)
	}
	if cfg.Cache.Backend != "memory" || cfg.Cache.TTL != 10*time.Minute {
		t.Fatalf("cache defaults wrong: %+v", cfg.Cache)
	}
	if cfg.News.LookbackDays != 60 || cfg.News.MaxHeadlines != 20 {
		t.Fatalf("news defaults wrong: %+v", cfg.News)
	}
	if cfg.Analytics.ForecastDays != 7 || cfg.Analytics.HistoryTrim != 100 {
		t.Fatalf("analytics defaults wrong: %+v", cfg.Analytics)
	}
	if cfg.Sentiment.Lexicon["bull"] != 4.0 {
		t.Fatalf("lexicon not loaded: %v", cfg.Sentiment.Lexicon)
	}
}

func TestLoadRejectsMissingLexicon(t *testing.T) {
	if _, err := Load(writeConfig(t, "environment: test\n")); err == nil {
		t.Fatal("expected validation error for missing lexicon")
	}
}

func TestLoadRejectsBadCacheBackend(t *testing.T) {
	yaml := minimalYAML + "cache:\n  backend: memcached\n"
	if _, err := Load(writeConfig(t, yaml)); err == nil {
		t.Fatal("expected validation error for unknown cache backend")
	}
}

func TestLoadWithEnvOverrides(t *testing.T) {
	t.Setenv("REDIS_ADDR", "redis.internal:6379")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := LoadWithEnv(writeConfig(t, minimalYAML))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Cache.Redis.Addr != "redis.internal:6379" {
		t.Fatalf("redis addr %q", cfg.Cache.Redis.Addr)
	}
	if cfg.Logging.Level != "debug" {
		t.Fatalf("log level %q", cfg.Logging.Level)
	}
}
