package di

import (
	"fmt"

	"StockPulse/internal/domain/service"
	"StockPulse/internal/handler/api"
	"StockPulse/internal/services/forecast"
	"StockPulse/internal/services/indicators"
	"StockPulse/internal/services/news"
	"StockPulse/internal/services/recommend"
	"StockPulse/internal/services/sentiment"
	"StockPulse/internal/services/signals"
	"StockPulse/internal/services/strength"
	"StockPulse/internal/usecase"
	"StockPulse/pkg/cache"
	"StockPulse/pkg/config"
	xhttp "StockPulse/pkg/http"
	applogger "StockPulse/pkg/logger"
	"StockPulse/pkg/server"
)

// ProvideLogger creates the application logger.
func ProvideLogger(cfg *config.Config) (*applogger.Logger, error) {
	l, err := applogger.New(&applogger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	})
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	return l, nil
}

// ProvideCache creates the configured cache backend.
func ProvideCache(cfg *config.Config) (cache.Service, error) {
	if cfg.Cache.Backend == "redis" {
		c, err := cache.NewRedisCache(cache.RedisConfig{
			Addr:     cfg.Cache.Redis.Addr,
			Password: cfg.Cache.Redis.Password,
			DB:       cfg.Cache.Redis.DB,
		})
		if err != nil {
			return nil, fmt.Errorf("redis cache: %w", err)
		}
		return c, nil
	}
	return cache.NewMemoryCache(cfg.Cache.TTL), nil
}

// ProvideNewsSource creates the Google News RSS headline source.
func ProvideNewsSource(cfg *config.Config, l *applogger.Logger) service.HeadlineSource {
	return news.NewGoogleNews(cfg.News.BaseURL, cfg.News.MaxHeadlines, cfg.News.Timeout, l)
}

// ProvidePolarityScorer creates the lexicon analyzer with the configured
// finance-domain overrides.
func ProvidePolarityScorer(cfg *config.Config) service.PolarityScorer {
	return sentiment.NewAnalyzer(cfg.Sentiment.Lexicon)
}

// ProvideStrengthScorer creates the news divergence scorer.
func ProvideStrengthScorer(src service.HeadlineSource, polarity service.PolarityScorer, cfg *config.Config, l *applogger.Logger) *strength.Scorer {
	return strength.NewScorer(src, polarity, cfg.News.LookbackDays, cfg.News.MaxHeadlines, l)
}

// ProvideAnalyzeUseCase creates the analysis pipeline use case.
func ProvideAnalyzeUseCase(
	ind *indicators.Engine,
	fc *forecast.Engine,
	str *strength.Scorer,
	det *signals.Detector,
	rec *recommend.Engine,
	cfg *config.Config,
	l *applogger.Logger,
) *usecase.AnalyzeUseCase {
	return usecase.NewAnalyzeUseCase(ind, fc, str, det, rec, cfg.Analytics.ForecastDays, cfg.Analytics.HistoryTrim, l)
}

// ProvideHandler creates the Echo HTTP handler with response caching.
func ProvideHandler(l *applogger.Logger, analyzer *usecase.AnalyzeUseCase, trainer *usecase.TrainUseCase, c cache.Service, cfg *config.Config) xhttp.Handler {
	h := api.NewAnalyzeEchoHandler(l, analyzer, trainer)
	h.SetCache(c, cfg.Cache.TTL)
	return h
}

// ProvideApp creates the application server.
func ProvideApp(cfg *config.Config, l *applogger.Logger, h xhttp.Handler, c cache.Service) *server.App {
	return server.New(cfg, l, h, c)
}
