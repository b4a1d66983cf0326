package util

import (
	"testing"
	"time"
)

func TestRound2(t *testing.T) {
	if got := Round2(123.4567); got != 123.46 {
		t.Fatalf("unexpected %v", got)
	}
	if got := Round2(-0.005); got != -0.01 && got != 0 {
		t.Fatalf("unexpected %v", got)
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(120, 0, 100); got != 100 {
		t.Fatalf("unexpected %v", got)
	}
	if got := Clamp(-3, 0, 100); got != 0 {
		t.Fatalf("unexpected %v", got)
	}
	if got := Clamp(42, 0, 100); got != 42 {
		t.Fatalf("unexpected %v", got)
	}
}

func TestParseDay(t *testing.T) {
	got, ok := ParseDay("2024-10-10")
	if !ok {
		t.Fatalf("expected ok")
	}
	if FormatDay(got) != "2024-10-10" {
		t.Fatalf("unexpected %v", got)
	}
	if _, ok := ParseDay("next tuesday"); ok {
		t.Fatalf("expected parse failure")
	}
}

func TestParseDayRFC3339(t *testing.T) {
	got, ok := ParseDay("2024-10-10T00:00:00Z")
	if !ok {
		t.Fatalf("expected ok")
	}
	if !got.Equal(time.Date(2024, 10, 10, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected %v", got)
	}
}
