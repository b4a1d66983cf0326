package features

import (
	"errors"
	"math"
	"testing"
	"time"

	"StockPulse/internal/domain/models"
)

func testSeries(closes []float64) models.PriceSeries {
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	series := make(models.PriceSeries, len(closes))
	for i, c := range closes {
		series[i] = models.PriceBar{Date: start.AddDate(0, 0, i), Close: c, Volume: 500}
	}
	return series
}

func zigzag(n int) []float64 {
	closes := make([]float64, n)
	for i := range closes {
		closes[i] = 50 + float64(i%3) + float64(i)*0.25
	}
	return closes
}

func TestBuildInsufficientData(t *testing.T) {
	_, _, err := NewBuilder().Build(testSeries(zigzag(10)))
	if !errors.Is(err, ErrInsufficientData) {
		t.Fatalf("expected ErrInsufficientData, got %v", err)
	}
}

func TestBuildCounts(t *testing.T) {
	n := 60
	examples, _, err := NewBuilder().Build(testSeries(zigzag(n)))
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	// rows warm up at index 19 (MA-20), so cleaned = n-19 and the final
	// cleaned row is held back as the inference row
	wantClean := n - 19
	if len(examples) != wantClean-1 {
		t.Fatalf("examples = %d, want %d", len(examples), wantClean-1)
	}
}

func TestInferenceRowMatchesLastCleanRow(t *testing.T) {
	closes := zigzag(45)
	series := testSeries(closes)
	examples, inference, err := NewBuilder().Build(series)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if !inference.Date.Equal(series[len(series)-1].Date) {
		t.Fatalf("inference date %v, want last bar date", inference.Date)
	}
	if inference.Close != closes[len(closes)-1] {
		t.Fatalf("inference close %v", inference.Close)
	}
	for _, name := range models.FeatureOrder {
		if _, ok := inference.Features[name]; !ok {
			t.Fatalf("inference row missing %s", name)
		}
	}
	// lag-1 of the inference row is the close before the last bar
	if got := inference.Features[models.FeatureLag1]; got != closes[len(closes)-2] {
		t.Fatalf("lag_1 = %v, want %v", got, closes[len(closes)-2])
	}
	for i, ex := range examples {
		for _, name := range models.FeatureOrder {
			v, ok := ex.Features[name]
			if !ok || math.IsNaN(v) {
				t.Fatalf("example %d has undefined %s", i, name)
			}
		}
	}
}

func TestTargetsAreNextDay(t *testing.T) {
	closes := zigzag(40)
	examples, _, err := NewBuilder().Build(testSeries(closes))
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	// first clean row is index 19; its target is the close at index 20
	first := examples[0]
	if first.TargetPrice != closes[20] {
		t.Fatalf("target price %v, want %v", first.TargetPrice, closes[20])
	}
	wantUp := 0
	if closes[20] > closes[19] {
		wantUp = 1
	}
	if first.TargetUp != wantUp {
		t.Fatalf("target up %d, want %d", first.TargetUp, wantUp)
	}
}

func TestStrictRSISaturation(t *testing.T) {
	// monotonically rising closes: zero losses, RSI pinned at 100
	closes := make([]float64, 30)
	for i := range closes {
		closes[i] = 10 + float64(i)
	}
	_, inference, err := NewBuilder().Build(testSeries(closes))
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if got := inference.Features[models.FeatureRSI]; got != 100 {
		t.Fatalf("rsi = %v, want 100", got)
	}
}

func TestFlatSeriesDropsAllRows(t *testing.T) {
	// identical closes: RSI window has zero gain and zero loss everywhere
	closes := make([]float64, 30)
	for i := range closes {
		closes[i] = 25
	}
	_, _, err := NewBuilder().Build(testSeries(closes))
	if !errors.Is(err, ErrInsufficientData) {
		t.Fatalf("expected ErrInsufficientData, got %v", err)
	}
}
