package predictor

import (
	"errors"
	"math"
	"strings"
	"testing"
	"time"

	"StockPulse/internal/domain/models"
	"StockPulse/internal/services/features"
)

func trainingSeries(n int) models.PriceSeries {
	start := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	series := make(models.PriceSeries, n)
	for i := range series {
		c := 100 + float64(i)*0.4 + float64(i%4)
		series[i] = models.PriceBar{Date: start.AddDate(0, 0, i), Close: c, Volume: 900}
	}
	return series
}

func TestPredictBeforeTrain(t *testing.T) {
	p := New()
	_, _, err := p.Predict(models.InferenceRow{Features: models.FeatureVector{}})
	if !errors.Is(err, ErrNotTrained) {
		t.Fatalf("expected ErrNotTrained, got %v", err)
	}
}

func TestTrainThenPredictRoundTrip(t *testing.T) {
	examples, inference, err := features.NewBuilder().Build(trainingSeries(80))
	if err != nil {
		t.Fatalf("build features: %v", err)
	}

	p := New()
	if err := p.Train(examples); err != nil {
		t.Fatalf("train: %v", err)
	}

	price, _, err := p.Predict(inference)
	if err != nil {
		t.Fatalf("predict: %v", err)
	}
	if math.IsNaN(price) || math.IsInf(price, 0) {
		t.Fatalf("predicted price not finite: %v", price)
	}
	// a rising series should predict somewhere near the last close
	if price < inference.Close*0.5 || price > inference.Close*1.5 {
		t.Fatalf("predicted price %v implausible vs close %v", price, inference.Close)
	}
}

func TestPredictMissingFeature(t *testing.T) {
	examples, inference, err := features.NewBuilder().Build(trainingSeries(80))
	if err != nil {
		t.Fatalf("build features: %v", err)
	}
	p := New()
	if err := p.Train(examples); err != nil {
		t.Fatalf("train: %v", err)
	}

	delete(inference.Features, models.FeatureRSI)
	_, _, err = p.Predict(inference)
	if err == nil || !strings.Contains(err.Error(), "missing feature") {
		t.Fatalf("expected missing feature error, got %v", err)
	}
}

func TestTrainRejectsTinySets(t *testing.T) {
	examples := []models.TrainingExample{
		{Features: models.FeatureVector{"lag_1": 1, "lag_2": 1, "ma_5": 1, "ma_20": 1, "rsi": 50}, TargetPrice: 1},
	}
	if err := New().Train(examples); err == nil {
		t.Fatalf("expected error for tiny training set")
	}
}

func TestClassifierLearnsDirection(t *testing.T) {
	// craft examples directly: up whenever lag_1 is low, with the other
	// features jittered so no column is constant
	var examples []models.TrainingExample
	for i := 0; i < 200; i++ {
		lag1 := float64(i % 10)
		up := 0
		if lag1 < 5 {
			up = 1
		}
		examples = append(examples, models.TrainingExample{
			Features: models.FeatureVector{
				"lag_1": lag1,
				"lag_2": float64((i * 3) % 7),
				"ma_5":  5 + 0.1*float64(i%3),
				"ma_20": 5 + 0.05*float64(i%5),
				"rsi":   50 + float64(i%11),
			},
			TargetPrice: 100 + lag1,
			TargetUp:    up,
		})
	}
	p := New()
	if err := p.Train(examples); err != nil {
		t.Fatalf("train: %v", err)
	}
	_, up, err := p.Predict(models.InferenceRow{Features: models.FeatureVector{
		"lag_1": 1, "lag_2": 3, "ma_5": 5.1, "ma_20": 5, "rsi": 52,
	}})
	if err != nil {
		t.Fatalf("predict: %v", err)
	}
	if !up {
		t.Fatalf("expected up prediction for low lag_1")
	}
	_, up, err = p.Predict(models.InferenceRow{Features: models.FeatureVector{
		"lag_1": 9, "lag_2": 3, "ma_5": 5.1, "ma_20": 5, "rsi": 52,
	}})
	if err != nil {
		t.Fatalf("predict: %v", err)
	}
	if up {
		t.Fatalf("expected down prediction for high lag_1")
	}
}

func TestRetrainSwapsStateSafely(t *testing.T) {
	examples, inference, err := features.NewBuilder().Build(trainingSeries(80))
	if err != nil {
		t.Fatalf("build features: %v", err)
	}
	p := New()
	if err := p.Train(examples); err != nil {
		t.Fatalf("train: %v", err)
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 50; i++ {
			if _, _, err := p.Predict(inference); err != nil {
				t.Errorf("predict during retrain: %v", err)
				return
			}
		}
	}()
	for i := 0; i < 10; i++ {
		if err := p.Train(examples); err != nil {
			t.Fatalf("retrain: %v", err)
		}
	}
	<-done
}
