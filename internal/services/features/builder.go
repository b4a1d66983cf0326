package features

import (
	"errors"
	"math"

	"StockPulse/internal/domain/models"
)

// ErrInsufficientData is returned when warmup trimming leaves zero usable rows.
var ErrInsufficientData = errors.New("not enough data to calculate technical indicators")

const (
	maShortWindow = 5
	maLongWindow  = 20
	rsiPeriod     = 14
)

// Builder produces the supervised training table and the single inference row
// from a price series. Unlike the per-request indicator path, rows with any
// incomplete window are dropped rather than filled.
type Builder struct{}

func NewBuilder() *Builder { return &Builder{} }

type cleanRow struct {
	models.PriceBar
	features models.FeatureVector
}

// Build computes lag-1/lag-2 close, MA-5, MA-20 and RSI(14), drops every row
// with an undefined value, captures the last clean row as the inference row,
// then attaches next-day targets to the rest. The final clean row never forms
// a training example: its target does not exist yet.
func (b *Builder) Build(series models.PriceSeries) ([]models.TrainingExample, models.InferenceRow, error) {
	clean := b.cleanRows(series)
	if len(clean) == 0 {
		return nil, models.InferenceRow{}, ErrInsufficientData
	}

	last := clean[len(clean)-1]
	inference := models.InferenceRow{
		Date:     last.Date,
		Close:    last.Close,
		Features: last.features,
	}

	examples := make([]models.TrainingExample, 0, len(clean)-1)
	for i := 0; i < len(clean)-1; i++ {
		next := clean[i+1]
		up := 0
		if next.Close > clean[i].Close {
			up = 1
		}
		examples = append(examples, models.TrainingExample{
			Features:    clean[i].features,
			TargetPrice: next.Close,
			TargetUp:    up,
		})
	}
	return examples, inference, nil
}

func (b *Builder) cleanRows(series models.PriceSeries) []cleanRow {
	n := len(series)
	closes := series.Closes()

	var clean []cleanRow
	for i := 0; i < n; i++ {
		fv := models.FeatureVector{}
		ok := true

		if i >= 1 {
			fv[models.FeatureLag1] = closes[i-1]
		} else {
			ok = false
		}
		if i >= 2 {
			fv[models.FeatureLag2] = closes[i-2]
		} else {
			ok = false
		}
		if ma, defined := trailingMean(closes, i, maShortWindow); defined {
			fv[models.FeatureMA5] = ma
		} else {
			ok = false
		}
		if ma, defined := trailingMean(closes, i, maLongWindow); defined {
			fv[models.FeatureMA20] = ma
		} else {
			ok = false
		}
		if rsi, defined := strictRSI(closes, i, rsiPeriod); defined {
			fv[models.FeatureRSI] = rsi
		} else {
			ok = false
		}

		if ok {
			clean = append(clean, cleanRow{PriceBar: series[i], features: fv})
		}
	}
	return clean
}

func trailingMean(closes []float64, i, w int) (float64, bool) {
	if i < w-1 {
		return 0, false
	}
	sum := 0.0
	for j := i - w + 1; j <= i; j++ {
		sum += closes[j]
	}
	return sum / float64(w), true
}

// strictRSI has no epsilon smoothing: a window with zero average loss and
// zero average gain is undefined and the row is dropped; zero loss with some
// gain saturates at 100.
func strictRSI(closes []float64, i, period int) (float64, bool) {
	if i < period {
		return 0, false
	}
	var gain, loss float64
	for j := i - period + 1; j <= i; j++ {
		d := closes[j] - closes[j-1]
		if d > 0 {
			gain += d
		} else {
			loss -= d
		}
	}
	if loss == 0 {
		if gain == 0 {
			return 0, false
		}
		return 100, true
	}
	rs := gain / loss
	rsi := 100 - 100/(1+rs)
	if math.IsNaN(rsi) {
		return 0, false
	}
	return rsi, true
}
