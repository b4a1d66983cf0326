package models

import "time"

// PriceBar is one daily OHLCV bar.
type PriceBar struct {
	Date   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume int64
}

// PriceSeries is an ordered sequence of daily bars, ascending by date.
// Callers must supply it already sorted with one bar per day; it is never
// mutated after construction.
type PriceSeries []PriceBar

func (s PriceSeries) Closes() []float64 {
	out := make([]float64, len(s))
	for i, b := range s {
		out[i] = b.Close
	}
	return out
}

func (s PriceSeries) Volumes() []float64 {
	out := make([]float64, len(s))
	for i, b := range s {
		out[i] = float64(b.Volume)
	}
	return out
}

func (s PriceSeries) Last() PriceBar {
	return s[len(s)-1]
}

// IndicatorRow is a bar plus its derived rolling features. Every field is
// defined; leading windows are filled rather than left undefined.
type IndicatorRow struct {
	PriceBar
	Lag1       float64
	Lag2       float64
	MA5        float64
	MA20       float64
	MA50       float64
	MA200      float64
	RSI        float64
	Momentum   float64
	Volatility float64
	VolumeMA20 float64
}

// ForecastPoint is one projected day of the forecast path.
type ForecastPoint struct {
	Date  time.Time
	Price float64
}
