package indicators

import (
	"math"

	"StockPulse/internal/domain/models"
)

const (
	rsiPeriod        = 14
	rsiEpsilon       = 1e-9
	momentumLookback = 10
	volWindow        = 21
)

// Engine derives rolling technical features from a price series. Output rows
// always carry defined values: leading windows are backward-filled, then
// forward-filled, then zeroed, so callers never see NaN.
type Engine struct{}

func NewEngine() *Engine { return &Engine{} }

// Compute returns one IndicatorRow per input bar. Missing-window cells are
// filled per column, never dropped.
func (e *Engine) Compute(series models.PriceSeries) []models.IndicatorRow {
	n := len(series)
	if n == 0 {
		return nil
	}

	closes := series.Closes()
	volumes := series.Volumes()

	lag1 := shift(closes, 1)
	lag2 := shift(closes, 2)
	ma5 := rollingMean(closes, minInt(5, n))
	ma20 := rollingMean(closes, minInt(20, n))
	ma50 := rollingMean(closes, minInt(50, n))
	ma200 := rollingMean(closes, minInt(200, n))
	rsi := rollingRSI(closes, rsiPeriod)
	momentum := diffLag(closes, momentumLookback)
	volatility := rollingVolatility(closes, volWindow)
	volMA20 := rollingMean(volumes, minInt(20, n))

	cols := [][]float64{lag1, lag2, ma5, ma20, ma50, ma200, rsi, momentum, volatility, volMA20}
	for _, col := range cols {
		fill(col)
	}

	rows := make([]models.IndicatorRow, n)
	for i := range rows {
		rows[i] = models.IndicatorRow{
			PriceBar:   series[i],
			Lag1:       lag1[i],
			Lag2:       lag2[i],
			MA5:        ma5[i],
			MA20:       ma20[i],
			MA50:       ma50[i],
			MA200:      ma200[i],
			RSI:        rsi[i],
			Momentum:   momentum[i],
			Volatility: volatility[i],
			VolumeMA20: volMA20[i],
		}
	}
	return rows
}

// rollingMean is the simple mean over the trailing w values; NaN until the
// window is full.
func rollingMean(vals []float64, w int) []float64 {
	out := nanSlice(len(vals))
	if w <= 0 || w > len(vals) {
		return out
	}
	sum := 0.0
	for i, v := range vals {
		sum += v
		if i >= w {
			sum -= vals[i-w]
		}
		if i >= w-1 {
			out[i] = sum / float64(w)
		}
	}
	return out
}

// rollingRSI scales average gains against average losses over the trailing
// period. The epsilon keeps an all-gain window at RSI near 100 instead of
// dividing by zero.
func rollingRSI(closes []float64, period int) []float64 {
	n := len(closes)
	out := nanSlice(n)
	if n < 2 {
		return out
	}
	gains := nanSlice(n)
	losses := nanSlice(n)
	for i := 1; i < n; i++ {
		d := closes[i] - closes[i-1]
		if d > 0 {
			gains[i], losses[i] = d, 0
		} else {
			gains[i], losses[i] = 0, -d
		}
	}
	for i := period; i < n; i++ {
		var g, l float64
		for j := i - period + 1; j <= i; j++ {
			g += gains[j]
			l += losses[j]
		}
		rs := (g / float64(period)) / (l/float64(period) + rsiEpsilon)
		out[i] = 100 - 100/(1+rs)
	}
	return out
}

// rollingVolatility is the sample standard deviation of daily percent change
// over the trailing window, expressed as a percentage.
func rollingVolatility(closes []float64, w int) []float64 {
	n := len(closes)
	pct := nanSlice(n)
	for i := 1; i < n; i++ {
		if closes[i-1] != 0 {
			pct[i] = (closes[i] - closes[i-1]) / closes[i-1]
		}
	}
	out := nanSlice(n)
	for i := w; i < n; i++ {
		var sum, count float64
		for j := i - w + 1; j <= i; j++ {
			if !math.IsNaN(pct[j]) {
				sum += pct[j]
				count++
			}
		}
		if count < float64(w) {
			continue
		}
		mean := sum / count
		var ss float64
		for j := i - w + 1; j <= i; j++ {
			d := pct[j] - mean
			ss += d * d
		}
		out[i] = math.Sqrt(ss/(count-1)) * 100
	}
	return out
}

func diffLag(vals []float64, lag int) []float64 {
	out := nanSlice(len(vals))
	for i := lag; i < len(vals); i++ {
		out[i] = vals[i] - vals[i-lag]
	}
	return out
}

func shift(vals []float64, by int) []float64 {
	out := nanSlice(len(vals))
	for i := by; i < len(vals); i++ {
		out[i] = vals[i-by]
	}
	return out
}

// fill replaces NaN cells in place: backward fill, then forward fill, then
// zero. After it runs every cell is defined.
func fill(col []float64) {
	next := math.NaN()
	for i := len(col) - 1; i >= 0; i-- {
		if math.IsNaN(col[i]) {
			col[i] = next
		} else {
			next = col[i]
		}
	}
	prev := math.NaN()
	for i := range col {
		if math.IsNaN(col[i]) {
			col[i] = prev
		} else {
			prev = col[i]
		}
	}
	for i := range col {
		if math.IsNaN(col[i]) {
			col[i] = 0
		}
	}
}

func nanSlice(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = math.NaN()
	}
	return out
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
