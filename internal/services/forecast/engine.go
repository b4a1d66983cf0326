package forecast

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"StockPulse/internal/domain/models"
	"StockPulse/pkg/util"
)

const (
	trendLookback    = 30
	momentumLookback = 5
	momentumDamping  = 0.5
)

// Engine projects a short price path from a linear trend over the trailing
// closes. Forecasting is best effort: any precondition failure or degenerate
// fit yields an empty path, never an error.
type Engine struct {
	lookback int
}

func NewEngine() *Engine {
	return &Engine{lookback: trendLookback}
}

// Project returns exactly `days` forecast points for a series with enough
// history, or nil otherwise. Each point advances the calendar by one day from
// the previous one.
func (e *Engine) Project(series models.PriceSeries, days int) []models.ForecastPoint {
	n := len(series)
	if n < e.lookback || days <= 0 {
		return nil
	}

	closes := series.Closes()
	recent := closes[n-e.lookback:]
	xs := make([]float64, len(recent))
	for i := range xs {
		xs[i] = float64(i)
	}

	alpha, beta := stat.LinearRegression(xs, recent, nil, false)
	if math.IsNaN(alpha) || math.IsNaN(beta) || math.IsInf(alpha, 0) || math.IsInf(beta, 0) {
		return nil
	}

	// computed once from the input series, not re-derived per step
	momentum := (closes[n-1] - closes[n-momentumLookback]) / float64(momentumLookback)
	lastPrice := closes[n-1]
	lastDate := series.Last().Date

	points := make([]models.ForecastPoint, 0, days)
	for i := 0; i < days; i++ {
		pred := alpha + beta*float64(len(recent)+i)
		// a positive recent trend must not be contradicted by the raw fit
		// on short horizons
		if momentum > 0 && pred < lastPrice {
			pred = lastPrice + momentum*momentumDamping
		}
		points = append(points, models.ForecastPoint{
			Date:  lastDate.AddDate(0, 0, i+1),
			Price: util.Round2(pred),
		})
		lastPrice = pred
	}
	return points
}
