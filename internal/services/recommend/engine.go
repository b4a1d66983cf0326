package recommend

import (
	"StockPulse/internal/domain/models"
	"StockPulse/pkg/util"
)

const (
	fastRiseThreshold = 5.0
	fastDropThreshold = -5.0
	oversoldLevel     = 30.0
	overboughtLevel   = 70.0
	quietMoodLevel    = 45.0
	goodMoodLevel     = 55.0
	happyMoodLevel    = 60.0
)

type rule struct {
	match  func(speed, rsi, mood float64) bool
	action string
	color  string
	risk   string
	why    string
}

// Rules are evaluated top to bottom, first match wins.
var rules = []rule{
	{
		match:  func(speed, rsi, _ float64) bool { return speed > fastRiseThreshold && rsi > overboughtLevel },
		action: "BE CAREFUL",
		color:  "yellow",
		risk:   "High",
		why:    "It's rising fast but getting 'out of breath' (Overbought).",
	},
	{
		match:  func(speed, _, mood float64) bool { return speed > fastRiseThreshold && mood < quietMoodLevel },
		action: "STRONG BUY",
		color:  "emerald",
		risk:   "Low",
		why:    "A 'Silent Winner'—climbing despite quiet news.",
	},
	{
		match:  func(speed, _, _ float64) bool { return speed > fastRiseThreshold },
		action: "GREAT BUY",
		color:  "emerald",
		risk:   "Medium",
		why:    "Strong momentum backed by positive news.",
	},
	{
		match:  func(_, rsi, mood float64) bool { return rsi < oversoldLevel && mood > goodMoodLevel },
		action: "BUY THE DIP",
		color:  "emerald",
		risk:   "Medium",
		why:    "Price dropped but news is still good—likely a sale.",
	},
	{
		match:  func(_, rsi, _ float64) bool { return rsi < oversoldLevel },
		action: "WAIT AND WATCH",
		color:  "orange",
		risk:   "High",
		why:    "Price is cheap, but the news is bad. Wait for the bottom.",
	},
	{
		match:  func(speed, _, mood float64) bool { return speed < fastDropThreshold && mood > happyMoodLevel },
		action: "DANGER: SELL",
		color:  "red",
		risk:   "Extreme",
		why:    "A 'Bull Trap.' Headlines are happy, but the price is falling.",
	},
}

var holdRule = rule{
	action: "HOLD",
	color:  "blue",
	risk:   "Low",
	why:    "The stock is currently stable with no strong signals.",
}

// Engine turns the latest momentum, RSI and news mood into a plain
// language recommendation.
type Engine struct{}

func NewEngine() *Engine { return &Engine{} }

// Decide picks the first matching rule. speed is the 60-day price change
// in percent, mood the news sentiment score on a 0..100 scale. The target
// price falls back to the last close when no forecast is available.
func (e *Engine) Decide(rsi, speed float64, mood int, forecast []models.ForecastPoint, lastClose float64) models.Recommendation {
	matched := holdRule
	for _, r := range rules {
		if r.match(speed, rsi, float64(mood)) {
			matched = r
			break
		}
	}

	meter := "Fair Price"
	switch {
	case rsi < oversoldLevel:
		meter = "On Sale"
	case rsi > overboughtLevel:
		meter = "Expensive"
	}

	target := util.Round2(lastClose)
	if len(forecast) > 0 {
		target = forecast[0].Price
	}

	return models.Recommendation{
		Action:       matched.action,
		Color:        matched.color,
		Risk:         matched.risk,
		Why:          matched.why,
		BargainMeter: meter,
		TargetPrice:  target,
	}
}
