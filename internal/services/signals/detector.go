package signals

import "StockPulse/internal/domain/models"

const (
	minRows          = 20
	oversoldLevel    = 30
	overboughtLevel  = 70
	volumeSpikeRatio = 1.5
)

// Detector flags discrete pattern events by comparing the last two indicator
// rows. Output order is fixed: crossover, then RSI, then volume.
type Detector struct{}

func NewDetector() *Detector { return &Detector{} }

// Detect returns zero to four signals; fewer than minRows rows yields none.
// Golden and Death Cross are mutually exclusive by construction, as are the
// two RSI signals.
func (d *Detector) Detect(rows []models.IndicatorRow) []models.Signal {
	if len(rows) < minRows {
		return nil
	}
	current := rows[len(rows)-1]
	prev := rows[len(rows)-2]

	var out []models.Signal

	if prev.MA50 < prev.MA200 && current.MA50 > current.MA200 {
		out = append(out, models.Signal{
			Type:      "Golden Cross",
			Sentiment: models.SignalBullish,
			Desc:      "Long-term trend just turned positive.",
		})
	}
	if prev.MA50 > prev.MA200 && current.MA50 < current.MA200 {
		out = append(out, models.Signal{
			Type:      "Death Cross",
			Sentiment: models.SignalBearish,
			Desc:      "Long-term trend is slowing down.",
		})
	}

	if current.RSI < oversoldLevel {
		out = append(out, models.Signal{
			Type:      "RSI Oversold",
			Sentiment: models.SignalBullish,
			Desc:      "Stock is currently 'on sale' (undervalued).",
		})
	} else if current.RSI > overboughtLevel {
		out = append(out, models.Signal{
			Type:      "RSI Overbought",
			Sentiment: models.SignalBearish,
			Desc:      "Stock is 'out of breath' (overextended).",
		})
	}

	if current.VolumeMA20 > 0 && float64(current.Volume) > current.VolumeMA20*volumeSpikeRatio {
		out = append(out, models.Signal{
			Type:      "Volume Spike",
			Sentiment: models.SignalNeutral,
			Desc:      "Huge crowd activity detected.",
		})
	}

	return out
}
