package models

// Signal sentiment labels.
const (
	SignalBullish = "Bullish"
	SignalBearish = "Bearish"
	SignalNeutral = "Neutral"
)

// Signal is one discrete pattern event detected on the indicator series.
type Signal struct {
	Type      string
	Sentiment string
	Desc      string
}

// Recommendation is the deterministic rule-table outcome for a request.
type Recommendation struct {
	Action       string
	Color        string
	Risk         string
	Why          string
	BargainMeter string
	TargetPrice  float64
}
