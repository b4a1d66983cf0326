package models

// Headline polarity labels.
const (
	SentimentPositive = "Positive"
	SentimentNegative = "Negative"
	SentimentNeutral  = "Neutral"
)

// Headline is one scored news item.
type Headline struct {
	Title     string
	Link      string
	Publisher string
	Sentiment string
	Score     float64
}

// MarketStrength compares news mood against realized price performance.
// Note: no transport (json/http) concerns here.
type MarketStrength struct {
	Score          int
	RealityScore   int
	PosRatio       int
	NegRatio       int
	Performance60D float64
	Performance7D  float64
	Insight        string
	Summary        string
	Feed           []Headline
	Reliability    string
	RelColor       string
}
