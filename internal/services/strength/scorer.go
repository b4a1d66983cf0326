package strength

import (
	"context"
	"strings"
	"time"

	"gonum.org/v1/gonum/stat"

	"StockPulse/internal/domain/models"
	domsvc "StockPulse/internal/domain/service"
	xlogger "StockPulse/pkg/logger"
	"StockPulse/pkg/util"
)

const (
	positiveThreshold = 0.05
	negativeThreshold = -0.05
	realityMultiplier = 2.5
	reliabilityBand   = 20
)

// insightRule is one ordered entry of the divergence classification. The
// first matching rule wins; order matters and is covered by tests.
type insightRule struct {
	match   func(perf float64, sentiment int) bool
	insight string
	summary string
}

var insightRules = []insightRule{
	{func(p float64, s int) bool { return p > 10 && s > 60 }, "High Energy", "Prices are climbing fast and the news is cheering it on!"},
	{func(p float64, s int) bool { return p > 10 && s < 45 }, "Quiet Climber", "The stock is rising quietly despite neutral news."},
	{func(p float64, s int) bool { return p < -10 && s > 55 }, "The Trap", "WARNING: News is positive but the price is actually falling."},
	{func(p float64, s int) bool { return p < -10 }, "Panic Mode", "People are scared and selling off quickly."},
	{func(p float64, s int) bool { return p > 0 }, "Steady Growth", "Healthy upward movement matched by news."},
}

const (
	defaultInsight = "Neutral"
	defaultSummary = "Market is moving normally."
)

// Scorer assesses how news mood diverges from realized price performance.
type Scorer struct {
	news         domsvc.HeadlineSource
	polarity     domsvc.PolarityScorer
	lookbackDays int
	maxHeadlines int
	logger       *xlogger.Logger
}

func NewScorer(news domsvc.HeadlineSource, polarity domsvc.PolarityScorer, lookbackDays, maxHeadlines int, l *xlogger.Logger) *Scorer {
	return &Scorer{
		news:         news,
		polarity:     polarity,
		lookbackDays: lookbackDays,
		maxHeadlines: maxHeadlines,
		logger:       l,
	}
}

// Assess scores the symbol's headlines against trailing price performance.
// Headline retrieval fails soft: the assessment degrades to a neutral
// sentiment score of 50 with an empty feed.
func (s *Scorer) Assess(ctx context.Context, symbol string, series models.PriceSeries) models.MarketStrength {
	since := time.Now().AddDate(0, 0, -s.lookbackDays)
	raw, err := s.news.Fetch(ctx, symbol, since)
	if err != nil {
		raw = nil
	}
	if len(raw) > s.maxHeadlines {
		raw = raw[:s.maxHeadlines]
	}

	scores := make([]float64, 0, len(raw))
	feed := make([]models.Headline, 0, len(raw))
	for _, h := range raw {
		title := stripSourceSuffix(h.Title)
		compound := s.polarity.Compound(title)
		scores = append(scores, compound)
		feed = append(feed, models.Headline{
			Title:     title,
			Link:      h.Link,
			Publisher: "News",
			Sentiment: polarityLabel(compound),
			Score:     util.Round2(compound),
		})
	}

	avg := 0.0
	if len(scores) > 0 {
		avg = stat.Mean(scores, nil)
	}
	sentimentScore := util.RoundInt((avg + 1) * 50)

	perf60 := percentChange(series, 60)
	perf7 := percentChange(series, 7)
	reality := util.Clamp(50+perf60*realityMultiplier, 0, 100)
	realityScore := util.RoundInt(reality)

	insight, summary := defaultInsight, defaultSummary
	for _, r := range insightRules {
		if r.match(perf60, sentimentScore) {
			insight, summary = r.insight, r.summary
			break
		}
	}

	reliability, relColor := "Low", "orange"
	if abs(sentimentScore-realityScore) < reliabilityBand {
		reliability, relColor = "High", "emerald"
	}

	return models.MarketStrength{
		Score:          sentimentScore,
		RealityScore:   realityScore,
		PosRatio:       ratio(scores, func(v float64) bool { return v >= positiveThreshold }),
		NegRatio:       ratio(scores, func(v float64) bool { return v <= negativeThreshold }),
		Performance60D: util.Round2(perf60),
		Performance7D:  util.Round2(perf7),
		Insight:        insight,
		Summary:        summary,
		Feed:           feed,
		Reliability:    reliability,
		RelColor:       relColor,
	}
}

// stripSourceSuffix removes the trailing " - <source>" Google News appends.
func stripSourceSuffix(title string) string {
	if i := strings.Index(title, " - "); i >= 0 {
		return title[:i]
	}
	return title
}

func polarityLabel(compound float64) string {
	switch {
	case compound >= positiveThreshold:
		return models.SentimentPositive
	case compound <= negativeThreshold:
		return models.SentimentNegative
	default:
		return models.SentimentNeutral
	}
}

// percentChange compares the latest close to the one `bars` rows earlier,
// counted back from the latest row. Zero when history is too short.
func percentChange(series models.PriceSeries, bars int) float64 {
	n := len(series)
	if n < bars {
		return 0
	}
	base := series[n-bars].Close
	if base == 0 {
		return 0
	}
	return (series[n-1].Close - base) / base * 100
}

func ratio(scores []float64, pred func(float64) bool) int {
	if len(scores) == 0 {
		return 0
	}
	count := 0
	for _, v := range scores {
		if pred(v) {
			count++
		}
	}
	return util.RoundInt(float64(count) / float64(len(scores)) * 100)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
