package models

import (
	"fmt"

	"StockPulse/pkg/util"
)

// Requests and responses for the analysis HTTP endpoints. Defined in domain
// for consistency and reuse across handlers and usecases.

// BarPayload is one raw history row as supplied by the caller.
type BarPayload struct {
	Date   string  `json:"date" validate:"required"`
	Open   float64 `json:"open" validate:"gte=0"`
	High   float64 `json:"high" validate:"gte=0"`
	Low    float64 `json:"low" validate:"gte=0"`
	Close  float64 `json:"close" validate:"gte=0"`
	Volume int64   `json:"volume" validate:"gte=0"`
}

// AnalyzeRequest is the raw payload for /api/analyze-raw, /api/train and
// /api/predict-next. History must already be sorted ascending by date.
type AnalyzeRequest struct {
	Ticker       string       `json:"ticker" validate:"required"`
	History      []BarPayload `json:"history" validate:"required,min=1,dive"`
	CurrentPrice float64      `json:"current_price" validate:"gte=0"`
	CompanyName  string       `json:"company_name"`
	Currency     string       `json:"currency" default:"USD"`
	Sector       string       `json:"sector" default:"Other"`
	Industry     string       `json:"industry" default:"N/A"`
	Website      string       `json:"website" default:"#"`
	MarketCap    interface{}  `json:"market_cap"`
	PERatio      interface{}  `json:"pe_ratio"`
	Description  string       `json:"description" default:"No profile available."`
}

// Series converts the raw history into a PriceSeries. Dates are accepted as
// YYYY-MM-DD or RFC3339; ordering is the caller's contract and not re-checked.
func (r *AnalyzeRequest) Series() (PriceSeries, error) {
	series := make(PriceSeries, 0, len(r.History))
	for i, h := range r.History {
		d, ok := util.ParseDay(h.Date)
		if !ok {
			return nil, fmt.Errorf("history[%d]: invalid date %q", i, h.Date)
		}
		series = append(series, PriceBar{
			Date:   d,
			Open:   h.Open,
			High:   h.High,
			Low:    h.Low,
			Close:  h.Close,
			Volume: h.Volume,
		})
	}
	return series, nil
}

// --- Response DTOs (wire shapes of the analyze output contract) ---

type HistoryPointDTO struct {
	Date  string  `json:"date"`
	Price float64 `json:"price"`
	MA50  float64 `json:"ma50"`
}

type ForecastPointDTO struct {
	Date  string  `json:"date"`
	Price float64 `json:"price"`
}

type HeadlineDTO struct {
	Title     string  `json:"title"`
	Link      string  `json:"link"`
	Publisher string  `json:"publisher"`
	Sentiment string  `json:"sentiment"`
	Score     float64 `json:"score"`
}

type MarketStrengthDTO struct {
	Score          int           `json:"score"`
	RealityScore   int           `json:"reality_score"`
	PosRatio       int           `json:"pos_ratio"`
	NegRatio       int           `json:"neg_ratio"`
	Performance60D float64       `json:"performance_60d"`
	Performance7D  float64       `json:"performance_7d"`
	Insight        string        `json:"insight"`
	Summary        string        `json:"summary"`
	Feed           []HeadlineDTO `json:"feed"`
	Reliability    string        `json:"reliability"`
	RelColor       string        `json:"rel_color"`
}

type TechnicalsDTO struct {
	RSI        float64 `json:"rsi"`
	Volatility float64 `json:"volatility"`
}

type DailyStatsDTO struct {
	Open   float64 `json:"open"`
	High   float64 `json:"high"`
	Low    float64 `json:"low"`
	Volume int64   `json:"volume"`
}

type RecommendationDTO struct {
	Action       string  `json:"action"`
	Color        string  `json:"color"`
	Risk         string  `json:"risk"`
	Why          string  `json:"why"`
	BargainMeter string  `json:"bargain_meter"`
	TargetPrice  float64 `json:"target_price"`
}

type FundamentalsDTO struct {
	Sector      string      `json:"sector"`
	Industry    string      `json:"industry"`
	Website     string      `json:"website"`
	MarketCap   interface{} `json:"market_cap"`
	PERatio     interface{} `json:"pe_ratio"`
	Description string      `json:"description"`
}

type SignalDTO struct {
	Type      string `json:"type"`
	Sentiment string `json:"sentiment"`
	Desc      string `json:"desc"`
}

// AnalyzeResponse is the full per-request analysis output.
type AnalyzeResponse struct {
	Symbol           string             `json:"symbol"`
	CompanyName      string             `json:"company_name"`
	CurrentPrice     float64            `json:"current_price"`
	Currency         string             `json:"currency"`
	History          []HistoryPointDTO  `json:"history"`
	Forecast         []ForecastPointDTO `json:"forecast"`
	Vibe             MarketStrengthDTO  `json:"vibe"`
	Technicals       TechnicalsDTO      `json:"technicals"`
	DailyStats       DailyStatsDTO      `json:"daily_stats"`
	Recommendation   RecommendationDTO  `json:"recommendation"`
	Fundamentals     FundamentalsDTO    `json:"fundamentals"`
	Peers            []string           `json:"peers"`
	Signals          []SignalDTO        `json:"signals"`
	Seasonality      []interface{}      `json:"seasonality"`
	RelativeStrength interface{}        `json:"relative_strength"`
}

// TrainResponse reports a completed training run.
type TrainResponse struct {
	Symbol       string `json:"symbol"`
	Examples     int    `json:"examples"`
	FeatureCount int    `json:"feature_count"`
}

// PredictResponse is the trained-model next-day prediction.
type PredictResponse struct {
	Symbol         string  `json:"symbol"`
	LastClose      float64 `json:"last_close"`
	PredictedPrice float64 `json:"predicted_price"`
	PredictedUp    bool    `json:"predicted_up"`
}
