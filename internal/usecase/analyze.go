package usecase

import (
	"context"
	"fmt"
	"time"

	"StockPulse/internal/domain/models"
	"StockPulse/internal/services/forecast"
	"StockPulse/internal/services/indicators"
	"StockPulse/internal/services/recommend"
	"StockPulse/internal/services/signals"
	"StockPulse/internal/services/strength"
	xlogger "StockPulse/pkg/logger"
	"StockPulse/pkg/util"
)

// AnalyzeUseCase runs the full per-request analysis pipeline: indicators,
// forecast, news divergence, signals and the final recommendation.
type AnalyzeUseCase struct {
	indicators *indicators.Engine
	forecaster *forecast.Engine
	strength   *strength.Scorer
	detector   *signals.Detector
	recommend  *recommend.Engine

	forecastDays int
	historyTrim  int
	timeout      time.Duration
	logger       *xlogger.Logger
}

func NewAnalyzeUseCase(
	ind *indicators.Engine,
	fc *forecast.Engine,
	str *strength.Scorer,
	det *signals.Detector,
	rec *recommend.Engine,
	forecastDays, historyTrim int,
	l *xlogger.Logger,
) *AnalyzeUseCase {
	if forecastDays <= 0 {
		forecastDays = 7
	}
	if historyTrim <= 0 {
		historyTrim = 100
	}
	return &AnalyzeUseCase{
		indicators:   ind,
		forecaster:   fc,
		strength:     str,
		detector:     det,
		recommend:    rec,
		forecastDays: forecastDays,
		historyTrim:  historyTrim,
		timeout:      30 * time.Second,
		logger:       l,
	}
}

func (uc *AnalyzeUseCase) Analyze(ctx context.Context, req *models.AnalyzeRequest) (*models.AnalyzeResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	series, err := req.Series()
	if err != nil {
		return nil, err
	}
	if len(series) == 0 {
		return nil, fmt.Errorf("no data provided")
	}

	rows := uc.indicators.Compute(series)
	last := rows[len(rows)-1]

	projected := uc.forecaster.Project(series, uc.forecastDays)
	vibe := uc.strength.Assess(ctx, req.Ticker, series)
	rec := uc.recommend.Decide(last.RSI, vibe.Performance60D, vibe.Score, projected, last.Close)
	detected := uc.detector.Detect(rows)

	uc.logger.Info("analysis complete",
		xlogger.String("symbol", req.Ticker),
		xlogger.Int("bars", len(series)),
		xlogger.String("action", rec.Action),
		xlogger.Int("signals", len(detected)))

	resp := &models.AnalyzeResponse{
		Symbol:      req.Ticker,
		CompanyName: req.CompanyName,
		Currency:    req.Currency,
		History:     historyTail(rows, uc.historyTrim),
		Forecast:    forecastDTOs(projected),
		Vibe:        strengthDTO(vibe),
		Technicals: models.TechnicalsDTO{
			RSI:        util.Round2(last.RSI),
			Volatility: util.Round2(last.Volatility),
		},
		DailyStats: models.DailyStatsDTO{
			Open:   util.Round2(last.Open),
			High:   util.Round2(last.High),
			Low:    util.Round2(last.Low),
			Volume: last.Volume,
		},
		Recommendation: models.RecommendationDTO{
			Action:       rec.Action,
			Color:        rec.Color,
			Risk:         rec.Risk,
			Why:          rec.Why,
			BargainMeter: rec.BargainMeter,
			TargetPrice:  rec.TargetPrice,
		},
		Fundamentals: models.FundamentalsDTO{
			Sector:      req.Sector,
			Industry:    req.Industry,
			Website:     req.Website,
			MarketCap:   req.MarketCap,
			PERatio:     req.PERatio,
			Description: req.Description,
		},
		Peers:       []string{},
		Signals:     signalDTOs(detected),
		Seasonality: []interface{}{},
	}

	resp.CurrentPrice = util.Round2(last.Close)
	if req.CurrentPrice > 0 {
		resp.CurrentPrice = util.Round2(req.CurrentPrice)
	}
	return resp, nil
}

func historyTail(rows []models.IndicatorRow, n int) []models.HistoryPointDTO {
	if len(rows) > n {
		rows = rows[len(rows)-n:]
	}
	out := make([]models.HistoryPointDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, models.HistoryPointDTO{
			Date:  util.FormatDay(r.Date),
			Price: util.Round2(r.Close),
			MA50:  util.Round2(r.MA50),
		})
	}
	return out
}

func forecastDTOs(points []models.ForecastPoint) []models.ForecastPointDTO {
	out := make([]models.ForecastPointDTO, 0, len(points))
	for _, p := range points {
		out = append(out, models.ForecastPointDTO{
			Date:  util.FormatDay(p.Date),
			Price: p.Price,
		})
	}
	return out
}

func strengthDTO(v models.MarketStrength) models.MarketStrengthDTO {
	feed := make([]models.HeadlineDTO, 0, len(v.Feed))
	for _, h := range v.Feed {
		feed = append(feed, models.HeadlineDTO{
			Title:     h.Title,
			Link:      h.Link,
			Publisher: h.Publisher,
			Sentiment: h.Sentiment,
			Score:     h.Score,
		})
	}
	return models.MarketStrengthDTO{
		Score:          v.Score,
		RealityScore:   v.RealityScore,
		PosRatio:       v.PosRatio,
		NegRatio:       v.NegRatio,
		Performance60D: util.Round2(v.Performance60D),
		Performance7D:  util.Round2(v.Performance7D),
		Insight:        v.Insight,
		Summary:        v.Summary,
		Feed:           feed,
		Reliability:    v.Reliability,
		RelColor:       v.RelColor,
	}
}

func signalDTOs(detected []models.Signal) []models.SignalDTO {
	out := make([]models.SignalDTO, 0, len(detected))
	for _, s := range detected {
		out = append(out, models.SignalDTO{
			Type:      s.Type,
			Sentiment: s.Sentiment,
			Desc:      s.Desc,
		})
	}
	return out
}
