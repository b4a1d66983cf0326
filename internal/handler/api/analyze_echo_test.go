package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"StockPulse/internal/domain/models"
	"StockPulse/internal/services/features"
	"StockPulse/internal/services/forecast"
	"StockPulse/internal/services/indicators"
	"StockPulse/internal/services/predictor"
	"StockPulse/internal/services/recommend"
	"StockPulse/internal/services/sentiment"
	"StockPulse/internal/services/signals"
	"StockPulse/internal/services/strength"
	"StockPulse/internal/usecase"
	"StockPulse/pkg/cache"
	xlogger "StockPulse/pkg/logger"
)

type noNews struct{}

func (noNews) Fetch(context.Context, string, time.Time) ([]models.Headline, error) {
	return nil, nil
}

func newTestHandler(t *testing.T) *AnalyzeEchoHandler {
	t.Helper()
	l, err := xlogger.New(&xlogger.Config{Level: "error", Format: "json", Output: "stderr"})
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	scorer := strength.NewScorer(noNews{}, sentiment.NewAnalyzer(nil), 60, 20, l)
	analyzer := usecase.NewAnalyzeUseCase(
		indicators.NewEngine(), forecast.NewEngine(), scorer,
		signals.NewDetector(), recommend.NewEngine(), 7, 100, l)
	trainer := usecase.NewTrainUseCase(features.NewBuilder(), predictor.New(), l)
	return NewAnalyzeEchoHandler(l, analyzer, trainer)
}

func analyzeBody(n int) string {
	type bar struct {
		Date   string  `json:"date"`
		Open   float64 `json:"open"`
		High   float64 `json:"high"`
		Low    float64 `json:"low"`
		Close  float64 `json:"close"`
		Volume int64   `json:"volume"`
	}
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	bars := make([]bar, n)
	for i := range bars {
		c := 100 + float64(i)*0.4 + float64(i%4)
		bars[i] = bar{
			Date: start.AddDate(0, 0, i).Format("2006-01-02"),
			Open: c, High: c + 1, Low: c - 1, Close: c, Volume: 1000,
		}
	}
	payload := map[string]interface{}{"ticker": "AAPL", "history": bars}
	b, _ := json.Marshal(payload)
	return string(b)
}

func doPost(h echo.HandlerFunc, body string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	_ = h(c)
	return rec
}

func TestAnalyzeEndpoint(t *testing.T) {
	h := newTestHandler(t)
	rec := doPost(h.Analyze, analyzeBody(120))
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d, body %s", rec.Code, rec.Body.String())
	}

	var envelope struct {
		Status int                    `json:"status"`
		Data   models.AnalyzeResponse `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if envelope.Status != http.StatusOK {
		t.Fatalf("envelope status %d", envelope.Status)
	}
	if envelope.Data.Symbol != "AAPL" || len(envelope.Data.Forecast) != 7 {
		t.Fatalf("unexpected payload: symbol=%q forecast=%d", envelope.Data.Symbol, len(envelope.Data.Forecast))
	}
	if envelope.Data.Fundamentals.Description != "No profile available." {
		t.Fatalf("defaults not applied: %q", envelope.Data.Fundamentals.Description)
	}
}

func TestAnalyzeValidation(t *testing.T) {
	h := newTestHandler(t)
	rec := doPost(h.Analyze, `{"history": []}`)

	var envelope struct {
		Status int `json:"status"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if envelope.Status != http.StatusBadRequest {
		t.Fatalf("envelope status %d, want 400", envelope.Status)
	}
}

func TestAnalyzeCaching(t *testing.T) {
	h := newTestHandler(t)
	mc := cache.NewMemoryCache(time.Minute)
	defer mc.Close()
	h.SetCache(mc, time.Minute)

	body := analyzeBody(60)
	first := doPost(h.Analyze, body)
	if first.Code != http.StatusOK {
		t.Fatalf("first call status %d", first.Code)
	}
	if _, ok, _ := mc.Get(context.Background(), "analyze:AAPL:2024-02-29"); !ok {
		t.Fatal("expected cached analysis after first call")
	}

	second := doPost(h.Analyze, body)
	if second.Code != http.StatusOK {
		t.Fatalf("second call status %d", second.Code)
	}
	if first.Body.String() != second.Body.String() {
		t.Fatal("cached response differs from computed response")
	}
}

func TestTrainThenPredictEndpoints(t *testing.T) {
	h := newTestHandler(t)
	body := analyzeBody(80)

	rec := doPost(h.Train, body)
	if rec.Code != http.StatusOK {
		t.Fatalf("train status %d, body %s", rec.Code, rec.Body.String())
	}
	var trained struct {
		Data models.TrainResponse `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &trained); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if trained.Data.Examples != 60 {
		t.Fatalf("examples %d, want 60", trained.Data.Examples)
	}

	rec = doPost(h.PredictNext, body)
	var predicted struct {
		Status int                    `json:"status"`
		Data   models.PredictResponse `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &predicted); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if predicted.Status != http.StatusOK || predicted.Data.PredictedPrice <= 0 {
		t.Fatalf("unexpected prediction: %+v", predicted)
	}
}

func TestPredictWithoutTraining(t *testing.T) {
	h := newTestHandler(t)
	rec := doPost(h.PredictNext, analyzeBody(80))

	var envelope struct {
		Status int `json:"status"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if envelope.Status != http.StatusBadRequest {
		t.Fatalf("envelope status %d, want 400", envelope.Status)
	}
}

func TestHealthEndpoint(t *testing.T) {
	h := newTestHandler(t)
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	if err := h.Health(e.NewContext(req, rec)); err != nil {
		t.Fatalf("health: %v", err)
	}
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "ok") {
		t.Fatalf("health response: %d %s", rec.Code, rec.Body.String())
	}
}
