package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	models "StockPulse/internal/domain/models"
	"StockPulse/internal/service/metrics"
	"StockPulse/internal/services/predictor"
	"StockPulse/internal/usecase"
	"StockPulse/pkg/cache"
	xhttp "StockPulse/pkg/http"
	xlogger "StockPulse/pkg/logger"
)

// AnalyzeEchoHandler implements Echo-based HTTP handlers following Clean Architecture.
type AnalyzeEchoHandler struct {
	logger   *xlogger.Logger
	analyzer *usecase.AnalyzeUseCase
	trainer  *usecase.TrainUseCase
	cache    cache.Service
	cacheTTL time.Duration
}

func NewAnalyzeEchoHandler(logger *xlogger.Logger, analyzer *usecase.AnalyzeUseCase, trainer *usecase.TrainUseCase) *AnalyzeEchoHandler {
	metrics.Register()
	return &AnalyzeEchoHandler{logger: logger, analyzer: analyzer, trainer: trainer}
}

// SetCache enables response caching for the analyze endpoint.
func (h *AnalyzeEchoHandler) SetCache(c cache.Service, ttl time.Duration) {
	h.cache = c
	h.cacheTTL = ttl
}

func (h *AnalyzeEchoHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api")
	g.POST("/analyze-raw", h.Analyze)
	g.POST("/train", h.Train)
	g.POST("/predict-next", h.PredictNext)
	e.GET("/health", h.Health)
}

func (h *AnalyzeEchoHandler) Analyze(c echo.Context) error {
	start := time.Now()
	endpoint := "analyze"
	defer func() { metrics.AnalysisLatency.WithLabelValues(endpoint).Observe(time.Since(start).Seconds()) }()

	req := &models.AnalyzeRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	// The payload is fully client-supplied, so the last bar date is enough
	// to key a cached analysis.
	cacheKey := "analyze:" + req.Ticker + ":" + req.History[len(req.History)-1].Date
	if h.cache != nil {
		if b, ok, err := h.cache.Get(c.Request().Context(), cacheKey); err != nil {
			h.logger.Warn("analyze cache_get_error", xlogger.Error(err))
		} else if ok {
			h.logger.Debug("analyze cache_hit", xlogger.String("key", cacheKey))
			return xhttp.SuccessResponse(c, json.RawMessage(b))
		}
	}

	res, err := h.analyzer.Analyze(c.Request().Context(), req)
	if err != nil {
		metrics.AnalysisErrors.WithLabelValues(endpoint).Inc()
		h.logger.Error("analyze usecase error", xlogger.String("symbol", req.Ticker), xlogger.Error(err))
		return xhttp.AppErrorResponse(c, xhttp.BadRequestError(err.Error()).WithError(err))
	}

	if h.cache != nil {
		if b, err := json.Marshal(res); err == nil {
			if err := h.cache.Set(c.Request().Context(), cacheKey, b, h.cacheTTL); err != nil {
				h.logger.Warn("analyze cache_set_error", xlogger.Error(err))
			}
		}
	}
	return xhttp.SuccessResponse(c, res)
}

func (h *AnalyzeEchoHandler) Train(c echo.Context) error {
	start := time.Now()
	endpoint := "train"
	defer func() { metrics.AnalysisLatency.WithLabelValues(endpoint).Observe(time.Since(start).Seconds()) }()

	req := &models.AnalyzeRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	res, err := h.trainer.Train(c.Request().Context(), req)
	if err != nil {
		metrics.AnalysisErrors.WithLabelValues(endpoint).Inc()
		h.logger.Error("train usecase error", xlogger.String("symbol", req.Ticker), xlogger.Error(err))
		return xhttp.AppErrorResponse(c, xhttp.BadRequestError(err.Error()).WithError(err))
	}
	return xhttp.SuccessResponse(c, res)
}

func (h *AnalyzeEchoHandler) PredictNext(c echo.Context) error {
	start := time.Now()
	endpoint := "predict"
	defer func() { metrics.AnalysisLatency.WithLabelValues(endpoint).Observe(time.Since(start).Seconds()) }()

	req := &models.AnalyzeRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	res, err := h.trainer.PredictNext(c.Request().Context(), req)
	if err != nil {
		metrics.AnalysisErrors.WithLabelValues(endpoint).Inc()
		if errors.Is(err, predictor.ErrNotTrained) {
			return xhttp.AppErrorResponse(c, xhttp.BadRequestError("model not trained yet").WithError(err))
		}
		h.logger.Error("predict usecase error", xlogger.String("symbol", req.Ticker), xlogger.Error(err))
		return xhttp.AppErrorResponse(c, xhttp.BadRequestError(err.Error()).WithError(err))
	}
	return xhttp.SuccessResponse(c, res)
}

func (h *AnalyzeEchoHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
