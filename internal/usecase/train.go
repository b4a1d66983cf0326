package usecase

import (
	"context"
	"fmt"

	"StockPulse/internal/domain/models"
	"StockPulse/internal/services/features"
	"StockPulse/internal/services/predictor"
	xlogger "StockPulse/pkg/logger"
	"StockPulse/pkg/util"
)

// TrainUseCase wires the feature builder to the trainable predictor. The
// predictor keeps model state in memory, so PredictNext only works after a
// successful Train in the same process.
type TrainUseCase struct {
	builder   *features.Builder
	predictor *predictor.Predictor
	logger    *xlogger.Logger
}

func NewTrainUseCase(b *features.Builder, p *predictor.Predictor, l *xlogger.Logger) *TrainUseCase {
	return &TrainUseCase{builder: b, predictor: p, logger: l}
}

func (uc *TrainUseCase) Train(_ context.Context, req *models.AnalyzeRequest) (*models.TrainResponse, error) {
	series, err := req.Series()
	if err != nil {
		return nil, err
	}

	examples, _, err := uc.builder.Build(series)
	if err != nil {
		return nil, err
	}
	if err := uc.predictor.Train(examples); err != nil {
		return nil, fmt.Errorf("train model: %w", err)
	}

	uc.logger.Info("model trained",
		xlogger.String("symbol", req.Ticker),
		xlogger.Int("examples", len(examples)))

	return &models.TrainResponse{
		Symbol:       req.Ticker,
		Examples:     len(examples),
		FeatureCount: len(models.FeatureOrder),
	}, nil
}

func (uc *TrainUseCase) PredictNext(_ context.Context, req *models.AnalyzeRequest) (*models.PredictResponse, error) {
	series, err := req.Series()
	if err != nil {
		return nil, err
	}

	_, inference, err := uc.builder.Build(series)
	if err != nil {
		return nil, err
	}
	price, up, err := uc.predictor.Predict(inference)
	if err != nil {
		return nil, err
	}

	return &models.PredictResponse{
		Symbol:         req.Ticker,
		LastClose:      util.Round2(inference.Close),
		PredictedPrice: util.Round2(price),
		PredictedUp:    up,
	}, nil
}
