//go:build wireinject
// +build wireinject

package di

import (
	"StockPulse/internal/services/features"
	"StockPulse/internal/services/forecast"
	"StockPulse/internal/services/indicators"
	"StockPulse/internal/services/predictor"
	"StockPulse/internal/services/recommend"
	"StockPulse/internal/services/signals"
	"StockPulse/internal/usecase"
	"StockPulse/pkg/config"
	"StockPulse/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		// Ambient infrastructure
		ProvideLogger,
		ProvideCache,

		// Analysis services
		indicators.NewEngine,
		forecast.NewEngine,
		signals.NewDetector,
		recommend.NewEngine,
		ProvideNewsSource,
		ProvidePolarityScorer,
		ProvideStrengthScorer,

		// Training path
		features.NewBuilder,
		predictor.New,

		// Use cases
		ProvideAnalyzeUseCase,
		usecase.NewTrainUseCase,

		// HTTP surface
		ProvideHandler,
		ProvideApp,
	)
	return &server.App{}, nil
}
