package service

import (
	"context"
	"time"

	"StockPulse/internal/domain/models"
)

// HeadlineSource fetches recent news headlines for a symbol published since
// the given date. Implementations fail soft: transport errors surface as an
// error, and callers proceed with an empty list.
type HeadlineSource interface {
	Fetch(ctx context.Context, symbol string, since time.Time) ([]models.Headline, error)
}

// PolarityScorer maps a text to a compound polarity value in [-1, 1].
type PolarityScorer interface {
	Compound(text string) float64
}
