package interfaces

import (
	"context"

	"stock-insight/internal/types"
)

// QuoteProvider looks up the current daily quote for a symbol. Failures are
// tagged at the boundary: types.ErrNotFound for an unknown symbol,
// types.ErrRateLimited for provider throttling, anything else is a transport
// or decode failure.
type QuoteProvider interface {
	GetQuote(ctx context.Context, symbol string) (types.Quote, error)
}

// NewsProvider returns recent articles for a symbol, newest first. An empty
// slice is a valid answer, not an error.
type NewsProvider interface {
	RecentArticles(ctx context.Context, symbol string, lookbackDays int) ([]types.Article, error)
}

// PredictionService requests a single scalar price forecast from an external
// model service. Failures with a downstream message come back as
// *types.ServiceError.
type PredictionService interface {
	Predict(ctx context.Context, symbol, algorithm string) (float64, error)
}
