package interfaces

import (
	"context"

	"stock-insight/internal/types"
)

// Scorer maps free text to a discrete sentiment value. Implementations are
// total: they never fail, falling back to neutral instead. Safe for
// concurrent use with independent inputs.
type Scorer interface {
	Score(ctx context.Context, text string) types.SentimentValue
}

// TextClassifier is the external natural-language capability used by the
// delegated scorer. It returns a free-form label expected to mention
// positive/negative/neutral. Throttling surfaces as types.ErrRateLimited.
type TextClassifier interface {
	Classify(ctx context.Context, text string) (string, error)
}
