package noop

import (
	"context"

	"stock-insight/internal/interfaces"
	"stock-insight/internal/logger"
)

// Classifier is the fallback used when no LLM is configured. It always
// answers neutral.
type Classifier struct{}

var _ interfaces.TextClassifier = (*Classifier)(nil)

func NewClassifier() *Classifier {
	return &Classifier{}
}

func (c *Classifier) Classify(ctx context.Context, text string) (string, error) {
	logger.Debug(ctx, "Noop classifier called - always returns neutral")
	return "neutral", nil
}
