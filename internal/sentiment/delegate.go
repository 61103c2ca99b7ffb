package sentiment

import (
	"context"
	"errors"
	"strings"
	"time"

	"stock-insight/internal/interfaces"
	"stock-insight/internal/logger"
	"stock-insight/internal/types"
)

// retry policy for the delegated strategy: one extra attempt after a fixed
// delay, only on rate limiting.
const (
	maxClassifyAttempts = 2
	defaultRetryDelay   = 1 * time.Second
)

// DelegatedScorer submits text to an external classifier and maps the
// returned label onto a discrete sentiment value. Every failure path resolves
// to neutral; the caller never sees an error.
type DelegatedScorer struct {
	classifier interfaces.TextClassifier
	retryDelay time.Duration
}

var _ interfaces.Scorer = (*DelegatedScorer)(nil)

// NewDelegatedScorer creates a scorer backed by the given classifier.
func NewDelegatedScorer(classifier interfaces.TextClassifier) *DelegatedScorer {
	return &DelegatedScorer{
		classifier: classifier,
		retryDelay: defaultRetryDelay,
	}
}

// Score classifies text, retrying once after a fixed delay when the
// classifier reports rate limiting. The attempt counter bounds the loop.
func (s *DelegatedScorer) Score(ctx context.Context, text string) types.SentimentValue {
	for attempt := 1; attempt <= maxClassifyAttempts; attempt++ {
		label, err := s.classifier.Classify(ctx, text)
		if err == nil {
			return labelToValue(label)
		}

		if errors.Is(err, types.ErrRateLimited) && attempt < maxClassifyAttempts {
			logger.Warn(ctx, "Classifier rate limited, retrying once", "delay", s.retryDelay)
			select {
			case <-time.After(s.retryDelay):
			case <-ctx.Done():
				return types.SentimentNeutral
			}
			continue
		}

		logger.ErrorWithErr(ctx, "Sentiment classification failed, defaulting to neutral", err)
		return types.SentimentNeutral
	}
	return types.SentimentNeutral
}

// labelToValue matches the classifier's label by case-insensitive substring.
// Positive wins over negative when both appear; anything else is neutral.
func labelToValue(label string) types.SentimentValue {
	l := strings.ToLower(label)
	if strings.Contains(l, "positive") {
		return types.SentimentPositive
	}
	if strings.Contains(l, "negative") {
		return types.SentimentNegative
	}
	return types.SentimentNeutral
}
