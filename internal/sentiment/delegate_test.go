package sentiment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"stock-insight/internal/types"
)

// scriptedClassifier returns one scripted outcome per call, in order.
type scriptedClassifier struct {
	labels []string
	errs   []error
	calls  int
}

func (c *scriptedClassifier) Classify(ctx context.Context, text string) (string, error) {
	i := c.calls
	c.calls++
	if i >= len(c.errs) {
		return "", errors.New("unexpected extra classify call")
	}
	return c.labels[i], c.errs[i]
}

func newDelegated(c *scriptedClassifier) *DelegatedScorer {
	s := NewDelegatedScorer(c)
	s.retryDelay = time.Millisecond
	return s
}

func TestDelegatedScoreLabels(t *testing.T) {
	tests := []struct {
		name  string
		label string
		want  types.SentimentValue
	}{
		{"positive label", "The sentiment is Positive.", types.SentimentPositive},
		{"negative label", "NEGATIVE", types.SentimentNegative},
		{"neutral label", "neutral", types.SentimentNeutral},
		{"unrecognized label", "I cannot classify this", types.SentimentNeutral},
		{"positive wins over negative", "positive, not negative", types.SentimentPositive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &scriptedClassifier{labels: []string{tt.label}, errs: []error{nil}}
			got := newDelegated(c).Score(context.Background(), "some news")
			assert.Equal(t, tt.want, got)
			assert.Equal(t, 1, c.calls)
		})
	}
}

func TestDelegatedScoreRetriesOnceOnRateLimit(t *testing.T) {
	c := &scriptedClassifier{
		labels: []string{"", "positive"},
		errs:   []error{types.ErrRateLimited, nil},
	}
	got := newDelegated(c).Score(context.Background(), "some news")
	assert.Equal(t, types.SentimentPositive, got)
	assert.Equal(t, 2, c.calls)
}

func TestDelegatedScoreGivesUpAfterSecondRateLimit(t *testing.T) {
	c := &scriptedClassifier{
		labels: []string{"", ""},
		errs:   []error{types.ErrRateLimited, types.ErrRateLimited},
	}
	got := newDelegated(c).Score(context.Background(), "some news")
	assert.Equal(t, types.SentimentNeutral, got)
	assert.Equal(t, 2, c.calls, "exactly one retry, no more")
}

func TestDelegatedScoreSwallowsOtherErrors(t *testing.T) {
	c := &scriptedClassifier{
		labels: []string{""},
		errs:   []error{errors.New("connection refused")},
	}
	got := newDelegated(c).Score(context.Background(), "some news")
	assert.Equal(t, types.SentimentNeutral, got)
	assert.Equal(t, 1, c.calls, "no retry for non-rate-limit failures")
}

func TestDelegatedScoreCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := &scriptedClassifier{
		labels: []string{"", ""},
		errs:   []error{types.ErrRateLimited, nil},
	}
	s := NewDelegatedScorer(c)
	s.retryDelay = time.Hour // must not actually wait

	got := s.Score(ctx, "some news")
	assert.Equal(t, types.SentimentNeutral, got)
}
