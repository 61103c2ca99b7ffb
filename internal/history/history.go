// Package history keeps the append-only sentiment time series for a session.
package history

import (
	"sync"
	"time"

	"stock-insight/internal/types"
)

// Log is an append-only, time-ordered sequence of sentiment samples. Append
// order is chronological order; nothing is ever deleted, so the log grows for
// the lifetime of the process.
type Log struct {
	mu      sync.RWMutex
	samples []types.SentimentSample
}

// NewLog creates an empty log.
func NewLog() *Log {
	return &Log{}
}

// Append records one sample.
func (l *Log) Append(sample types.SentimentSample) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.samples = append(l.samples, sample)
}

// Record appends a sample for value stamped with the current time.
func (l *Log) Record(value types.SentimentValue) {
	l.Append(types.SentimentSample{Time: time.Now(), Value: value})
}

// All returns a copy of every sample in append order. Reads never consume or
// truncate the log; repeated calls see the same prefix.
func (l *Log) All() []types.SentimentSample {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]types.SentimentSample, len(l.samples))
	copy(out, l.samples)
	return out
}

// Len returns the number of samples recorded so far.
func (l *Log) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.samples)
}
