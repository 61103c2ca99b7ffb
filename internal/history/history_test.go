package history

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stock-insight/internal/types"
)

func TestLogAppendOrder(t *testing.T) {
	log := NewLog()
	values := []types.SentimentValue{1, 0, -1, 0, 1}

	base := time.Now()
	for i, v := range values {
		log.Append(types.SentimentSample{Time: base.Add(time.Duration(i) * time.Second), Value: v})
	}

	all := log.All()
	require.Len(t, all, len(values))
	for i, v := range values {
		assert.Equal(t, v, all[i].Value, "sample %d out of order", i)
	}
}

func TestLogReadsDoNotConsume(t *testing.T) {
	log := NewLog()
	log.Record(types.SentimentPositive)
	log.Record(types.SentimentNegative)

	first := log.All()
	second := log.All()
	assert.Equal(t, first, second)
	assert.Equal(t, 2, log.Len())
}

func TestLogAllReturnsCopy(t *testing.T) {
	log := NewLog()
	log.Record(types.SentimentPositive)

	all := log.All()
	all[0].Value = types.SentimentNegative

	assert.Equal(t, types.SentimentPositive, log.All()[0].Value)
}
