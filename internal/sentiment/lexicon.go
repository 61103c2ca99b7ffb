package sentiment

import (
	"context"
	"strings"
	"unicode"

	"stock-insight/internal/interfaces"
	"stock-insight/internal/types"
)

// LexiconScorer scores text with a word-polarity lexicon, sentence by
// sentence, and normalizes the summed score to a discrete value.
type LexiconScorer struct {
	polarity map[string]int
}

var _ interfaces.Scorer = (*LexiconScorer)(nil)

// NewLexiconScorer creates a scorer backed by the built-in lexicon.
func NewLexiconScorer() *LexiconScorer {
	return &LexiconScorer{polarity: polarityLexicon}
}

// Score splits text into sentence-like segments on terminator punctuation,
// scores each segment independently and sums the contributions. A positive
// total maps to +1, negative to -1, zero to 0.
func (s *LexiconScorer) Score(ctx context.Context, text string) types.SentimentValue {
	total := 0
	for _, segment := range splitSentences(text) {
		total += s.scoreSegment(segment)
	}

	switch {
	case total > 0:
		return types.SentimentPositive
	case total < 0:
		return types.SentimentNegative
	default:
		return types.SentimentNeutral
	}
}

// scoreSegment sums the polarity of every lexicon word in one segment.
func (s *LexiconScorer) scoreSegment(segment string) int {
	score := 0
	words := strings.FieldsFunc(strings.ToLower(segment), func(r rune) bool {
		return !unicode.IsLetter(r) && r != '\''
	})
	for _, w := range words {
		score += s.polarity[w]
	}
	return score
}

// splitSentences cuts text on sentence terminators. Input without any
// terminator comes back whole, so punctuation-free text still scores.
func splitSentences(text string) []string {
	var segments []string
	var current strings.Builder

	for _, r := range text {
		current.WriteRune(r)
		if r == '.' || r == '!' || r == '?' {
			if seg := strings.TrimSpace(current.String()); seg != "" {
				segments = append(segments, seg)
			}
			current.Reset()
		}
	}
	if seg := strings.TrimSpace(current.String()); seg != "" {
		segments = append(segments, seg)
	}
	if len(segments) == 0 {
		return []string{text}
	}
	return segments
}
