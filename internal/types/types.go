package types

import (
	"time"

	"github.com/shopspring/decimal"
)

// SentimentValue is the discrete polarity of a block of text.
type SentimentValue int

const (
	SentimentNegative SentimentValue = -1
	SentimentNeutral  SentimentValue = 0
	SentimentPositive SentimentValue = 1
)

// Signal is the recommended trading action derived from one analysis cycle.
type Signal string

const (
	SignalBuy  Signal = "BUY"
	SignalSell Signal = "SELL"
	SignalHold Signal = "HOLD"
)

// Quote is an immutable snapshot of a symbol's daily quote. It is replaced
// wholesale on each lookup, never mutated.
type Quote struct {
	Symbol           string  `json:"symbol"`
	Open             float64 `json:"open"`
	High             float64 `json:"high"`
	Low              float64 `json:"low"`
	Price            float64 `json:"price"`
	Volume           int64   `json:"volume"`
	LatestTradingDay string  `json:"latest_trading_day"`
	PreviousClose    float64 `json:"previous_close"`
	Change           float64 `json:"change"`
	ChangePercent    float64 `json:"change_percent"`
}

// Article is a news item sourced from a provider. Immutable after decode.
type Article struct {
	Headline    string    `json:"headline"`
	Summary     string    `json:"summary"`
	URL         string    `json:"url"`
	PublishedAt time.Time `json:"published_at"`
}

// SentimentSample is one point of the sentiment history time series.
type SentimentSample struct {
	Time  time.Time      `json:"time"`
	Value SentimentValue `json:"sentiment"`
}

// Position is a held quantity of one instrument. Price is the entry price
// recorded at the first buy; later buys increment shares without averaging.
type Position struct {
	Shares int             `json:"shares"`
	Price  decimal.Decimal `json:"price"`
}

// AnalysisResult is the outcome of one completed analysis cycle.
type AnalysisResult struct {
	Quote     Quote          `json:"quote"`
	Articles  []Article      `json:"articles"`
	Sentiment SentimentValue `json:"sentiment"`
	Signal    Signal         `json:"signal"`
	Prediction *float64      `json:"prediction,omitempty"`
	// PredictionError carries the model service's failure message. The
	// sentiment/signal/history updates of the cycle stand regardless.
	PredictionError string `json:"prediction_error,omitempty"`
	Time            int64  `json:"time"`
}
