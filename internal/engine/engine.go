// Package engine drives one analysis cycle per request: quote, news,
// sentiment, signal, history, prediction.
package engine

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/shopspring/decimal"

	"stock-insight/internal/config"
	"stock-insight/internal/history"
	"stock-insight/internal/interfaces"
	"stock-insight/internal/logger"
	"stock-insight/internal/portfolio"
	"stock-insight/internal/signal"
	"stock-insight/internal/trace"
	"stock-insight/internal/types"
)

// Engine owns the session state (sentiment history, portfolio ledger,
// current snapshot) and orchestrates analysis cycles. There are no package
// globals; all state is held here and passed in explicitly.
type Engine struct {
	cfg       *config.Config
	quotes    interfaces.QuoteProvider
	news      interfaces.NewsProvider
	scorer    interfaces.Scorer
	predictor interfaces.PredictionService
	history   *history.Log
	ledger    *portfolio.Ledger

	// gen is a monotonically increasing cycle generation. A cycle whose
	// generation has been superseded discards its snapshot on completion
	// instead of overwriting a newer cycle's result.
	gen     atomic.Uint64
	mu      sync.RWMutex
	current *types.AnalysisResult
}

// New wires an engine from its collaborators.
func New(cfg *config.Config, quotes interfaces.QuoteProvider, news interfaces.NewsProvider,
	scorer interfaces.Scorer, predictor interfaces.PredictionService,
	hist *history.Log, ledger *portfolio.Ledger) *Engine {
	return &Engine{
		cfg:       cfg,
		quotes:    quotes,
		news:      news,
		scorer:    scorer,
		predictor: predictor,
		history:   hist,
		ledger:    ledger,
	}
}

// Analyze runs one full cycle for symbol. A quote failure terminates the
// cycle with nothing mutated. Empty news substitutes neutral sentiment and
// the cycle continues: the neutral sample is appended and the prediction is
// still fetched. A prediction failure is reported in the result without
// rolling back the already-committed sentiment/signal/history updates.
func (e *Engine) Analyze(ctx context.Context, symbol, algorithm string) (*types.AnalysisResult, error) {
	gen := e.gen.Add(1)
	ctx, span := trace.StartSpan(ctx, "analysis-cycle")
	defer span.End()

	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if algorithm == "" {
		algorithm = e.cfg.Prediction.DefaultAlgorithm
	}
	if !config.ValidAlgorithm(algorithm) {
		return nil, fmt.Errorf("invalid algorithm: %s", algorithm)
	}

	q, err := e.quotes.GetQuote(ctx, symbol)
	if err != nil {
		logger.ErrorWithErr(ctx, "Quote lookup failed", err, "symbol", symbol)
		return nil, fmt.Errorf("quote %s: %w", symbol, err)
	}

	articles, err := e.news.RecentArticles(ctx, symbol, e.cfg.News.LookbackDays)
	if err != nil {
		// news failures degrade to an empty result, never abort the cycle
		logger.ErrorWithErr(ctx, "News fetch failed", err, "symbol", symbol)
		articles = nil
	}

	sent := types.SentimentNeutral
	if len(articles) > 0 {
		sent = e.scorer.Score(ctx, articleText(articles))
	} else {
		logger.Warn(ctx, "No news articles found, substituting neutral sentiment", "symbol", symbol)
	}

	sig := signal.Generate(sent, q.High, q.Low)
	e.history.Record(sent)

	result := &types.AnalysisResult{
		Quote:     q,
		Articles:  articles,
		Sentiment: sent,
		Signal:    sig,
		Time:      time.Now().Unix(),
	}

	pred, err := e.predictor.Predict(ctx, symbol, algorithm)
	if err != nil {
		logger.ErrorWithErr(ctx, "Prediction fetch failed", err, "symbol", symbol, "algorithm", algorithm)
		result.PredictionError = predictionMessage(err)
	} else {
		result.Prediction = &pred
	}

	e.mu.Lock()
	if gen == e.gen.Load() {
		e.current = result
	} else {
		logger.Warn(ctx, "Discarding superseded analysis cycle", "symbol", symbol, "generation", gen)
	}
	e.mu.Unlock()

	logger.Info(ctx, "Analysis cycle completed", "symbol", symbol,
		"sentiment", sent, "signal", sig, "articles", len(articles))
	return result, nil
}

// articleText concatenates headlines and summaries, the unit of text handed
// to the sentiment scorer.
func articleText(articles []types.Article) string {
	parts := make([]string, 0, len(articles))
	for _, a := range articles {
		parts = append(parts, a.Headline+". "+a.Summary)
	}
	return strings.Join(parts, " ")
}

// predictionMessage converts a prediction failure into its user-facing text.
func predictionMessage(err error) string {
	var se *types.ServiceError
	if errors.As(err, &se) {
		return se.Message
	}
	return "Error connecting to prediction service."
}

// Current returns the snapshot of the most recent non-superseded cycle, or
// nil before the first one completes.
func (e *Engine) Current() *types.AnalysisResult {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.current
}

// Buy adds one share of symbol at the current snapshot's quote price. It
// fails when no quote for the symbol is loaded — the API-level counterpart
// of the UI disabling the button with no stock selected.
func (e *Engine) Buy(symbol string) error {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))

	e.mu.RLock()
	current := e.current
	e.mu.RUnlock()

	if current == nil || current.Quote.Symbol != symbol {
		return fmt.Errorf("no active quote for %s", symbol)
	}
	e.ledger.Buy(symbol, decimal.NewFromFloat(current.Quote.Price))
	return nil
}

// Sell removes one share of symbol. Selling an unheld instrument is a silent
// no-op, per the ledger's permissive contract.
func (e *Engine) Sell(symbol string) {
	e.ledger.Sell(strings.ToUpper(strings.TrimSpace(symbol)))
}

// Positions returns the ledger's read-only view.
func (e *Engine) Positions() map[string]types.Position {
	return e.ledger.Positions()
}

// History returns all sentiment samples in append order.
func (e *Engine) History() []types.SentimentSample {
	return e.history.All()
}
