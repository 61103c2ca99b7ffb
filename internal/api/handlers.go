package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"stock-insight/internal/engine"
	"stock-insight/internal/interfaces"
	"stock-insight/internal/logger"
	"stock-insight/internal/types"
)

// Handler holds dependencies for HTTP handlers. The sentiment endpoint
// always scores with the lexicon, independent of the engine's configured
// strategy, so its responses stay deterministic and offline.
type Handler struct {
	engine *engine.Engine
	lexicon interfaces.Scorer
}

// NewHandler creates a new Handler.
func NewHandler(eng *engine.Engine, lexicon interfaces.Scorer) *Handler {
	return &Handler{engine: eng, lexicon: lexicon}
}

// ScoreSentiment handles POST /api/sentiment.
func (h *Handler) ScoreSentiment(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	value := h.lexicon.Score(r.Context(), req.Text)
	respondJSON(w, http.StatusOK, map[string]types.SentimentValue{"sentiment": value})
}

// Analyze handles GET /api/analyze?symbol=S&algorithm=A, running one full
// analysis cycle. Provider failures map to the user-facing messages of the
// error taxonomy.
func (h *Handler) Analyze(w http.ResponseWriter, r *http.Request) {
	symbol := r.URL.Query().Get("symbol")
	if symbol == "" {
		http.Error(w, "symbol is required", http.StatusBadRequest)
		return
	}
	algorithm := r.URL.Query().Get("algorithm")

	result, err := h.engine.Analyze(r.Context(), symbol, algorithm)
	if err != nil {
		status, msg := mapAnalysisError(err)
		logger.ErrorWithErr(r.Context(), "Analysis request failed", err, "symbol", symbol)
		http.Error(w, msg, status)
		return
	}
	respondJSON(w, http.StatusOK, result)
}

func mapAnalysisError(err error) (int, string) {
	switch {
	case errors.Is(err, types.ErrNotFound):
		return http.StatusBadRequest, "Invalid stock symbol. Please check and try again."
	case errors.Is(err, types.ErrRateLimited):
		return http.StatusTooManyRequests, "API rate limit exceeded. Please wait and try again later."
	default:
		return http.StatusBadGateway, "Network error. Please try again."
	}
}

// Buy handles POST /api/portfolio/buy.
func (h *Handler) Buy(w http.ResponseWriter, r *http.Request) {
	symbol, ok := decodeSymbol(w, r)
	if !ok {
		return
	}
	if err := h.engine.Buy(symbol); err != nil {
		http.Error(w, err.Error(), http.StatusConflict)
		return
	}
	respondJSON(w, http.StatusOK, h.engine.Positions())
}

// Sell handles POST /api/portfolio/sell. Selling an unheld symbol succeeds
// as a no-op.
func (h *Handler) Sell(w http.ResponseWriter, r *http.Request) {
	symbol, ok := decodeSymbol(w, r)
	if !ok {
		return
	}
	h.engine.Sell(symbol)
	respondJSON(w, http.StatusOK, h.engine.Positions())
}

// GetPortfolio handles GET /api/portfolio.
func (h *Handler) GetPortfolio(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.engine.Positions())
}

// GetHistory handles GET /api/history.
func (h *Handler) GetHistory(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.engine.History())
}

// HealthCheck handles GET /health.
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func decodeSymbol(w http.ResponseWriter, r *http.Request) (string, bool) {
	var req struct {
		Symbol string `json:"symbol"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return "", false
	}
	if req.Symbol == "" {
		http.Error(w, "symbol is required", http.StatusBadRequest)
		return "", false
	}
	return req.Symbol, true
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
