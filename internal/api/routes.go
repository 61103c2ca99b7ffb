package api

import (
	"github.com/gorilla/mux"
)

// SetupRoutes configures all API routes.
func SetupRoutes(handler *Handler) *mux.Router {
	r := mux.NewRouter()
	r.Use(corsMiddleware)

	r.HandleFunc("/health", handler.HealthCheck).Methods("GET")

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/sentiment", handler.ScoreSentiment).Methods("POST", "OPTIONS")
	api.HandleFunc("/analyze", handler.Analyze).Methods("GET", "OPTIONS")
	api.HandleFunc("/portfolio", handler.GetPortfolio).Methods("GET", "OPTIONS")
	api.HandleFunc("/portfolio/buy", handler.Buy).Methods("POST", "OPTIONS")
	api.HandleFunc("/portfolio/sell", handler.Sell).Methods("POST", "OPTIONS")
	api.HandleFunc("/history", handler.GetHistory).Methods("GET", "OPTIONS")

	return r
}
