package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"stock-insight/internal/api"
	"stock-insight/internal/config"
	"stock-insight/internal/engine"
	"stock-insight/internal/history"
	"stock-insight/internal/interfaces"
	"stock-insight/internal/llm"
	"stock-insight/internal/logger"
	"stock-insight/internal/news"
	"stock-insight/internal/portfolio"
	"stock-insight/internal/predict"
	"stock-insight/internal/quote"
	"stock-insight/internal/scheduler"
	"stock-insight/internal/sentiment"
	"stock-insight/internal/trace"
)

func must(err error) {
	if err != nil {
		log.Fatal(err)
	}
}

func main() {
	configPath := flag.String("config", "config.yaml", "path to configuration file")
	flag.Parse()

	_ = godotenv.Load()
	must(logger.Init())
	if err := trace.Init(); err != nil {
		log.Printf("tracer init failed, tracing disabled: %v", err)
	}

	cfg, err := config.Load(*configPath)
	must(err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	quotes, err := quote.FromConfig(cfg)
	must(err)

	newsSvc := buildNewsService(cfg)
	scorer := buildScorer(cfg)
	predictor := predict.NewClient(cfg.Prediction.BaseURL)

	eng := engine.New(cfg, quotes, newsSvc, scorer, predictor, history.NewLog(), portfolio.NewLedger())

	if cfg.Watchlist.Enabled {
		sched := scheduler.New(ctx, cfg, eng)
		must(sched.Start())
		defer sched.Stop()
	}

	handler := api.NewHandler(eng, sentiment.NewLexiconScorer())
	srv := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: api.SetupRoutes(handler),
	}

	go func() {
		logger.Info(ctx, "Server listening", "addr", cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
	<-sigc

	logger.Info(ctx, "Shutting down")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	_ = srv.Shutdown(shutdownCtx)
	_ = trace.Shutdown(shutdownCtx)
}

func buildNewsService(cfg *config.Config) interfaces.NewsProvider {
	primary := news.NewFinnhub(cfg.News.BaseURL, os.Getenv(cfg.News.APIKeyEnv), cfg.News.MaxArticles)

	var scraper *news.Scraper
	if cfg.News.FallbackScraper {
		scraper = news.NewScraper(30*time.Second, cfg.News.MaxArticles)
	}
	return news.NewService(primary, scraper)
}

func buildScorer(cfg *config.Config) interfaces.Scorer {
	if cfg.Sentiment.Strategy == "LLM" {
		return sentiment.NewDelegatedScorer(llm.FromConfig(cfg))
	}
	return sentiment.NewLexiconScorer()
}
