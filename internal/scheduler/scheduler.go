// Package scheduler re-runs the analysis cycle for watchlist symbols on a
// cron schedule.
package scheduler

import (
	"context"

	"github.com/robfig/cron/v3"

	"stock-insight/internal/config"
	"stock-insight/internal/engine"
	"stock-insight/internal/logger"
)

// Scheduler owns the cron runner for the configured watchlist.
type Scheduler struct {
	cron   *cron.Cron
	engine *engine.Engine
	cfg    *config.Config
	ctx    context.Context
}

// New creates a scheduler; it does nothing until Start.
func New(ctx context.Context, cfg *config.Config, eng *engine.Engine) *Scheduler {
	return &Scheduler{
		cron:   cron.New(cron.WithSeconds()),
		engine: eng,
		cfg:    cfg,
		ctx:    ctx,
	}
}

// Start registers the refresh job and starts the cron runner.
func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc(s.cfg.Watchlist.Cron, s.refreshWatchlist); err != nil {
		return err
	}
	s.cron.Start()
	logger.Info(s.ctx, "Watchlist scheduler started",
		"cron", s.cfg.Watchlist.Cron, "symbols", len(s.cfg.Watchlist.Symbols))
	return nil
}

// Stop stops the cron runner; running jobs finish.
func (s *Scheduler) Stop() {
	s.cron.Stop()
}

func (s *Scheduler) refreshWatchlist() {
	for _, symbol := range s.cfg.Watchlist.Symbols {
		if s.ctx.Err() != nil {
			return
		}
		if _, err := s.engine.Analyze(s.ctx, symbol, s.cfg.Watchlist.Algorithm); err != nil {
			logger.ErrorWithErr(s.ctx, "Watchlist refresh failed", err, "symbol", symbol)
		}
	}
}
