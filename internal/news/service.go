package news

import (
	"context"

	"stock-insight/internal/interfaces"
	"stock-insight/internal/logger"
	"stock-insight/internal/types"
)

// Service chains the primary provider with the scraper fallback. Provider
// failures never propagate: a failed fetch degrades to an empty article list
// so the analysis cycle can continue on neutral sentiment.
type Service struct {
	primary interfaces.NewsProvider
	scraper *Scraper
}

var _ interfaces.NewsProvider = (*Service)(nil)

// NewService creates a news service. scraper may be nil to disable the
// fallback.
func NewService(primary interfaces.NewsProvider, scraper *Scraper) *Service {
	return &Service{primary: primary, scraper: scraper}
}

func (s *Service) RecentArticles(ctx context.Context, symbol string, lookbackDays int) ([]types.Article, error) {
	articles, err := s.primary.RecentArticles(ctx, symbol, lookbackDays)
	if err != nil {
		logger.ErrorWithErr(ctx, "Primary news provider failed", err, "symbol", symbol)
		articles = nil
	}

	if len(articles) == 0 && s.scraper != nil {
		logger.Info(ctx, "No articles from primary source, trying Google News", "symbol", symbol)
		scraped, err := s.scraper.Scrape(ctx, symbol)
		if err != nil {
			logger.ErrorWithErr(ctx, "Google News fallback failed", err, "symbol", symbol)
			return nil, nil
		}
		articles = scraped
	}

	return articles, nil
}
