package news

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/gocolly/colly/v2"

	"stock-insight/internal/logger"
	"stock-insight/internal/types"
)

// Scraper is the Google News fallback used when the primary news provider
// comes back empty. Scraped items carry headline and URL only.
type Scraper struct {
	timeout     time.Duration
	maxArticles int
}

func NewScraper(timeout time.Duration, maxArticles int) *Scraper {
	return &Scraper{timeout: timeout, maxArticles: maxArticles}
}

// Scrape searches Google News for recent stories about the symbol.
func (s *Scraper) Scrape(ctx context.Context, symbol string) ([]types.Article, error) {
	articles := []types.Article{}

	c := colly.NewCollector(
		colly.AllowedDomains("news.google.com", "www.google.com"),
	)
	c.SetRequestTimeout(s.timeout)

	c.OnRequest(func(r *colly.Request) {
		r.Headers.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36")
	})

	c.OnHTML("article", func(e *colly.HTMLElement) {
		if len(articles) >= s.maxArticles {
			return
		}
		headline, link := extractStory(e.DOM)
		if headline == "" || link == "" {
			return
		}
		// Google News links are relative redirect paths
		if strings.HasPrefix(link, "./articles/") {
			link = "https://news.google.com" + link[1:]
		}
		articles = append(articles, types.Article{
			Headline:    headline,
			URL:         link,
			PublishedAt: time.Now().UTC(),
		})
	})

	c.OnError(func(r *colly.Response, err error) {
		logger.ErrorWithErr(ctx, "News scraping error", err, "url", r.Request.URL.String())
	})

	searchQuery := url.QueryEscape(symbol + " stock news")
	searchURL := fmt.Sprintf("https://news.google.com/search?q=%s&hl=en-US&gl=US&ceid=US:en", searchQuery)

	if err := c.Visit(searchURL); err != nil {
		return nil, fmt.Errorf("scrape google news: %w", err)
	}
	c.Wait()

	logger.Info(ctx, "Google News scraping completed", "symbol", symbol, "articles", len(articles))
	return articles, nil
}

// extractStory pulls the headline and first link out of one story card.
func extractStory(sel *goquery.Selection) (headline, link string) {
	headline = strings.TrimSpace(sel.Find("h3, h4").First().Text())
	link, _ = sel.Find("a").First().Attr("href")
	return headline, link
}
