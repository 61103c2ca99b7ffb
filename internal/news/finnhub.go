package news

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"stock-insight/internal/httpclient"
	"stock-insight/internal/interfaces"
	"stock-insight/internal/types"
)

// Finnhub fetches company news from the Finnhub REST API.
type Finnhub struct {
	client      *httpclient.Client
	token       string
	maxArticles int
}

var _ interfaces.NewsProvider = (*Finnhub)(nil)

func NewFinnhub(baseURL, token string, maxArticles int) *Finnhub {
	return &Finnhub{
		client: httpclient.New(
			httpclient.WithBaseURL(baseURL),
			httpclient.WithTimeout(15*time.Second),
		),
		token:       token,
		maxArticles: maxArticles,
	}
}

type finnhubArticle struct {
	Headline string `json:"headline"`
	Summary  string `json:"summary"`
	URL      string `json:"url"`
	Datetime int64  `json:"datetime"`
	Source   string `json:"source"`
}

// RecentArticles returns up to maxArticles items from the lookback window.
func (p *Finnhub) RecentArticles(ctx context.Context, symbol string, lookbackDays int) ([]types.Article, error) {
	now := time.Now().UTC()
	from := now.AddDate(0, 0, -lookbackDays).Format("2006-01-02")
	to := now.Format("2006-01-02")

	path := fmt.Sprintf("/api/v1/company-news?symbol=%s&from=%s&to=%s&token=%s",
		url.QueryEscape(symbol), from, to, url.QueryEscape(p.token))

	var decoded []finnhubArticle
	resp, err := p.client.GetJSON(ctx, path, &decoded)
	if err != nil {
		return nil, fmt.Errorf("finnhub: %w", err)
	}
	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, types.ErrRateLimited
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("finnhub http %d", resp.StatusCode)
	}

	articles := make([]types.Article, 0, len(decoded))
	for _, a := range decoded {
		if len(articles) >= p.maxArticles {
			break
		}
		articles = append(articles, types.Article{
			Headline:    a.Headline,
			Summary:     a.Summary,
			URL:         a.URL,
			PublishedAt: time.Unix(a.Datetime, 0).UTC(),
		})
	}
	return articles, nil
}
