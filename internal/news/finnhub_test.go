package news

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stock-insight/internal/types"
)

const companyNewsFixture = `[
  {"headline": "Apple reports record quarter", "summary": "Revenue beats estimates", "url": "https://example.com/1", "datetime": 1756339200, "source": "Reuters"},
  {"headline": "Supplier cuts guidance", "summary": "Weak demand signals", "url": "https://example.com/2", "datetime": 1756252800, "source": "Bloomberg"},
  {"headline": "New product line announced", "summary": "", "url": "https://example.com/3", "datetime": 1756166400, "source": "AP"}
]`

func newFinnhubServer(t *testing.T, maxArticles int, handler http.HandlerFunc) *Finnhub {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewFinnhub(srv.URL, "test-token", maxArticles)
}

func TestFinnhubRecentArticles(t *testing.T) {
	p := newFinnhubServer(t, 10, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/company-news", r.URL.Path)
		assert.Equal(t, "AAPL", r.URL.Query().Get("symbol"))
		assert.Equal(t, "test-token", r.URL.Query().Get("token"))

		from, err := time.Parse("2006-01-02", r.URL.Query().Get("from"))
		require.NoError(t, err)
		to, err := time.Parse("2006-01-02", r.URL.Query().Get("to"))
		require.NoError(t, err)
		assert.Equal(t, 7*24*time.Hour, to.Sub(from))

		w.Write([]byte(companyNewsFixture))
	})

	articles, err := p.RecentArticles(context.Background(), "AAPL", 7)
	require.NoError(t, err)
	require.Len(t, articles, 3)

	assert.Equal(t, "Apple reports record quarter", articles[0].Headline)
	assert.Equal(t, "Revenue beats estimates", articles[0].Summary)
	assert.Equal(t, "https://example.com/1", articles[0].URL)
	assert.Equal(t, time.Unix(1756339200, 0).UTC(), articles[0].PublishedAt)
}

func TestFinnhubCapsArticles(t *testing.T) {
	p := newFinnhubServer(t, 2, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(companyNewsFixture))
	})

	articles, err := p.RecentArticles(context.Background(), "AAPL", 7)
	require.NoError(t, err)
	assert.Len(t, articles, 2)
}

func TestFinnhubRateLimited(t *testing.T) {
	p := newFinnhubServer(t, 10, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})

	_, err := p.RecentArticles(context.Background(), "AAPL", 7)
	assert.ErrorIs(t, err, types.ErrRateLimited)
}

func TestFinnhubEmptyWindow(t *testing.T) {
	p := newFinnhubServer(t, 10, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	})

	articles, err := p.RecentArticles(context.Background(), "AAPL", 7)
	require.NoError(t, err)
	assert.Empty(t, articles)
}

type failingProvider struct{ err error }

func (f *failingProvider) RecentArticles(ctx context.Context, symbol string, lookbackDays int) ([]types.Article, error) {
	return nil, f.err
}

func TestServiceDegradesToEmpty(t *testing.T) {
	// no scraper fallback: a primary failure must yield an empty list, not an error
	s := NewService(&failingProvider{err: errors.New("provider down")}, nil)

	articles, err := s.RecentArticles(context.Background(), "AAPL", 7)
	require.NoError(t, err)
	assert.Empty(t, articles)
}
