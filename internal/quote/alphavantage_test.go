package quote

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stock-insight/internal/types"
)

const globalQuoteFixture = `{
  "Global Quote": {
    "01. symbol": "IBM",
    "02. open": "238.0000",
    "03. high": "240.5000",
    "04. low": "236.5000",
    "05. price": "239.1500",
    "06. volume": "3421785",
    "07. latest trading day": "2026-08-28",
    "08. previous close": "237.9000",
    "09. change": "1.2500",
    "10. change percent": "0.5254%"
  }
}`

func newAlphaVantageServer(t *testing.T, handler http.HandlerFunc) *AlphaVantage {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewAlphaVantage(srv.URL, "demo")
}

func TestAlphaVantageGetQuote(t *testing.T) {
	p := newAlphaVantageServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "GLOBAL_QUOTE", r.URL.Query().Get("function"))
		assert.Equal(t, "IBM", r.URL.Query().Get("symbol"))
		assert.Equal(t, "demo", r.URL.Query().Get("apikey"))
		w.Write([]byte(globalQuoteFixture))
	})

	q, err := p.GetQuote(context.Background(), "IBM")
	require.NoError(t, err)

	assert.Equal(t, "IBM", q.Symbol)
	assert.Equal(t, 240.5, q.High)
	assert.Equal(t, 236.5, q.Low)
	assert.Equal(t, 239.15, q.Price)
	assert.Equal(t, int64(3421785), q.Volume)
	assert.Equal(t, "2026-08-28", q.LatestTradingDay)
	assert.Equal(t, 0.5254, q.ChangePercent, "percent suffix must be stripped")
}

func TestAlphaVantageUnknownSymbol(t *testing.T) {
	// an unknown symbol comes back as a 200 with an empty Global Quote object
	p := newAlphaVantageServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"Global Quote": {}}`))
	})

	_, err := p.GetQuote(context.Background(), "NOPE")
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestAlphaVantageRateLimitNote(t *testing.T) {
	p := newAlphaVantageServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"Note": "Thank you for using Alpha Vantage! Our standard API call frequency is 25 requests per day."}`))
	})

	_, err := p.GetQuote(context.Background(), "IBM")
	assert.ErrorIs(t, err, types.ErrRateLimited)
}

func TestAlphaVantageRateLimitStatus(t *testing.T) {
	p := newAlphaVantageServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})

	_, err := p.GetQuote(context.Background(), "IBM")
	assert.ErrorIs(t, err, types.ErrRateLimited)
}

func TestAlphaVantageServerError(t *testing.T) {
	p := newAlphaVantageServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := p.GetQuote(context.Background(), "IBM")
	require.Error(t, err)
	assert.NotErrorIs(t, err, types.ErrNotFound)
	assert.NotErrorIs(t, err, types.ErrRateLimited)
}

func TestParseField(t *testing.T) {
	m := map[string]string{
		"plain":   "1.5",
		"percent": "0.5254%",
		"spaced":  " 2.0 ",
		"bad":     "n/a",
	}
	assert.Equal(t, 1.5, parseField(m, "plain"))
	assert.Equal(t, 0.5254, parseField(m, "percent"))
	assert.Equal(t, 2.0, parseField(m, "spaced"))
	assert.Zero(t, parseField(m, "bad"))
	assert.Zero(t, parseField(m, "missing"))
}
