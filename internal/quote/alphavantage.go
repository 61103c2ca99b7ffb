package quote

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"stock-insight/internal/httpclient"
	"stock-insight/internal/interfaces"
	"stock-insight/internal/types"
)

// AlphaVantage serves daily quotes from the Alpha Vantage GLOBAL_QUOTE
// endpoint. The free tier throttles aggressively; a "Note" payload instead
// of data means the key is rate limited.
type AlphaVantage struct {
	client *httpclient.Client
	apiKey string
}

var _ interfaces.QuoteProvider = (*AlphaVantage)(nil)

// NewAlphaVantage creates a provider against baseURL (the production API or
// a test server).
func NewAlphaVantage(baseURL, apiKey string) *AlphaVantage {
	return &AlphaVantage{
		client: httpclient.New(
			httpclient.WithBaseURL(baseURL),
			httpclient.WithTimeout(15*time.Second),
		),
		apiKey: apiKey,
	}
}

// globalQuoteResponse mirrors the provider's payload shapes. Alpha Vantage
// reports throttling and bad symbols inside a 200 response, so every variant
// is decoded here and mapped to the error taxonomy before returning.
type globalQuoteResponse struct {
	GlobalQuote  map[string]string `json:"Global Quote"`
	Note         string            `json:"Note"`
	Information  string            `json:"Information"`
	ErrorMessage string            `json:"Error Message"`
}

func (p *AlphaVantage) GetQuote(ctx context.Context, symbol string) (types.Quote, error) {
	path := fmt.Sprintf("/query?function=GLOBAL_QUOTE&symbol=%s&apikey=%s",
		url.QueryEscape(symbol), url.QueryEscape(p.apiKey))

	var decoded globalQuoteResponse
	resp, err := p.client.GetJSON(ctx, path, &decoded)
	if err != nil {
		return types.Quote{}, fmt.Errorf("alphavantage: %w", err)
	}
	if resp.StatusCode == http.StatusTooManyRequests || decoded.Note != "" {
		return types.Quote{}, types.ErrRateLimited
	}
	if resp.StatusCode != http.StatusOK {
		return types.Quote{}, fmt.Errorf("alphavantage http %d", resp.StatusCode)
	}
	if decoded.ErrorMessage != "" || decoded.GlobalQuote["01. symbol"] == "" {
		return types.Quote{}, types.ErrNotFound
	}

	gq := decoded.GlobalQuote
	return types.Quote{
		Symbol:           gq["01. symbol"],
		Open:             parseField(gq, "02. open"),
		High:             parseField(gq, "03. high"),
		Low:              parseField(gq, "04. low"),
		Price:            parseField(gq, "05. price"),
		Volume:           int64(parseField(gq, "06. volume")),
		LatestTradingDay: gq["07. latest trading day"],
		PreviousClose:    parseField(gq, "08. previous close"),
		Change:           parseField(gq, "09. change"),
		ChangePercent:    parseField(gq, "10. change percent"),
	}, nil
}

// parseField reads a numeric field, tolerating the trailing % on the change
// percent value. Missing or malformed fields decode to zero.
func parseField(m map[string]string, key string) float64 {
	v := strings.TrimSuffix(strings.TrimSpace(m[key]), "%")
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0
	}
	return f
}
