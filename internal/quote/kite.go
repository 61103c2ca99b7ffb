package quote

import (
	"context"
	"fmt"
	"strings"

	kiteconnect "github.com/zerodha/gokiteconnect/v4"

	"stock-insight/internal/interfaces"
	"stock-insight/internal/types"
)

// Kite serves quotes from the Zerodha Kite Connect API for Indian exchanges.
type Kite struct {
	kc       *kiteconnect.Client
	exchange string
}

var _ interfaces.QuoteProvider = (*Kite)(nil)

func NewKite(apiKey, accessToken, exchange string) *Kite {
	kc := kiteconnect.New(apiKey)
	kc.SetAccessToken(accessToken)
	if exchange == "" {
		exchange = "NSE"
	}
	return &Kite{kc: kc, exchange: exchange}
}

func (p *Kite) GetQuote(ctx context.Context, symbol string) (types.Quote, error) {
	instrument := p.exchange + ":" + strings.ToUpper(symbol)

	quotes, err := p.kc.GetQuote(instrument)
	if err != nil {
		return types.Quote{}, fmt.Errorf("kite quote: %w", err)
	}
	q, ok := quotes[instrument]
	if !ok {
		return types.Quote{}, types.ErrNotFound
	}

	// Kite reports the prior close inside OHLC; change fields are derived.
	prevClose := q.OHLC.Close
	change := q.LastPrice - prevClose
	changePct := 0.0
	if prevClose != 0 {
		changePct = change / prevClose * 100
	}

	return types.Quote{
		Symbol:           strings.ToUpper(symbol),
		Open:             q.OHLC.Open,
		High:             q.OHLC.High,
		Low:              q.OHLC.Low,
		Price:            q.LastPrice,
		Volume:           int64(q.Volume),
		LatestTradingDay: q.Timestamp.Time.Format("2006-01-02"),
		PreviousClose:    prevClose,
		Change:           change,
		ChangePercent:    changePct,
	}, nil
}
