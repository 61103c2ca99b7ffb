package quote

import (
	"context"
	"fmt"
	"time"

	finquote "github.com/piquette/finance-go/quote"

	"stock-insight/internal/interfaces"
	"stock-insight/internal/types"
)

// Yahoo serves quotes through the finance-go Yahoo Finance client. No API
// key is needed, which makes it the usual choice for local runs.
type Yahoo struct{}

var _ interfaces.QuoteProvider = (*Yahoo)(nil)

func NewYahoo() *Yahoo {
	return &Yahoo{}
}

func (p *Yahoo) GetQuote(ctx context.Context, symbol string) (types.Quote, error) {
	q, err := finquote.Get(symbol)
	if err != nil {
		return types.Quote{}, fmt.Errorf("yahoo quote: %w", err)
	}
	if q == nil {
		return types.Quote{}, types.ErrNotFound
	}

	return types.Quote{
		Symbol:           q.Symbol,
		Open:             q.RegularMarketOpen,
		High:             q.RegularMarketDayHigh,
		Low:              q.RegularMarketDayLow,
		Price:            q.RegularMarketPrice,
		Volume:           int64(q.RegularMarketVolume),
		LatestTradingDay: time.Unix(int64(q.RegularMarketTime), 0).UTC().Format("2006-01-02"),
		PreviousClose:    q.RegularMarketPreviousClose,
		Change:           q.RegularMarketChange,
		ChangePercent:    q.RegularMarketChangePercent,
	}, nil
}
