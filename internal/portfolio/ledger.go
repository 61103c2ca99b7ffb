// Package portfolio tracks simulated holdings for the running session.
package portfolio

import (
	"sync"

	"github.com/shopspring/decimal"

	"stock-insight/internal/types"
)

// Ledger maps instrument symbols to held positions. It lives only for the
// process lifetime; there is no durability.
type Ledger struct {
	mu        sync.RWMutex
	positions map[string]types.Position
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{positions: make(map[string]types.Position)}
}

// Buy adds one share of symbol. The first buy records price as the entry
// price; later buys only increment the share count. The entry price is never
// recomputed as a weighted average.
func (l *Ledger) Buy(symbol string, price decimal.Decimal) {
	l.mu.Lock()
	defer l.mu.Unlock()

	p, ok := l.positions[symbol]
	if !ok {
		l.positions[symbol] = types.Position{Shares: 1, Price: price}
		return
	}
	p.Shares++
	l.positions[symbol] = p
}

// Sell removes one share of symbol. Selling an unheld instrument is a silent
// no-op. The entry is removed entirely when the last share is sold.
func (l *Ledger) Sell(symbol string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	p, ok := l.positions[symbol]
	if !ok || p.Shares == 0 {
		return
	}
	if p.Shares > 1 {
		p.Shares--
		l.positions[symbol] = p
		return
	}
	delete(l.positions, symbol)
}

// Positions returns a copied read-only view of all holdings.
func (l *Ledger) Positions() map[string]types.Position {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make(map[string]types.Position, len(l.positions))
	for symbol, p := range l.positions {
		out[symbol] = p
	}
	return out
}
