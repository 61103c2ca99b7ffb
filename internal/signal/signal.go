// Package signal derives a discrete trading action from a sentiment value
// and the intraday price range.
package signal

import "stock-insight/internal/types"

// Generate combines sentiment with the intraday range percentage:
//
//	priceChange = (high - low) / low * 100
//
// Positive sentiment with a range above 2% is a BUY. Negative sentiment with
// a range below -2% is a SELL; priceChange is non-negative whenever
// high >= low, so that arm only fires on inverted range data. Everything
// else, including a zero low, is a HOLD.
func Generate(sentiment types.SentimentValue, high, low float64) types.Signal {
	if low == 0 {
		return types.SignalHold
	}
	priceChange := (high - low) / low * 100

	switch {
	case sentiment > 0 && priceChange > 2:
		return types.SignalBuy
	case sentiment < 0 && priceChange < -2:
		return types.SignalSell
	default:
		return types.SignalHold
	}
}
