package quote

import (
	"fmt"
	"os"

	"stock-insight/internal/config"
	"stock-insight/internal/interfaces"
)

// FromConfig builds the quote provider named by the configuration.
func FromConfig(cfg *config.Config) (interfaces.QuoteProvider, error) {
	switch cfg.Quote.Provider {
	case "ALPHAVANTAGE":
		return NewAlphaVantage(cfg.Quote.BaseURL, os.Getenv(cfg.Quote.APIKeyEnv)), nil
	case "YAHOO":
		return NewYahoo(), nil
	case "KITE":
		return NewKite(os.Getenv("KITE_API_KEY"), os.Getenv("KITE_ACCESS_TOKEN"), cfg.Quote.Exchange), nil
	default:
		return nil, fmt.Errorf("unsupported quote provider: %s", cfg.Quote.Provider)
	}
}
