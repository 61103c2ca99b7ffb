package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the full service configuration, loaded from a YAML file. API
// keys are never stored here; each provider section names the environment
// variable that carries its secret.
type Config struct {
	Server struct {
		Addr string `yaml:"addr"`
	} `yaml:"server"`
	Quote struct {
		Provider  string `yaml:"provider"` // ALPHAVANTAGE, YAHOO or KITE
		BaseURL   string `yaml:"base_url"`
		APIKeyEnv string `yaml:"api_key_env"`
		Exchange  string `yaml:"exchange"` // KITE only, e.g. NSE
	} `yaml:"quote"`
	News struct {
		BaseURL         string `yaml:"base_url"`
		APIKeyEnv       string `yaml:"api_key_env"`
		LookbackDays    int    `yaml:"lookback_days"`
		MaxArticles     int    `yaml:"max_articles"`
		FallbackScraper bool   `yaml:"fallback_scraper"`
	} `yaml:"news"`
	Sentiment struct {
		Strategy string `yaml:"strategy"` // LEXICON or LLM
		LLM      struct {
			Provider    string  `yaml:"provider"` // OPENAI, CLAUDE or NOOP
			Model       string  `yaml:"model"`
			MaxTokens   int     `yaml:"max_tokens"`
			Temperature float32 `yaml:"temperature"`
		} `yaml:"llm"`
	} `yaml:"sentiment"`
	Prediction struct {
		BaseURL          string `yaml:"base_url"`
		DefaultAlgorithm string `yaml:"default_algorithm"`
	} `yaml:"prediction"`
	Watchlist struct {
		Enabled   bool     `yaml:"enabled"`
		Cron      string   `yaml:"cron"`
		Symbols   []string `yaml:"symbols"`
		Algorithm string   `yaml:"algorithm"`
	} `yaml:"watchlist"`
}

// Algorithms supported by the prediction service.
var Algorithms = []string{"linear_regression", "svm", "random_forest"}

// ValidAlgorithm reports whether the prediction service knows the algorithm.
func ValidAlgorithm(name string) bool {
	for _, a := range Algorithms {
		if a == name {
			return true
		}
	}
	return false
}

func (c *Config) Validate() error {
	switch c.Quote.Provider {
	case "ALPHAVANTAGE", "YAHOO", "KITE":
	default:
		return fmt.Errorf("invalid quote.provider '%s': must be 'ALPHAVANTAGE', 'YAHOO' or 'KITE'", c.Quote.Provider)
	}
	switch c.Sentiment.Strategy {
	case "LEXICON", "LLM":
	default:
		return fmt.Errorf("invalid sentiment.strategy '%s': must be 'LEXICON' or 'LLM'", c.Sentiment.Strategy)
	}
	if c.Sentiment.Strategy == "LLM" {
		switch c.Sentiment.LLM.Provider {
		case "OPENAI", "CLAUDE", "NOOP":
		default:
			return fmt.Errorf("invalid sentiment.llm.provider '%s': must be 'OPENAI', 'CLAUDE' or 'NOOP'", c.Sentiment.LLM.Provider)
		}
	}
	if !ValidAlgorithm(c.Prediction.DefaultAlgorithm) {
		return fmt.Errorf("invalid prediction.default_algorithm '%s': must be one of %v", c.Prediction.DefaultAlgorithm, Algorithms)
	}
	if c.News.LookbackDays <= 0 {
		return fmt.Errorf("news.lookback_days must be positive, got %d", c.News.LookbackDays)
	}
	if c.Watchlist.Enabled {
		if c.Watchlist.Cron == "" {
			return fmt.Errorf("watchlist.cron is required when the watchlist is enabled")
		}
		if len(c.Watchlist.Symbols) == 0 {
			return fmt.Errorf("watchlist.symbols cannot be empty when the watchlist is enabled")
		}
	}
	return nil
}

// Load reads, defaults and validates the configuration file.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, err
	}

	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}
	if c.Quote.Provider == "" {
		c.Quote.Provider = "ALPHAVANTAGE"
	}
	if c.Quote.BaseURL == "" {
		c.Quote.BaseURL = "https://www.alphavantage.co"
	}
	if c.Quote.APIKeyEnv == "" {
		c.Quote.APIKeyEnv = "ALPHA_VANTAGE_API_KEY"
	}
	if c.News.BaseURL == "" {
		c.News.BaseURL = "https://finnhub.io"
	}
	if c.News.APIKeyEnv == "" {
		c.News.APIKeyEnv = "FINNHUB_API_KEY"
	}
	if c.News.LookbackDays == 0 {
		c.News.LookbackDays = 7
	}
	if c.News.MaxArticles == 0 {
		c.News.MaxArticles = 5
	}
	if c.Sentiment.Strategy == "" {
		c.Sentiment.Strategy = "LEXICON"
	}
	if c.Sentiment.LLM.MaxTokens == 0 {
		c.Sentiment.LLM.MaxTokens = 100
	}
	if c.Prediction.BaseURL == "" {
		c.Prediction.BaseURL = "http://127.0.0.1:5000"
	}
	if c.Prediction.DefaultAlgorithm == "" {
		c.Prediction.DefaultAlgorithm = "linear_regression"
	}
	if c.Watchlist.Algorithm == "" {
		c.Watchlist.Algorithm = c.Prediction.DefaultAlgorithm
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &c, nil
}
