package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "{}"))
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, "ALPHAVANTAGE", cfg.Quote.Provider)
	assert.Equal(t, "https://www.alphavantage.co", cfg.Quote.BaseURL)
	assert.Equal(t, "ALPHA_VANTAGE_API_KEY", cfg.Quote.APIKeyEnv)
	assert.Equal(t, "https://finnhub.io", cfg.News.BaseURL)
	assert.Equal(t, 7, cfg.News.LookbackDays)
	assert.Equal(t, 5, cfg.News.MaxArticles)
	assert.Equal(t, "LEXICON", cfg.Sentiment.Strategy)
	assert.Equal(t, "http://127.0.0.1:5000", cfg.Prediction.BaseURL)
	assert.Equal(t, "linear_regression", cfg.Prediction.DefaultAlgorithm)
	assert.False(t, cfg.Watchlist.Enabled)
}

func TestLoadFullConfig(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
server:
  addr: ":9090"
quote:
  provider: KITE
  exchange: NSE
sentiment:
  strategy: LLM
  llm:
    provider: OPENAI
    model: gpt-4o-mini
    max_tokens: 50
    temperature: 0.2
prediction:
  default_algorithm: svm
watchlist:
  enabled: true
  cron: "0 0 9 * * MON-FRI"
  symbols: [AAPL, MSFT]
`))
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, "KITE", cfg.Quote.Provider)
	assert.Equal(t, "NSE", cfg.Quote.Exchange)
	assert.Equal(t, "OPENAI", cfg.Sentiment.LLM.Provider)
	assert.Equal(t, 50, cfg.Sentiment.LLM.MaxTokens)
	assert.Equal(t, "svm", cfg.Prediction.DefaultAlgorithm)
	assert.Equal(t, "svm", cfg.Watchlist.Algorithm, "watchlist algorithm defaults to the prediction default")
	assert.Equal(t, []string{"AAPL", "MSFT"}, cfg.Watchlist.Symbols)
}

func TestLoadRejectsInvalidConfig(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{"bad quote provider", "quote:\n  provider: BLOOMBERG\n", "quote.provider"},
		{"bad sentiment strategy", "sentiment:\n  strategy: VIBES\n", "sentiment.strategy"},
		{"bad llm provider", "sentiment:\n  strategy: LLM\n  llm:\n    provider: GEMINI\n", "sentiment.llm.provider"},
		{"bad algorithm", "prediction:\n  default_algorithm: quantum_leap\n", "default_algorithm"},
		{"negative lookback", "news:\n  lookback_days: -1\n", "lookback_days"},
		{"watchlist without cron", "watchlist:\n  enabled: true\n  symbols: [AAPL]\n", "watchlist.cron"},
		{"watchlist without symbols", "watchlist:\n  enabled: true\n  cron: \"@hourly\"\n", "watchlist.symbols"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestValidAlgorithm(t *testing.T) {
	for _, a := range Algorithms {
		assert.True(t, ValidAlgorithm(a))
	}
	assert.False(t, ValidAlgorithm(""))
	assert.False(t, ValidAlgorithm("LINEAR_REGRESSION"))
}
