package llm

import (
	"stock-insight/internal/config"
	"stock-insight/internal/interfaces"
	"stock-insight/internal/llm/claude"
	"stock-insight/internal/llm/noop"
	"stock-insight/internal/llm/openai"
)

// FromConfig builds the classifier named by the configuration. Unknown
// providers fall back to the noop classifier rather than failing startup.
func FromConfig(cfg *config.Config) interfaces.TextClassifier {
	switch cfg.Sentiment.LLM.Provider {
	case "OPENAI":
		return openai.NewClassifier(cfg)
	case "CLAUDE":
		return claude.NewClassifier(cfg)
	default:
		return noop.NewClassifier()
	}
}
