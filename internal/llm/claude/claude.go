package claude

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"

	"stock-insight/internal/config"
	"stock-insight/internal/interfaces"
	"stock-insight/internal/trace"
	"stock-insight/internal/types"
)

// Classifier labels text sentiment through the Anthropic messages API.
type Classifier struct {
	cfg      *config.Config
	endpoint string
}

var _ interfaces.TextClassifier = (*Classifier)(nil)

func NewClassifier(cfg *config.Config) *Classifier {
	endpoint := "https://api.anthropic.com/v1/messages"
	// proxies and gateways can override via env
	if ep := os.Getenv("CLAUDE_API_ENDPOINT"); ep != "" {
		endpoint = ep
	}
	return &Classifier{cfg: cfg, endpoint: endpoint}
}

func (c *Classifier) Classify(ctx context.Context, text string) (string, error) {
	ctx, span := trace.StartSpan(ctx, "claude-classify")
	defer span.End()

	apiKey := os.Getenv("ANTHROPIC_API_KEY")
	if apiKey == "" {
		return "", errors.New("ANTHROPIC_API_KEY missing")
	}

	prompt := fmt.Sprintf(`Analyze the sentiment of this text: "%s" and provide a sentiment score (positive, negative, or neutral).`, text)

	body := map[string]any{
		"model":      c.cfg.Sentiment.LLM.Model,
		"max_tokens": c.cfg.Sentiment.LLM.MaxTokens,
		"system":     "You are a financial sentiment analysis assistant.",
		"messages": []map[string]string{
			{"role": "user", "content": prompt},
		},
	}
	bb, _ := json.Marshal(body)

	req, _ := http.NewRequestWithContext(ctx, "POST", c.endpoint, bytes.NewReader(bb))
	req.Header.Set("x-api-key", apiKey)
	req.Header.Set("anthropic-version", "2023-06-01")
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return "", types.ErrRateLimited
	}
	if resp.StatusCode >= 300 {
		return "", fmt.Errorf("claude http %d", resp.StatusCode)
	}

	var r struct {
		Content []struct {
			Text string `json:"text"`
		} `json:"content"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&r); err != nil {
		return "", err
	}
	if len(r.Content) == 0 {
		return "", errors.New("no content")
	}

	return strings.TrimSpace(r.Content[0].Text), nil
}
