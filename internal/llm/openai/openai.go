package openai

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

// Classifier labels text sentiment through the OpenAI chat completions API.
type Classifier struct {
	cfg      *config.Config
	endpoint string
}

var _ interfaces.TextClassifier = (*Classifier)(nil)

func NewClassifier(cfg *config.Config) *Classifier {
	endpoint := "https://api.openai.com/v1/chat/completions"
	if ep := os.Getenv("OPENAI_API_ENDPOINT"); ep != "" {
		endpoint = ep
	}
	return &Classifier{cfg: cfg, endpoint: endpoint}
}

func (c *Classifier) Classify(ctx context.Context, text string) (string, error) {
	ctx, span := trace.StartSpan(ctx, "openai-classify")
	defer span.End()

	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return "", errors.New("OPENAI_API_KEY missing")
	}

	prompt := fmt.Sprintf(`Analyze the sentiment of this text: "%s" and provide a sentiment score (positive, negative, or neutral).`, text)

	body := map[string]any{
		"model": c.cfg.Sentiment.LLM.Model,
		"messages": []map[string]string{
			{"role": "system", "content": "You are a financial sentiment analysis assistant."},
			{"role": "user", "content": prompt},
		},
		"temperature": c.cfg.Sentiment.LLM.Temperature,
		"max_tokens":  c.cfg.Sentiment.LLM.MaxTokens,
	}
	bb, _ := json.Marshal(body)

	req, _ := http.NewRequestWithContext(ctx, "POST", c.endpoint, bytes.NewReader(bb))
	req.Header.Set("Authorization", "Bearer "+apiKey)
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
		return "", fmt.Errorf("openai http %d", resp.StatusCode)
	}

	var r struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&r); err != nil {
		return "", err
	}
	if len(r.Choices) == 0 {
		return "", errors.New("no choices")
	}

	return strings.TrimSpace(r.Choices[0].Message.Content), nil
}
