// Package predict is the HTTP client for the external price-prediction
// model service.
package predict

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"stock-insight/internal/httpclient"
	"stock-insight/internal/interfaces"
	"stock-insight/internal/types"
)

// Client talks to the model service's /predict endpoint. The service is
// opaque: it returns a single scalar forecast or a structured error message.
type Client struct {
	client *httpclient.Client
}

var _ interfaces.PredictionService = (*Client)(nil)

func NewClient(baseURL string) *Client {
	return &Client{
		client: httpclient.New(
			httpclient.WithBaseURL(baseURL),
			httpclient.WithTimeout(30*time.Second),
		),
	}
}

type predictResponse struct {
	Prediction *float64 `json:"prediction"`
	Error      string   `json:"error"`
}

// Predict requests a forecast for symbol with the given algorithm. Service
// failures that carry a message come back as *types.ServiceError.
func (c *Client) Predict(ctx context.Context, symbol, algorithm string) (float64, error) {
	path := fmt.Sprintf("/predict?symbol=%s&algorithm=%s",
		url.QueryEscape(symbol), url.QueryEscape(algorithm))

	var decoded predictResponse
	resp, err := c.client.GetJSON(ctx, path, &decoded)
	if err != nil {
		return 0, fmt.Errorf("prediction service: %w", err)
	}
	if resp.StatusCode == http.StatusTooManyRequests {
		return 0, types.ErrRateLimited
	}
	if decoded.Error != "" {
		return 0, &types.ServiceError{Message: decoded.Error}
	}
	if resp.StatusCode != http.StatusOK || decoded.Prediction == nil {
		return 0, &types.ServiceError{Message: fmt.Sprintf("prediction service returned http %d", resp.StatusCode)}
	}
	return *decoded.Prediction, nil
}
