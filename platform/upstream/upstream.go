// Package upstream provides the shared HTTP plumbing used by the third-party API clients.
// This is part of the platform layer and contains no business logic.
package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"weather_card/platform/config"
)

const defaultTimeout = 10 * time.Second

// StatusError reports a non-2xx answer from an upstream API.
type StatusError struct {
	StatusCode int
	URL        string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("upstream status %d", e.StatusCode)
}

// Client performs single-attempt JSON GET requests.
type Client struct {
	httpClient *http.Client
	userAgent  string
}

// New creates a client with the given timeout and User-Agent.
func New(timeout time.Duration, userAgent string) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		userAgent:  userAgent,
	}
}

// NewFromConfig creates a client from the shared upstream settings.
func NewFromConfig(cfg config.UpstreamConfig) *Client {
	return New(cfg.GetUpstreamTimeout(), cfg.GetUserAgent())
}

// GetJSON issues a GET to reqURL and decodes the JSON body into out.
func (c *Client) GetJSON(ctx context.Context, reqURL string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("http request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return &StatusError{StatusCode: resp.StatusCode, URL: reqURL}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}
