// Package explain is the client side of the hosted query-explanation
// service: one request, one prose answer, no retries.
package explain

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// ErrEmptyQuery is returned for empty or whitespace-only input before any
// network call is attempted.
var ErrEmptyQuery = errors.New("Please enter a SQL query.")

// genericFailure is shown when the service fails without a usable message.
const genericFailure = "failed to generate explanation"

const defaultTimeout = 30 * time.Second

type Client struct {
	baseURL string
	apiKey  string
	hc      *http.Client
}

// New builds a client for the explanation service at baseURL. A zero
// timeout falls back to the default.
func New(baseURL, apiKey string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		hc:      &http.Client{Timeout: timeout},
	}
}

type explainRequest struct {
	Query string `json:"query"`
}

type explainResponse struct {
	Explanation string `json:"explanation"`
	Error       string `json:"error"`
}

// Explain sends one query to the service and returns its prose explanation.
// Empty input is rejected locally. A non-success status surfaces the
// service-provided error message verbatim, falling back to a generic one.
func (c *Client) Explain(ctx context.Context, query string) (string, error) {
	if strings.TrimSpace(query) == "" {
		return "", ErrEmptyQuery
	}

	body, err := json.Marshal(explainRequest{Query: query})
	if err != nil {
		return "", fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/explain", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return "", fmt.Errorf("explanation service: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	var parsed explainResponse
	if resp.StatusCode != http.StatusOK {
		if json.Unmarshal(data, &parsed) == nil && parsed.Error != "" {
			return "", errors.New(parsed.Error)
		}
		return "", errors.New(genericFailure)
	}

	if err := json.Unmarshal(data, &parsed); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if parsed.Explanation == "" {
		return "", errors.New(genericFailure)
	}
	return parsed.Explanation, nil
}
