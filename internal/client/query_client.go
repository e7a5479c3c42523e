package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"vehicle-query-service/internal/model"
)

const (
	defaultMaxRetries = 3
	defaultBackoff    = 500 * time.Millisecond
)

// UpstreamError carries the message of a query the backend answered with
// success=false. The message is meant to be shown to the user as is.
type UpstreamError struct {
	StatusCode int
	Message    string
}

func (e *UpstreamError) Error() string {
	return e.Message
}

type QueryClient struct {
	baseURL    string
	httpClient *http.Client
	maxRetries int
	backoff    time.Duration
}

type Option func(*QueryClient)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *QueryClient) { c.httpClient = hc }
}

// WithRetry sets the attempt count and the base delay, which grows linearly
// with each attempt.
func WithRetry(maxRetries int, backoff time.Duration) Option {
	return func(c *QueryClient) {
		if maxRetries > 0 {
			c.maxRetries = maxRetries
		}
		c.backoff = backoff
	}
}

func NewQueryClient(baseURL string, opts ...Option) *QueryClient {
	c := &QueryClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		maxRetries: defaultMaxRetries,
		backoff:    defaultBackoff,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Lookup fetches the raw payload for plate and identityNumber. Network errors
// are retried; any answer from the server is final.
func (c *QueryClient) Lookup(ctx context.Context, plate, identityNumber string) (*model.QueryPayload, error) {
	if c.baseURL == "" {
		return nil, fmt.Errorf("query API URL is not configured")
	}

	endpoint, err := url.Parse(c.baseURL + "/api/consulta/" + url.PathEscape(plate) + "/" + url.PathEscape(identityNumber))
	if err != nil {
		return nil, fmt.Errorf("invalid query API URL: %w", err)
	}

	resp, err := c.do(ctx, endpoint.String())
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	var envelope model.QueryResponse
	if err := json.Unmarshal(body, &envelope); err != nil {
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("query API returned status %d: %s", resp.StatusCode, string(body))
		}
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	if !envelope.Success {
		return nil, &UpstreamError{StatusCode: resp.StatusCode, Message: envelope.Message}
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("query API returned status %d: %s", resp.StatusCode, string(body))
	}
	if envelope.Data == nil {
		return nil, fmt.Errorf("query API returned success without data")
	}

	return envelope.Data, nil
}

func (c *QueryClient) do(ctx context.Context, endpoint string) (*http.Response, error) {
	var lastErr error
	for attempt := 0; attempt < c.maxRetries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("Accept", "application/json")

		resp, err := c.httpClient.Do(req)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		if ctx.Err() != nil || attempt == c.maxRetries-1 {
			break
		}

		timer := time.NewTimer(time.Duration(attempt+1) * c.backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, fmt.Errorf("query API request cancelled: %w", ctx.Err())
		case <-timer.C:
		}
	}
	return nil, fmt.Errorf("failed to execute request after %d attempts: %w", c.maxRetries, lastErr)
}
