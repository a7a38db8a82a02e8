package adapter

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/feral-file/ff-algorand-indexer/internal/logger"
)

// HTTPStatusError is returned when the server answers with a non-2xx status code
type HTTPStatusError struct {
	URL        string
	StatusCode int
	Body       []byte
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("unexpected status code %d: %s", e.StatusCode, string(e.Body))
}

// HTTPClient defines an interface for HTTP client operations to enable mocking
//
//go:generate mockgen -source=http.go -destination=../mocks/http.go -package=mocks -mock_names=HTTPClient=MockHTTPClient
type HTTPClient interface {
	// GetBytes performs a GET request with the given headers and returns the response body
	GetBytes(ctx context.Context, url string, headers map[string]string) ([]byte, error)
}

// HTTPOptions configures the real HTTP client
type HTTPOptions struct {
	// Timeout bounds a single request attempt
	Timeout time.Duration
	// RetryMaxElapsed bounds the total time spent retrying rate limited (429) requests.
	// Zero disables retries.
	RetryMaxElapsed time.Duration
}

// RealHTTPClient implements HTTPClient using the standard http package
type RealHTTPClient struct {
	client          *http.Client
	retryMaxElapsed time.Duration
}

// NewHTTPClient creates a new real HTTP client
func NewHTTPClient(opts HTTPOptions) HTTPClient {
	return &RealHTTPClient{
		client: &http.Client{
			Timeout: opts.Timeout,
		},
		retryMaxElapsed: opts.RetryMaxElapsed,
	}
}

// doRequestWithRetry executes an HTTP request with exponential backoff retry for rate limiting
func (c *RealHTTPClient) doRequestWithRetry(ctx context.Context, req *http.Request) ([]byte, error) {
	var respBody []byte

	operation := func() error {
		resp, err := c.client.Do(req)
		if err != nil {
			// Only 429 is retried; transport errors and client timeouts surface unchanged
			return backoff.Permanent(fmt.Errorf("failed to perform request: %w", err))
		}
		defer func() {
			if err := resp.Body.Close(); err != nil {
				logger.Warn("failed to close response body", zap.Error(err), zap.String("url", req.URL.String()))
			}
		}()

		if resp.StatusCode == http.StatusTooManyRequests {
			logger.Warn("rate limited, retrying with backoff", zap.String("url", req.URL.String()))
			body, _ := io.ReadAll(resp.Body)
			return &HTTPStatusError{URL: req.URL.String(), StatusCode: resp.StatusCode, Body: body}
		}

		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			body, _ := io.ReadAll(resp.Body)
			return backoff.Permanent(&HTTPStatusError{URL: req.URL.String(), StatusCode: resp.StatusCode, Body: body})
		}

		respBody, err = io.ReadAll(resp.Body)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("failed to read response body: %w", err))
		}

		return nil
	}

	if c.retryMaxElapsed <= 0 {
		if err := operation(); err != nil {
			return nil, unwrapPermanent(err)
		}
		return respBody, nil
	}

	// Configure exponential backoff
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 500 * time.Millisecond
	b.MaxInterval = 10 * time.Second
	b.MaxElapsedTime = c.retryMaxElapsed
	b.Multiplier = 2.0
	b.RandomizationFactor = 0.5

	if err := backoff.Retry(operation, backoff.WithContext(b, ctx)); err != nil {
		return nil, err
	}

	return respBody, nil
}

// GetBytes performs a GET request and returns the raw response body
// Implements exponential backoff retry for rate limiting (429) responses
func (c *RealHTTPClient) GetBytes(ctx context.Context, url string, headers map[string]string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return c.doRequestWithRetry(ctx, req)
}

// unwrapPermanent strips the backoff marker when the operation ran without the retry loop
func unwrapPermanent(err error) error {
	if perm, ok := err.(*backoff.PermanentError); ok {
		return perm.Err
	}
	return err
}
