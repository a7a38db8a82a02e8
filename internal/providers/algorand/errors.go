package algorand

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrInvalidURL is returned when the indexer base URL is not an absolute http(s) URL
	ErrInvalidURL = errors.New("invalid url")

	// ErrInvalidHeader is returned when a custom header name or value is malformed
	ErrInvalidHeader = errors.New("invalid header")
)

// RequestError describes a failed indexer request.
// StatusCode is zero when no HTTP response was received.
type RequestError struct {
	URL        string
	StatusCode int
	Message    string
	Err        error
}

func (e *RequestError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("request to %s failed with status %d: %s", e.URL, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("request to %s failed: %s", e.URL, e.Message)
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// IsNotFound reports whether the indexer answered 404
func (e *RequestError) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// IsTimeout reports whether the request was abandoned because a deadline passed
func (e *RequestError) IsTimeout() bool {
	if errors.Is(e.Err, context.DeadlineExceeded) {
		return true
	}
	var te interface{ Timeout() bool }
	return errors.As(e.Err, &te) && te.Timeout()
}

// indexerErrorBody is the JSON body the indexer sends along with an error status
type indexerErrorBody struct {
	Message string                 `json:"message"`
	Data    map[string]interface{} `json:"data,omitempty"`
}
