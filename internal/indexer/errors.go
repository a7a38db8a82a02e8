package indexer

import (
	"context"
	"errors"
	"fmt"

	"github.com/feral-file/ff-algorand-indexer/internal/providers/algorand"
)

var (
	// ErrInvalidURL matches construction errors caused by a malformed base URL
	ErrInvalidURL = algorand.ErrInvalidURL

	// ErrInvalidHeader matches construction errors caused by a malformed custom header
	ErrInvalidHeader = algorand.ErrInvalidHeader
)

// Kind classifies an Error
type Kind uint8

const (
	// KindConstruction is a failure to build the facade, fixed only by correcting the input
	KindConstruction Kind = iota + 1
	// KindRequest is any failure surfaced by the indexer client during an operation
	KindRequest
)

func (k Kind) String() string {
	switch k {
	case KindConstruction:
		return "construction"
	case KindRequest:
		return "request"
	default:
		return "unknown"
	}
}

// Error is the single error type returned by Indexer.
// Err is the underlying cause, kept as is so errors.Is and errors.As reach it.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("indexer %s %s: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func constructionError(op string, err error) error {
	return &Error{Kind: KindConstruction, Op: op, Err: err}
}

func requestError(op string, err error) error {
	return &Error{Kind: KindRequest, Op: op, Err: err}
}

// IsConstruction reports whether err is a construction Error
func IsConstruction(err error) bool {
	return hasKind(err, KindConstruction)
}

// IsRequest reports whether err is a request Error
func IsRequest(err error) bool {
	return hasKind(err, KindRequest)
}

// IsNotFound reports whether the indexer answered 404
func IsNotFound(err error) bool {
	var reqErr *algorand.RequestError
	return errors.As(err, &reqErr) && reqErr.IsNotFound()
}

// IsTimeout reports whether the operation was abandoned because a deadline passed
func IsTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var reqErr *algorand.RequestError
	return errors.As(err, &reqErr) && reqErr.IsTimeout()
}

func hasKind(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}
