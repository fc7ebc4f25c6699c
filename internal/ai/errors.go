package ai

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
)

// Gateway failures are tagged so the assistant can pick user-facing copy:
// connectivity problems read differently from auth/quota/garbage replies.

// NetworkError means the model endpoint was unreachable.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string { return fmt.Sprintf("ai: network failure: %v", e.Err) }
func (e *NetworkError) Unwrap() error { return e.Err }

// APIError means the endpoint answered but refused the request (bad key,
// quota, safety block).
type APIError struct {
	Err error
}

func (e *APIError) Error() string { return fmt.Sprintf("ai: api failure: %v", e.Err) }
func (e *APIError) Unwrap() error { return e.Err }

// ParseError means the model's reply did not match the requested schema.
// Treated the same as an API failure by callers; never propagated as data.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string { return fmt.Sprintf("ai: unparseable reply: %v", e.Err) }
func (e *ParseError) Unwrap() error { return e.Err }

// IsNetwork reports whether err is a connectivity failure.
func IsNetwork(err error) bool {
	var netErr *NetworkError
	return errors.As(err, &netErr)
}

// ErrorCode returns an opaque diagnostic code for chat transcripts and logs.
func ErrorCode(err error) string {
	var (
		netErr   *NetworkError
		apiErr   *APIError
		parseErr *ParseError
	)
	switch {
	case errors.As(err, &netErr):
		return "network_error"
	case errors.As(err, &parseErr):
		return "parse_error"
	case errors.As(err, &apiErr):
		return "api_error"
	default:
		return "unknown_error"
	}
}

// classify wraps a raw transport/SDK error into a tagged gateway error.
func classify(err error) error {
	var (
		netErr net.Error
		urlErr *url.Error
		opErr  *net.OpError
	)
	if errors.As(err, &opErr) || errors.As(err, &urlErr) || errors.As(err, &netErr) ||
		errors.Is(err, context.DeadlineExceeded) {
		return &NetworkError{Err: err}
	}
	return &APIError{Err: err}
}
