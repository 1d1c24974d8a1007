package api

import (
	"errors"
	"fmt"
)

// ErrUnexpectedStatus marks a response whose status code is outside 2xx.
var ErrUnexpectedStatus = errors.New("unexpected status")

// TransportError covers connection failures, timeouts, cancellation and
// non-2xx responses.
type TransportError struct {
	Path       string
	StatusCode int // zero when no response was received
	Err        error
}

// Error implements the error interface
func (e *TransportError) Error() string {
	return fmt.Sprintf("request %s failed: %v", e.Path, e.Err)
}

// Unwrap returns the underlying error
func (e *TransportError) Unwrap() error {
	return e.Err
}

// DecodeError reports a body or field that is not the JSON the endpoint
// expects.
type DecodeError struct {
	Path string
	Err  error
}

// Error implements the error interface
func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to parse response from %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying error
func (e *DecodeError) Unwrap() error {
	return e.Err
}
