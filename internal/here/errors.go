package here

import (
	"errors"
	"fmt"
)

// Sentinel errors for the two error payloads the HERE API documents.
// APIError.Unwrap returns one of these when the payload identifies the
// condition, so callers can branch with errors.Is.
var (
	ErrUnauthorized   = errors.New("here: unauthorized")
	ErrInvalidRequest = errors.New("here: invalid request")
)

// APIError is returned when the HERE API answers with a non-2xx status, or
// with a 2xx body that carries an error payload instead of the requested
// product node.
type APIError struct {
	StatusCode int    // HTTP status; 200 when the error came inside a success body
	Message    string // message parsed from the error payload, if any
	Body       string // raw response body for diagnostics
	kind       error  // ErrUnauthorized / ErrInvalidRequest, or nil
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("here: API error (HTTP %d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("here: API error (HTTP %d)", e.StatusCode)
}

func (e *APIError) Unwrap() error {
	return e.kind
}

// DecodeError is returned when a successful response body cannot be parsed
// into the expected structure.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("here: decode response: %v", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
