package api

import (
	"encoding/json"
	"fmt"
	"time"
)

// ErrQuotaExceeded indicates the server rejected a generation because the
// daily quota is exhausted (HTTP 429).
type ErrQuotaExceeded struct {
	Detail    string
	NextReset time.Time
}

func (e *ErrQuotaExceeded) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return "daily challenge quota exhausted"
}

// ErrAuthRequired indicates the request was rejected for missing or invalid
// credentials (HTTP 401), or that the local token was already expired.
type ErrAuthRequired struct {
	Err error
}

func (e *ErrAuthRequired) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("authentication required: %v", e.Err)
	}
	return "authentication required"
}

func (e *ErrAuthRequired) Unwrap() error { return e.Err }

// ErrUnavailable indicates the service is temporarily down (HTTP 503).
// The operation may be retried manually.
type ErrUnavailable struct {
	Err error
}

func (e *ErrUnavailable) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("service unavailable: %v", e.Err)
	}
	return "service unavailable"
}

func (e *ErrUnavailable) Unwrap() error { return e.Err }

// ErrNetwork indicates the request never produced an HTTP response
// (connection refused, DNS failure, timeout).
type ErrNetwork struct {
	Err error
}

func (e *ErrNetwork) Error() string {
	return fmt.Sprintf("network failure: %v", e.Err)
}

func (e *ErrNetwork) Unwrap() error { return e.Err }

// ErrInvalidPayload indicates the server returned a body that does not
// conform to the expected schema.
type ErrInvalidPayload struct {
	Content json.RawMessage
	Err     error
}

func (e *ErrInvalidPayload) Error() string {
	return fmt.Sprintf("invalid response payload: %v", e.Err)
}

func (e *ErrInvalidPayload) Unwrap() error { return e.Err }

// APIError is any other non-2xx response. Detail carries the server-supplied
// message when present; otherwise the message falls back to the status code.
type APIError struct {
	Status int
	Detail string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return fmt.Sprintf("api error: HTTP %d", e.Status)
}
