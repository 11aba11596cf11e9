package vigil

import (
	"errors"
	"fmt"
)

// ErrorKind is the closed taxonomy of failure classifications surfaced in
// Result envelopes.
type ErrorKind string

// Error kinds.
const (
	ErrorKindBadRequest   ErrorKind = "BAD_REQUEST"
	ErrorKindUnauthorized ErrorKind = "UNAUTHORIZED"
	ErrorKindForbidden    ErrorKind = "FORBIDDEN"
	ErrorKindNotFound     ErrorKind = "NOT_FOUND"
	ErrorKindServerError  ErrorKind = "SERVER_ERROR"
	ErrorKindNetworkError ErrorKind = "NETWORK_ERROR"
)

// Static errors for configuration validation.
var (
	ErrConfigRequired   = errors.New("config is required")
	ErrAPIKeyRequired   = errors.New("API key is required")
	ErrBaseURLRequired  = errors.New("base URL is required")
	ErrBaseURLNotHTTPS  = errors.New("base URL must use https")
	ErrNegativeRetryMax = errors.New("max retries must not be negative")
)

// KindForStatus maps an HTTP status code to an error kind. The mapping is
// total: any status without a dedicated kind yields ErrorKindServerError.
// Callers that never received an HTTP response should use
// ErrorKindNetworkError directly instead.
func KindForStatus(statusCode int) ErrorKind {
	switch statusCode {
	case 400:
		return ErrorKindBadRequest
	case 401:
		return ErrorKindUnauthorized
	case 403:
		return ErrorKindForbidden
	case 404:
		return ErrorKindNotFound
	default:
		return ErrorKindServerError
	}
}

// Err converts a failure envelope into a Go error for callers that want to
// branch with errors.Is/errors.As. Returns nil for success envelopes.
func (r *Result) Err() error {
	if r == nil || r.Success || r.Error == nil {
		return nil
	}

	if r.Error.StatusCode > 0 {
		return fmt.Errorf("%s (status %d): %s", r.Error.Code, r.Error.StatusCode, r.Error.Message)
	}

	return fmt.Errorf("%s: %s", r.Error.Code, r.Error.Message)
}

// hasKind reports whether the envelope is a failure of the given kind.
func (r *Result) hasKind(kind ErrorKind) bool {
	return r != nil && !r.Success && r.Error != nil && r.Error.Code == kind
}

// IsNotFound checks if the envelope is a not found failure.
func IsNotFound(r *Result) bool {
	return r.hasKind(ErrorKindNotFound)
}

// IsUnauthorized checks if the envelope is an unauthorized failure.
func IsUnauthorized(r *Result) bool {
	return r.hasKind(ErrorKindUnauthorized)
}

// IsForbidden checks if the envelope is a forbidden failure.
func IsForbidden(r *Result) bool {
	return r.hasKind(ErrorKindForbidden)
}

// IsNetworkError checks if the envelope is a transport-level failure that
// never produced an HTTP response.
func IsNetworkError(r *Result) bool {
	return r.hasKind(ErrorKindNetworkError)
}
