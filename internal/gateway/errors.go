package gateway

import (
	"errors"
	"fmt"
)

var (
	// ErrUnauthorized indicates a missing, expired or rejected token.
	ErrUnauthorized = errors.New("api rejected credentials")

	// ErrNotFound indicates the requested resource does not exist.
	ErrNotFound = errors.New("api resource not found")

	// ErrUnavailable indicates the API server is unreachable.
	ErrUnavailable = errors.New("api server unavailable")

	// ErrTimeout indicates the request exceeded the configured timeout.
	ErrTimeout = errors.New("api request timed out")

	// ErrRetryExhausted indicates all retry attempts have been exhausted.
	ErrRetryExhausted = errors.New("api retry attempts exhausted")
)

// StatusError is an unexpected non-2xx response.
type StatusError struct {
	Status  int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api returned status %d", e.Status)
	}
	return fmt.Sprintf("api returned status %d: %s", e.Status, e.Message)
}

func (e *StatusError) retryable() bool {
	return e.Status >= 500
}

func errorCode(err error) string {
	var se *StatusError
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrTimeout):
		return "TIMEOUT"
	case errors.Is(err, ErrUnavailable):
		return "UNAVAILABLE"
	case errors.Is(err, ErrUnauthorized):
		return "UNAUTHORIZED"
	case errors.Is(err, ErrNotFound):
		return "NOT_FOUND"
	case errors.As(err, &se):
		return fmt.Sprintf("HTTP_%d", se.Status)
	default:
		return "UNKNOWN"
	}
}
