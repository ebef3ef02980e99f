package domain

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrSessionExpired is returned when a 401 could not be recovered by the
	// refresh flow: either no refresh token was stored or the refresh call
	// itself was rejected. The session has been cleared by the time callers
	// see this error.
	ErrSessionExpired = errors.New("session expired, please log in again")

	// ErrNetwork wraps transport-level failures where no HTTP response was
	// received (timeout, DNS, connection reset). Retryable.
	ErrNetwork = errors.New("could not reach the server")

	// ErrKeyNotFound is returned by KVStore implementations when a key is
	// absent. Absence is a normal condition, not a failure.
	ErrKeyNotFound = errors.New("key not found in store")
)

// APIError carries the HTTP status and the backend-provided message of a
// failed request that did receive a response.
type APIError struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("api error %d", e.Status)
}

// Retryable reports whether the error class is eligible for the transparent
// retry policy: network errors and 5xx responses only. 4xx responses,
// including 401, are never retried; 401 is recovered through the refresh
// flow instead.
func (e *APIError) Retryable() bool {
	return e.Status >= http.StatusInternalServerError
}

// NewAPIError creates an APIError for the given status and message.
func NewAPIError(status int, message string) *APIError {
	return &APIError{Status: status, Message: message}
}

// IsRetryable reports whether err should be retried by the HTTP client core.
func IsRetryable(err error) bool {
	if errors.Is(err, ErrNetwork) {
		return true
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Retryable()
	}
	return false
}

// StatusOf extracts the HTTP status of err, or 0 when no response was received.
func StatusOf(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return 0
}

// UserMessage maps an error to a message suitable for user-facing
// presentation. Backend-provided messages win for 400 and 409; remaining
// statuses get a fixed description with a generic fallback for unmapped
// codes.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, ErrSessionExpired) {
		return "Your session has expired. Please log in again"
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		switch apiErr.Status {
		case http.StatusBadRequest:
			if apiErr.Message != "" {
				return apiErr.Message
			}
			return "Invalid request"
		case http.StatusUnauthorized:
			return "Not authorized. Please log in"
		case http.StatusForbidden:
			return "You do not have permission to perform this action"
		case http.StatusNotFound:
			return "Resource not found"
		case http.StatusConflict:
			if apiErr.Message != "" {
				return apiErr.Message
			}
			return "Request conflict"
		case http.StatusTooManyRequests:
			return "Too many requests. Please try again later"
		case http.StatusInternalServerError:
			return "Server error. Please try again later"
		default:
			if apiErr.Message != "" {
				return apiErr.Message
			}
			return fmt.Sprintf("Error %d", apiErr.Status)
		}
	}

	if errors.Is(err, ErrNetwork) {
		return "Could not connect to the server"
	}

	return "Unknown error"
}
