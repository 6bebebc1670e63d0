package provider

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors for common provider failures.
var (
	ErrContextLengthExceeded = errors.New("context length exceeded")
	ErrContentBlocked        = errors.New("content blocked by safety filters")
	ErrEmptyResponse         = errors.New("provider returned no choices")
)

// ErrorCode represents a provider error code.
type ErrorCode string

const (
	ErrorCodeContextLength  ErrorCode = "context_length_exceeded"
	ErrorCodeContentBlocked ErrorCode = "content_blocked"
	ErrorCodeRateLimit      ErrorCode = "rate_limit"
	ErrorCodeAuth           ErrorCode = "authentication_failed"
	ErrorCodePermission     ErrorCode = "permission_denied"
	ErrorCodeNotFound       ErrorCode = "not_found"
	ErrorCodeNetwork        ErrorCode = "network_error"
	ErrorCodeUnavailable    ErrorCode = "service_unavailable"
	ErrorCodeInvalidRequest ErrorCode = "invalid_request"
	ErrorCodeEmptyResponse  ErrorCode = "empty_response"
)

// ProviderError wraps backend errors with a backend-independent code.
type ProviderError struct {
	Backend    string
	Code       ErrorCode
	Message    string
	Underlying error
	Retryable  bool
}

// Error implements the error interface.
func (e *ProviderError) Error() string {
	if e.Underlying != nil {
		return fmt.Sprintf("%s: %s: %s (%v)", e.Backend, e.Code, e.Message, e.Underlying)
	}
	return fmt.Sprintf("%s: %s: %s", e.Backend, e.Code, e.Message)
}

// Unwrap returns the underlying error.
func (e *ProviderError) Unwrap() error {
	return e.Underlying
}

// IsRetryable returns true if the error is retryable.
func IsRetryable(err error) bool {
	var providerErr *ProviderError
	if errors.As(err, &providerErr) {
		return providerErr.Retryable
	}
	return false
}

// FromStatus maps an HTTP status returned by a backend SDK to a ProviderError.
// A zero status means the request never got an HTTP answer.
func FromStatus(backend string, status int, message string, err error) *ProviderError {
	pe := &ProviderError{Backend: backend, Message: message, Underlying: err}

	switch {
	case status == 0:
		pe.Code = ErrorCodeNetwork
		pe.Message = "network error"
		pe.Retryable = true
	case status == http.StatusUnauthorized:
		pe.Code = ErrorCodeAuth
		pe.Message = "authentication failed"
	case status == http.StatusForbidden:
		pe.Code = ErrorCodePermission
		pe.Message = "permission denied"
	case status == http.StatusNotFound:
		pe.Code = ErrorCodeNotFound
	case status == http.StatusTooManyRequests:
		pe.Code = ErrorCodeRateLimit
		pe.Message = "rate limit exceeded"
		pe.Retryable = true
	case status == http.StatusBadRequest:
		pe.Code = ErrorCodeInvalidRequest
	case status >= 500:
		pe.Code = ErrorCodeUnavailable
		pe.Message = "service unavailable"
		pe.Retryable = true
	default:
		pe.Code = ErrorCodeNetwork
		pe.Retryable = true
	}

	if pe.Message == "" {
		pe.Message = http.StatusText(status)
	}
	return pe
}
