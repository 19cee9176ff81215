package errors

import (
	stderrors "errors"
	"net/http"

	apperrors "interview-coach/internal/app/errors"
)

// ErrorKind represents different types of API errors
type ErrorKind string

const (
	KindValidation  ErrorKind = "validation"
	KindNotFound    ErrorKind = "not_found"
	KindConflict    ErrorKind = "conflict"
	KindInternal    ErrorKind = "internal"
	KindBadRequest  ErrorKind = "bad_request"
	KindRateLimited ErrorKind = "rate_limited"
	KindTimeout     ErrorKind = "timeout"
	KindProvider    ErrorKind = "provider_error"
)

// APIError represents a structured API error response
type APIError struct {
	Kind      ErrorKind         `json:"kind"`
	Message   string            `json:"message"`
	Details   map[string]string `json:"details,omitempty"`
	RequestID string            `json:"request_id,omitempty"`
	Code      string            `json:"code,omitempty"`
}

// Error implements the error interface
func (e *APIError) Error() string {
	return e.Message
}

// HTTPStatus returns the appropriate HTTP status code for the error kind
func (e *APIError) HTTPStatus() int {
	switch e.Kind {
	case KindValidation:
		return http.StatusUnprocessableEntity
	case KindBadRequest:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	case KindRateLimited:
		return http.StatusTooManyRequests
	case KindTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// NewValidationError creates a validation error with field details
func NewValidationError(message string, fields map[string]string) *APIError {
	return &APIError{
		Kind:    KindValidation,
		Message: message,
		Details: fields,
	}
}

// NewBadRequestError creates a bad request error
func NewBadRequestError(message string) *APIError {
	return &APIError{
		Kind:    KindBadRequest,
		Message: message,
	}
}

// FromError maps a domain error to an API error. Code carries the domain
// kind so clients can tell a finished interview from a concurrent update.
func FromError(err error) *APIError {
	if err == nil {
		return nil
	}

	var apiErr *APIError
	if stderrors.As(err, &apiErr) {
		return apiErr
	}

	kind := apperrors.KindOf(err)
	out := &APIError{Message: err.Error(), Code: string(kind)}

	switch kind {
	case apperrors.KindNotFound:
		out.Kind = KindNotFound
	case apperrors.KindSessionComplete, apperrors.KindConflict:
		out.Kind = KindConflict
	case apperrors.KindInvalidInput:
		out.Kind = KindBadRequest
	case apperrors.KindProviderRateLimited:
		out.Kind = KindRateLimited
		out.Message = "API rate limit exceeded. Please check your API credits or try again later."
	case apperrors.KindProviderTimeout:
		out.Kind = KindTimeout
	case apperrors.KindProviderUnavailable, apperrors.KindSynthesisFailed, apperrors.KindCoachingFailed:
		out.Kind = KindProvider
	default:
		out.Kind = KindInternal
		out.Message = "Internal server error"
	}

	return out
}
