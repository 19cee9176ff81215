package errors

import (
	stderrors "errors"
	"fmt"
)

// Kind classifies an error so callers can react to it without string matching
type Kind string

const (
	KindNotFound            Kind = "not_found"
	KindSessionComplete     Kind = "session_complete"
	KindConflict            Kind = "conflict"
	KindProviderUnavailable Kind = "provider_unavailable"
	KindProviderRateLimited Kind = "provider_rate_limited"
	KindProviderTimeout     Kind = "provider_timeout"
	KindSynthesisFailed     Kind = "synthesis_failed"
	KindCoachingFailed      Kind = "coaching_failed"
	KindInvalidInput        Kind = "invalid_input"
	KindInternal            Kind = "internal"
)

// Common error types
var (
	// Session errors
	ErrSessionNotFound    = NewKind(KindNotFound, "session not found")
	ErrNoPendingQuestion  = NewKind(KindNotFound, "session has no pending question")
	ErrSessionComplete    = NewKind(KindSessionComplete, "interview is already complete")
	ErrConflict           = NewKind(KindConflict, "session was modified concurrently")
	ErrTurnInProgress     = NewKind(KindConflict, "another answer for this session is being processed")
	ErrInvalidInput       = NewKind(KindInvalidInput, "invalid input")
	ErrEmptyAnswer        = NewKind(KindInvalidInput, "answer is empty")
	ErrInvalidQuestionCap = NewKind(KindInvalidInput, "question limit must be positive")

	// Provider errors
	ErrProviderUnavailable   = NewKind(KindProviderUnavailable, "provider unavailable")
	ErrProviderRateLimited   = NewKind(KindProviderRateLimited, "provider rate limit exceeded")
	ErrProviderTimeout       = NewKind(KindProviderTimeout, "provider timeout")
	ErrProviderNotConfigured = NewKind(KindProviderUnavailable, "provider is not configured")
	ErrTranscriptionFailed   = NewKind(KindProviderUnavailable, "transcription failed")
	ErrEvaluationUnavailable = NewKind(KindProviderUnavailable, "evaluation unavailable")
	ErrQuestionUnavailable   = NewKind(KindProviderUnavailable, "question generation failed")
	ErrSynthesisFailed       = NewKind(KindSynthesisFailed, "speech synthesis failed")
	ErrCoachingFailed        = NewKind(KindCoachingFailed, "coaching feedback failed")
	ErrResponseInvalid       = NewKind(KindProviderUnavailable, "invalid provider response")

	// Database errors
	ErrQueryFailed  = New("query failed")
	ErrScanFailed   = New("scan failed")
	ErrInsertFailed = New("insert failed")
	ErrUpdateFailed = New("update failed")
)

// Error represents a standardized error
type Error struct {
	kind    Kind
	message string
	cause   error
}

// New creates a new internal error
func New(message string) *Error {
	return &Error{kind: KindInternal, message: message}
}

// NewKind creates a new error of the given kind
func NewKind(kind Kind, message string) *Error {
	return &Error{kind: kind, message: message}
}

// Newf creates a new formatted error
func Newf(format string, args ...interface{}) *Error {
	return &Error{kind: KindInternal, message: fmt.Sprintf(format, args...)}
}

// Wrap wraps an error with additional context. The kind of the wrapped
// error is kept.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return &Error{
		kind:    KindOf(err),
		message: message,
		cause:   err,
	}
}

// WithCause returns a copy of the sentinel carrying cause. The result still
// matches the sentinel with errors.Is and unwraps to cause.
func WithCause(sentinel *Error, cause error) error {
	if cause == nil {
		return sentinel
	}
	return &Error{
		kind:    sentinel.kind,
		message: sentinel.message,
		cause:   cause,
	}
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

// Message returns the message without the cause chain
func (e *Error) Message() string {
	return e.message
}

// Kind returns the error kind
func (e *Error) Kind() Kind {
	return e.kind
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.cause
}

// Is checks if the error matches target
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.message == t.message && e.kind == t.kind
}

// KindOf returns the kind of the outermost *Error in the chain, or
// KindInternal when there is none.
func KindOf(err error) Kind {
	var e *Error
	if stderrors.As(err, &e) {
		return e.kind
	}
	return KindInternal
}

// IsKind reports whether err is of the given kind
func IsKind(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

// Retryable reports whether the caller may retry the failed operation
func Retryable(err error) bool {
	switch KindOf(err) {
	case KindProviderRateLimited, KindProviderTimeout, KindConflict:
		return true
	default:
		return false
	}
}

// InvalidField returns an error for invalid field values
func InvalidField(field string, reason string) error {
	return WithCause(ErrInvalidInput, Newf("%s is invalid: %s", field, reason))
}
