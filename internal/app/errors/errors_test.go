package errors

import (
	"context"
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithCause(t *testing.T) {
	cause := fmt.Errorf("status 429")
	err := WithCause(ErrProviderRateLimited, cause)

	assert.True(t, stderrors.Is(err, ErrProviderRateLimited))
	assert.False(t, stderrors.Is(err, ErrProviderUnavailable))
	assert.True(t, stderrors.Is(err, cause))
	assert.Equal(t, KindProviderRateLimited, KindOf(err))
	assert.Equal(t, "provider rate limit exceeded: status 429", err.Error())
}

func TestWrapKeepsKind(t *testing.T) {
	err := Wrap(ErrSessionNotFound, "load session abc")

	assert.Equal(t, KindNotFound, KindOf(err))
	assert.True(t, stderrors.Is(err, ErrSessionNotFound))
	assert.Contains(t, err.Error(), "load session abc")
	assert.Nil(t, Wrap(nil, "nothing"))
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"plain error", fmt.Errorf("boom"), KindInternal},
		{"sentinel", ErrSessionComplete, KindSessionComplete},
		{"fmt wrapped sentinel", fmt.Errorf("submit: %w", ErrConflict), KindConflict},
		{"same kind different sentinel", ErrNoPendingQuestion, KindNotFound},
		{"nil", nil, KindInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}

func TestSentinelsAreDistinct(t *testing.T) {
	assert.False(t, stderrors.Is(ErrNoPendingQuestion, ErrSessionNotFound))
	assert.False(t, stderrors.Is(ErrTurnInProgress, ErrConflict))
	assert.True(t, IsKind(ErrTurnInProgress, KindConflict))
}

func TestRetryable(t *testing.T) {
	assert.True(t, Retryable(WithCause(ErrProviderTimeout, context.DeadlineExceeded)))
	assert.True(t, Retryable(ErrProviderRateLimited))
	assert.True(t, Retryable(ErrConflict))
	assert.False(t, Retryable(ErrEvaluationUnavailable))
	assert.False(t, Retryable(ErrSessionNotFound))
}

func TestInvalidField(t *testing.T) {
	err := InvalidField("question_limit", "must be positive")
	assert.True(t, stderrors.Is(err, ErrInvalidInput))
	assert.Contains(t, err.Error(), "question_limit is invalid")
}
