package errors

import (
	stderrors "errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "interview-coach/internal/app/errors"
)

func TestFromError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantKind   ErrorKind
		wantStatus int
		wantCode   string
	}{
		{"session not found", apperrors.ErrSessionNotFound, KindNotFound, http.StatusNotFound, "not_found"},
		{"session complete", apperrors.ErrSessionComplete, KindConflict, http.StatusConflict, "session_complete"},
		{"turn in progress", apperrors.ErrTurnInProgress, KindConflict, http.StatusConflict, "conflict"},
		{"stale revision", apperrors.ErrConflict, KindConflict, http.StatusConflict, "conflict"},
		{"empty answer", apperrors.ErrEmptyAnswer, KindBadRequest, http.StatusBadRequest, "invalid_input"},
		{
			"rate limited",
			apperrors.WithCause(apperrors.ErrProviderRateLimited, stderrors.New("429")),
			KindRateLimited, http.StatusTooManyRequests, "provider_rate_limited",
		},
		{"timeout", apperrors.ErrProviderTimeout, KindTimeout, http.StatusGatewayTimeout, "provider_timeout"},
		{
			"evaluation unavailable",
			apperrors.WithCause(apperrors.ErrEvaluationUnavailable, stderrors.New("upstream 500")),
			KindProvider, http.StatusInternalServerError, "provider_unavailable",
		},
		{"plain error", stderrors.New("disk on fire"), KindInternal, http.StatusInternalServerError, "internal"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromError(tt.err)
			assert.Equal(t, tt.wantKind, got.Kind)
			assert.Equal(t, tt.wantStatus, got.HTTPStatus())
			assert.Equal(t, tt.wantCode, got.Code)
		})
	}
}

func TestFromError_KeepsProviderMessage(t *testing.T) {
	err := apperrors.WithCause(apperrors.ErrEvaluationUnavailable, stderrors.New("upstream 500"))

	got := FromError(err)

	assert.Contains(t, got.Message, "upstream 500")
}

func TestFromError_HidesInternalDetail(t *testing.T) {
	got := FromError(stderrors.New("pq: password authentication failed"))

	assert.Equal(t, "Internal server error", got.Message)
}

func TestFromError_PassesAPIErrorThrough(t *testing.T) {
	orig := NewBadRequestError("Uploaded file is empty")

	assert.Same(t, orig, FromError(orig))
	assert.Nil(t, FromError(nil))
}
