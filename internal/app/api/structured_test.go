package api

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "interview-coach/internal/app/errors"
)

type verdict struct {
	Score int    `json:"score"`
	Note  string `json:"note"`
}

func reply(content string, err error) Attempt {
	return func() (string, error) { return content, err }
}

func mustNotRun(t *testing.T) Attempt {
	return func() (string, error) {
		t.Fatal("fallback must not run")
		return "", nil
	}
}

func TestTwoAttempt(t *testing.T) {
	t.Run("structured succeeds", func(t *testing.T) {
		var v verdict
		res := TwoAttempt(reply(`{"score": 80, "note": "ok"}`, nil), mustNotRun(t), &v)

		assert.Equal(t, OutcomeStructured, res.Outcome)
		assert.True(t, res.OK())
		assert.Equal(t, 80, v.Score)
	})

	t.Run("structured error falls back", func(t *testing.T) {
		var v verdict
		res := TwoAttempt(
			reply("", apperrors.WithCause(apperrors.ErrProviderUnavailable, stderrors.New("unsupported response_format"))),
			reply("```json\n{\"score\": 40, \"note\": \"meh\"}\n```", nil),
			&v,
		)

		assert.Equal(t, OutcomeFallback, res.Outcome)
		assert.Error(t, res.StructuredErr)
		assert.Equal(t, 40, v.Score)
		assert.Equal(t, "meh", v.Note)
	})

	t.Run("unparseable structured reply falls back", func(t *testing.T) {
		var v verdict
		res := TwoAttempt(reply("not json", nil), reply(`{"score": 1}`, nil), &v)

		assert.Equal(t, OutcomeFallback, res.Outcome)
		assert.True(t, stderrors.Is(res.StructuredErr, apperrors.ErrResponseInvalid))
	})

	t.Run("fallback starts from an empty value", func(t *testing.T) {
		var v verdict
		res := TwoAttempt(reply(`{"score": 80, "note": 5}`, nil), reply(`{"note": "retry"}`, nil), &v)

		assert.Equal(t, OutcomeFallback, res.Outcome)
		assert.Equal(t, verdict{Note: "retry"}, v)
	})

	t.Run("rate limit skips fallback", func(t *testing.T) {
		var v verdict
		res := TwoAttempt(reply("", apperrors.ErrProviderRateLimited), mustNotRun(t), &v)

		assert.Equal(t, OutcomeFailed, res.Outcome)
		assert.True(t, stderrors.Is(res.Err, apperrors.ErrProviderRateLimited))
	})

	t.Run("both fail", func(t *testing.T) {
		var v verdict
		res := TwoAttempt(reply("", stderrors.New("boom")), reply("still not json", nil), &v)

		require.False(t, res.OK())
		assert.True(t, stderrors.Is(res.Err, apperrors.ErrResponseInvalid))
	})
}

func TestDecodeJSON_LeavesOutOnFailure(t *testing.T) {
	v := verdict{Score: 7, Note: "kept"}

	err := DecodeJSON(`{"score": 99, "note": false}`, &v)

	assert.True(t, stderrors.Is(err, apperrors.ErrResponseInvalid))
	assert.Equal(t, verdict{Score: 7, Note: "kept"}, v)
}

func TestOutcomeString(t *testing.T) {
	assert.Equal(t, "structured", OutcomeStructured.String())
	assert.Equal(t, "fallback", OutcomeFallback.String())
	assert.Equal(t, "failed", OutcomeFailed.String())
}
