package interview

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "interview-coach/internal/app/errors"
	coach "interview-coach/internal/app/interview"
	"interview-coach/internal/app/model"
)

type mockDriver struct {
	mock.Mock
}

func (m *mockDriver) StartSession(ctx context.Context, req coach.StartRequest) (*coach.StartResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*coach.StartResult), args.Error(1)
}

func (m *mockDriver) SubmitAnswer(ctx context.Context, sessionID string, answer coach.Answer) (*coach.TurnResult, error) {
	args := m.Called(ctx, sessionID, answer)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*coach.TurnResult), args.Error(1)
}

func turn(next string, done bool) *coach.TurnResult {
	return &coach.TurnResult{
		SessionID:     "s1",
		Evaluation:    model.ScoreReport{Scores: model.Scores{Technical: 80, Clarity: 80, Structure: 80, Confidence: 80, Professionalism: 80}},
		CoachFeedback: "Nice.",
		NextQuestion:  next,
		Completed:     done,
		QuestionLimit: 2,
	}
}

func TestRun_CompletesInterview(t *testing.T) {
	d := &mockDriver{}
	d.On("StartSession", mock.Anything, coach.StartRequest{Company: "Acme"}).
		Return(&coach.StartResult{SessionID: "s1", Question: "Why Acme?", QuestionLimit: 2}, nil)
	d.On("SubmitAnswer", mock.Anything, "s1", coach.Answer{Text: "I like rockets. A lot."}).Return(turn("Biggest failure?", false), nil)
	d.On("SubmitAnswer", mock.Anything, "s1", coach.Answer{Text: "Shipping late."}).Return(turn("", true), nil)

	in := strings.NewReader("I like rockets.\nA lot.\n\n\nShipping late.\n\n")
	var out bytes.Buffer

	err := Run(context.Background(), d, in, &out, coach.StartRequest{Company: "Acme"})

	require.NoError(t, err)
	d.AssertExpectations(t)
	assert.Contains(t, out.String(), "Q1: Why Acme?")
	assert.Contains(t, out.String(), "Q2: Biggest failure?")
	assert.Contains(t, out.String(), "(avg 80.0)")
	assert.Contains(t, out.String(), "Interview complete.")
}

func TestRun_RetriesRateLimitedAnswer(t *testing.T) {
	d := &mockDriver{}
	d.On("StartSession", mock.Anything, mock.Anything).
		Return(&coach.StartResult{SessionID: "s1", Question: "Q", QuestionLimit: 1}, nil)
	d.On("SubmitAnswer", mock.Anything, "s1", coach.Answer{Text: "first"}).
		Return(nil, apperrors.ErrProviderRateLimited).Once()
	d.On("SubmitAnswer", mock.Anything, "s1", coach.Answer{Text: "second"}).Return(turn("", true), nil)

	var out bytes.Buffer
	err := Run(context.Background(), d, strings.NewReader("first\n\nsecond\n"), &out, coach.StartRequest{})

	require.NoError(t, err)
	assert.Contains(t, out.String(), "Try again.")
	assert.Equal(t, 2, strings.Count(out.String(), "Q1: Q"))
}

func TestRun_StopsOnEOF(t *testing.T) {
	d := &mockDriver{}
	d.On("StartSession", mock.Anything, mock.Anything).
		Return(&coach.StartResult{SessionID: "s1", Question: "Q", QuestionLimit: 3}, nil)

	var out bytes.Buffer
	err := Run(context.Background(), d, strings.NewReader(""), &out, coach.StartRequest{})

	require.NoError(t, err)
	assert.Contains(t, out.String(), "Resume later with session s1")
	d.AssertNotCalled(t, "SubmitAnswer", mock.Anything, mock.Anything, mock.Anything)
}

func TestRun_FatalError(t *testing.T) {
	d := &mockDriver{}
	d.On("StartSession", mock.Anything, mock.Anything).
		Return(&coach.StartResult{SessionID: "s1", Question: "Q", QuestionLimit: 3}, nil)
	d.On("SubmitAnswer", mock.Anything, "s1", mock.Anything).Return(nil, apperrors.ErrSessionNotFound)

	err := Run(context.Background(), d, strings.NewReader("hello\n"), &bytes.Buffer{}, coach.StartRequest{})

	assert.True(t, errors.Is(err, apperrors.ErrSessionNotFound))
}
