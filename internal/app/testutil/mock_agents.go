package testutil

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"

	"interview-coach/internal/app/model"
)

// MockInterviewer is a mock question generator
type MockInterviewer struct {
	mock.Mock
}

func NewMockInterviewer(t *testing.T) *MockInterviewer {
	m := &MockInterviewer{}
	m.Test(t)
	return m
}

func (m *MockInterviewer) NextQuestion(ctx context.Context, ic model.InterviewContext, transcript []model.TranscriptEntry) (string, error) {
	args := m.Called(ctx, ic, transcript)
	return args.String(0), args.Error(1)
}

// MockEvaluator is a mock answer evaluator
type MockEvaluator struct {
	mock.Mock
}

func NewMockEvaluator(t *testing.T) *MockEvaluator {
	m := &MockEvaluator{}
	m.Test(t)
	return m
}

func (m *MockEvaluator) Evaluate(ctx context.Context, question, answer string) (model.ScoreReport, error) {
	args := m.Called(ctx, question, answer)
	return args.Get(0).(model.ScoreReport), args.Error(1)
}

// MockCoach is a mock feedback coach
type MockCoach struct {
	mock.Mock
}

func NewMockCoach(t *testing.T) *MockCoach {
	m := &MockCoach{}
	m.Test(t)
	return m
}

func (m *MockCoach) Feedback(ctx context.Context, report model.ScoreReport) (string, error) {
	args := m.Called(ctx, report)
	return args.String(0), args.Error(1)
}
