package test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"

	"interview-coach/internal/api/v1/dto"
	"interview-coach/internal/app/model"
)

// MockInterviewService is a mock implementation of services.InterviewService
type MockInterviewService struct {
	mock.Mock
}

func (m *MockInterviewService) StartInterview(ctx context.Context, req *dto.StartInterviewRequest) (*dto.StartInterviewResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.StartInterviewResponse), args.Error(1)
}

func (m *MockInterviewService) SubmitAnswer(ctx context.Context, sessionID string, req *dto.SubmitAnswerRequest) (*dto.TurnResponse, error) {
	args := m.Called(ctx, sessionID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.TurnResponse), args.Error(1)
}

func (m *MockInterviewService) SubmitAudioAnswer(ctx context.Context, sessionID string, audio []byte, filename string) (*dto.TurnResponse, error) {
	args := m.Called(ctx, sessionID, audio, filename)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.TurnResponse), args.Error(1)
}

func (m *MockInterviewService) GetSession(ctx context.Context, sessionID string) (*dto.SessionDetailResponse, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.SessionDetailResponse), args.Error(1)
}

func (m *MockInterviewService) ListSessions(ctx context.Context, query dto.ListSessionsQuery) (*dto.SessionListResponse, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.SessionListResponse), args.Error(1)
}

// MockSpeechService is a mock implementation of services.SpeechService
type MockSpeechService struct {
	mock.Mock
}

func (m *MockSpeechService) Transcribe(ctx context.Context, audio []byte, filename string) (*dto.TranscriptionResponse, error) {
	args := m.Called(ctx, audio, filename)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.TranscriptionResponse), args.Error(1)
}

func (m *MockSpeechService) Speak(ctx context.Context, req *dto.SpeechRequest) (*model.AudioClip, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AudioClip), args.Error(1)
}

// MockServices bundles the service mocks a router needs
type MockServices struct {
	InterviewService *MockInterviewService
	SpeechService    *MockSpeechService
}

func NewMockServices(t *testing.T) *MockServices {
	ms := &MockServices{
		InterviewService: &MockInterviewService{},
		SpeechService:    &MockSpeechService{},
	}
	ms.InterviewService.Test(t)
	ms.SpeechService.Test(t)
	t.Cleanup(func() {
		ms.InterviewService.AssertExpectations(t)
		ms.SpeechService.AssertExpectations(t)
	})
	return ms
}
