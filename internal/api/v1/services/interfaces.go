package services

import (
	"context"

	"interview-coach/internal/api/v1/dto"
	"interview-coach/internal/app/model"
)

// InterviewService defines the interface for interview operations
type InterviewService interface {
	StartInterview(ctx context.Context, req *dto.StartInterviewRequest) (*dto.StartInterviewResponse, error)
	SubmitAnswer(ctx context.Context, sessionID string, req *dto.SubmitAnswerRequest) (*dto.TurnResponse, error)
	SubmitAudioAnswer(ctx context.Context, sessionID string, audio []byte, filename string) (*dto.TurnResponse, error)
	GetSession(ctx context.Context, sessionID string) (*dto.SessionDetailResponse, error)
	ListSessions(ctx context.Context, query dto.ListSessionsQuery) (*dto.SessionListResponse, error)
}

// SpeechService defines the interface for stand-alone speech operations
type SpeechService interface {
	Transcribe(ctx context.Context, audio []byte, filename string) (*dto.TranscriptionResponse, error)
	Speak(ctx context.Context, req *dto.SpeechRequest) (*model.AudioClip, error)
}
