package services

import (
	"context"

	"interview-coach/internal/api/errors"
	"interview-coach/internal/api/v1/dto"
	"interview-coach/internal/app/interview"
	"interview-coach/internal/app/model"
)

// InterviewServiceImpl implements InterviewService and SpeechService on top
// of the turn orchestrator
type InterviewServiceImpl struct {
	orchestrator *interview.Orchestrator
}

// NewInterviewService creates a new interview service
func NewInterviewService(orchestrator *interview.Orchestrator) *InterviewServiceImpl {
	return &InterviewServiceImpl{orchestrator: orchestrator}
}

// StartInterview creates a session and returns its first question
func (s *InterviewServiceImpl) StartInterview(ctx context.Context, req *dto.StartInterviewRequest) (*dto.StartInterviewResponse, error) {
	res, err := s.orchestrator.StartSession(ctx, interview.StartRequest{
		Company:       req.Company,
		Position:      req.Position,
		Difficulty:    req.Difficulty,
		QuestionLimit: req.QuestionLimit,
	})
	if err != nil {
		return nil, errors.FromError(err)
	}

	return &dto.StartInterviewResponse{
		SessionID:     res.SessionID,
		Question:      res.Question,
		AudioURL:      res.AudioURL,
		QuestionLimit: res.QuestionLimit,
	}, nil
}

// SubmitAnswer processes a typed answer
func (s *InterviewServiceImpl) SubmitAnswer(ctx context.Context, sessionID string, req *dto.SubmitAnswerRequest) (*dto.TurnResponse, error) {
	res, err := s.orchestrator.SubmitAnswer(ctx, sessionID, interview.Answer{Text: req.AnswerText})
	if err != nil {
		return nil, errors.FromError(err)
	}
	return dto.ToTurnResponse(res, false), nil
}

// SubmitAudioAnswer transcribes and processes a recorded answer
func (s *InterviewServiceImpl) SubmitAudioAnswer(ctx context.Context, sessionID string, audio []byte, filename string) (*dto.TurnResponse, error) {
	res, err := s.orchestrator.SubmitAnswer(ctx, sessionID, interview.Answer{Audio: audio, Filename: filename})
	if err != nil {
		return nil, errors.FromError(err)
	}
	return dto.ToTurnResponse(res, true), nil
}

// GetSession retrieves a session with its turns
func (s *InterviewServiceImpl) GetSession(ctx context.Context, sessionID string) (*dto.SessionDetailResponse, error) {
	detail, err := s.orchestrator.GetSession(ctx, sessionID)
	if err != nil {
		return nil, errors.FromError(err)
	}
	return dto.ToSessionDetailResponse(detail), nil
}

// ListSessions lists the most recent sessions
func (s *InterviewServiceImpl) ListSessions(ctx context.Context, query dto.ListSessionsQuery) (*dto.SessionListResponse, error) {
	sessions, err := s.orchestrator.ListSessions(ctx, query.Limit)
	if err != nil {
		return nil, errors.FromError(err)
	}
	return dto.ToSessionListResponse(sessions), nil
}

// Transcribe converts an uploaded recording to text
func (s *InterviewServiceImpl) Transcribe(ctx context.Context, audio []byte, filename string) (*dto.TranscriptionResponse, error) {
	text, err := s.orchestrator.Transcribe(ctx, audio, filename)
	if err != nil {
		return nil, errors.FromError(err)
	}
	return &dto.TranscriptionResponse{Text: text}, nil
}

// Speak synthesizes text
func (s *InterviewServiceImpl) Speak(ctx context.Context, req *dto.SpeechRequest) (*model.AudioClip, error) {
	clip, err := s.orchestrator.Speak(ctx, req.Text)
	if err != nil {
		return nil, errors.FromError(err)
	}
	return clip, nil
}
