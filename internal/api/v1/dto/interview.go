package dto

import (
	"strings"
	"time"

	"github.com/samber/lo"

	"interview-coach/internal/api/errors"
	"interview-coach/internal/app/interview"
	"interview-coach/internal/app/model"
)

// StartInterviewRequest represents the request to start an interview
type StartInterviewRequest struct {
	Company       string `json:"company,omitempty" binding:"omitempty,max=200" example:"Acme"`
	Position      string `json:"position,omitempty" binding:"omitempty,max=200" example:"Backend Engineer"`
	Difficulty    string `json:"difficulty,omitempty" binding:"omitempty,max=50" example:"Intermediate"`
	QuestionLimit int    `json:"question_limit,omitempty" binding:"omitempty,min=1,max=50" example:"5"`
}

// Validate performs domain-specific validation
func (r *StartInterviewRequest) Validate() error {
	if r.QuestionLimit < 0 {
		return errors.NewValidationError("Invalid interview request", map[string]string{
			"question_limit": "must be positive",
		})
	}
	return nil
}

// StartInterviewResponse is returned when an interview starts
type StartInterviewResponse struct {
	SessionID     string `json:"session_id"`
	Question      string `json:"question"`
	AudioURL      string `json:"audio_url,omitempty"`
	QuestionLimit int    `json:"question_limit"`
}

// SubmitAnswerRequest carries a typed answer
type SubmitAnswerRequest struct {
	AnswerText string `json:"answer_text" binding:"required,max=20000"`
}

// Validate rejects whitespace-only answers
func (r *SubmitAnswerRequest) Validate() error {
	if strings.TrimSpace(r.AnswerText) == "" {
		return errors.NewValidationError("Invalid answer", map[string]string{
			"answer_text": "is required",
		})
	}
	return nil
}

// CompatSubmitAnswerRequest is the body of POST /submit-answer
type CompatSubmitAnswerRequest struct {
	SessionID  string `json:"session_id" binding:"required"`
	AnswerText string `json:"answer_text" binding:"required,max=20000"`
}

// Evaluation is the score report as returned to clients
type Evaluation struct {
	TechnicalScore       int     `json:"technical_score"`
	ClarityScore         int     `json:"clarity_score"`
	StructureScore       int     `json:"structure_score"`
	ConfidenceScore      int     `json:"confidence_score"`
	ProfessionalismScore int     `json:"professionalism_score"`
	AverageScore         float64 `json:"average_score"`
	Strengths            string  `json:"strengths"`
	Weaknesses           string  `json:"weaknesses"`
	ImprovementPlan      string  `json:"improvement_plan"`
}

// TurnResponse is the outcome of one answered question
type TurnResponse struct {
	SessionID         string     `json:"session_id"`
	UserText          string     `json:"user_text,omitempty"`
	Evaluation        Evaluation `json:"evaluation"`
	CoachFeedback     string     `json:"coach_feedback"`
	CoachingDegraded  bool       `json:"coaching_degraded"`
	NextQuestion      *string    `json:"next_question"`
	AudioURL          string     `json:"audio_url,omitempty"`
	Completed         bool       `json:"completed"`
	QuestionsAnswered int        `json:"questions_answered"`
	QuestionLimit     int        `json:"question_limit"`
}

// TranscriptEntry is one utterance of the interview
type TranscriptEntry struct {
	Speaker string `json:"speaker"`
	Text    string `json:"text"`
}

// SessionSummary describes a session without its turns
type SessionSummary struct {
	ID                string    `json:"id"`
	Company           string    `json:"company"`
	Position          string    `json:"position"`
	Difficulty        string    `json:"difficulty"`
	QuestionLimit     int       `json:"question_limit"`
	QuestionsAnswered int       `json:"questions_answered"`
	State             string    `json:"state"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// SessionResponse is a session including its transcript
type SessionResponse struct {
	SessionSummary
	Transcript []TranscriptEntry `json:"transcript"`
}

// TurnRecord is a persisted turn
type TurnRecord struct {
	ID            int64      `json:"id"`
	Question      string     `json:"question"`
	Answer        string     `json:"answer"`
	Evaluation    Evaluation `json:"evaluation"`
	CoachFeedback string     `json:"coach_feedback"`
	CreatedAt     time.Time  `json:"created_at"`
}

// SessionDetailResponse is returned by GET /interviews/:id
type SessionDetailResponse struct {
	Session SessionResponse `json:"session"`
	Turns   []TurnRecord    `json:"turns"`
}

// ListSessionsQuery represents query parameters for listing sessions
type ListSessionsQuery struct {
	Limit int `form:"limit" binding:"omitempty,min=1,max=100"`
}

// SessionListResponse is returned by GET /interviews
type SessionListResponse struct {
	Sessions []SessionSummary `json:"sessions"`
	Count    int              `json:"count"`
}

// TranscriptionResponse is returned by POST /transcriptions
type TranscriptionResponse struct {
	Text string `json:"text"`
}

// SpeechRequest is the body of POST /speech
type SpeechRequest struct {
	Text string `json:"text" binding:"required,max=4096"`
}

// ToEvaluation converts a score report
func ToEvaluation(r model.ScoreReport) Evaluation {
	return Evaluation{
		TechnicalScore:       r.Technical,
		ClarityScore:         r.Clarity,
		StructureScore:       r.Structure,
		ConfidenceScore:      r.Confidence,
		ProfessionalismScore: r.Professionalism,
		AverageScore:         r.Average(),
		Strengths:            r.Strengths,
		Weaknesses:           r.Weaknesses,
		ImprovementPlan:      r.ImprovementPlan,
	}
}

// ToTurnResponse converts an orchestrator result. The recognised answer is
// echoed back only for audio answers.
func ToTurnResponse(res *interview.TurnResult, echoAnswer bool) *TurnResponse {
	resp := &TurnResponse{
		SessionID:         res.SessionID,
		Evaluation:        ToEvaluation(res.Evaluation),
		CoachFeedback:     res.CoachFeedback,
		CoachingDegraded:  res.CoachingDegraded,
		AudioURL:          res.AudioURL,
		Completed:         res.Completed,
		QuestionsAnswered: res.QuestionsAnswered,
		QuestionLimit:     res.QuestionLimit,
	}
	if echoAnswer {
		resp.UserText = res.AnswerText
	}
	if res.NextQuestion != "" {
		next := res.NextQuestion
		resp.NextQuestion = &next
	}
	return resp
}

// ToSessionSummary converts a session
func ToSessionSummary(s *model.Session) SessionSummary {
	return SessionSummary{
		ID:                s.ID,
		Company:           s.Company,
		Position:          s.Position,
		Difficulty:        s.Difficulty,
		QuestionLimit:     s.QuestionLimit,
		QuestionsAnswered: s.QuestionsAnswered,
		State:             string(s.State()),
		CreatedAt:         s.CreatedAt,
		UpdatedAt:         s.UpdatedAt,
	}
}

// ToSessionDetailResponse converts a session with its turns
func ToSessionDetailResponse(d *interview.SessionDetail) *SessionDetailResponse {
	return &SessionDetailResponse{
		Session: SessionResponse{
			SessionSummary: ToSessionSummary(d.Session),
			Transcript: lo.Map(d.Session.Transcript, func(e model.TranscriptEntry, _ int) TranscriptEntry {
				return TranscriptEntry{Speaker: string(e.Speaker), Text: e.Text}
			}),
		},
		Turns: lo.Map(d.Turns, func(t model.Turn, _ int) TurnRecord {
			return TurnRecord{
				ID:       t.ID,
				Question: t.Question,
				Answer:   t.Answer,
				Evaluation: ToEvaluation(model.ScoreReport{
					Scores:          t.Scores,
					Strengths:       t.Strengths,
					Weaknesses:      t.Weaknesses,
					ImprovementPlan: t.ImprovementPlan,
				}),
				CoachFeedback: t.CoachFeedback,
				CreatedAt:     t.CreatedAt,
			}
		}),
	}
}

// ToSessionListResponse converts a page of sessions
func ToSessionListResponse(sessions []*model.Session) *SessionListResponse {
	return &SessionListResponse{
		Sessions: lo.Map(sessions, func(s *model.Session, _ int) SessionSummary {
			return ToSessionSummary(s)
		}),
		Count: len(sessions),
	}
}
