package model

import "time"

// Scores holds the five evaluation dimensions, each in [0,100]
type Scores struct {
	Technical       int `json:"technical_score"`
	Clarity         int `json:"clarity_score"`
	Structure       int `json:"structure_score"`
	Confidence      int `json:"confidence_score"`
	Professionalism int `json:"professionalism_score"`
}

// ScoreReport is the evaluator's verdict on one answer. It is never stored
// directly; NewTurn projects it into a Turn.
type ScoreReport struct {
	Scores
	Strengths       string `json:"strengths"`
	Weaknesses      string `json:"weaknesses"`
	ImprovementPlan string `json:"improvement_plan"`
}

// Clamp forces every score into [0,100]
func (r *ScoreReport) Clamp() {
	for _, p := range []*int{&r.Technical, &r.Clarity, &r.Structure, &r.Confidence, &r.Professionalism} {
		switch {
		case *p < 0:
			*p = 0
		case *p > 100:
			*p = 100
		}
	}
}

// Average returns the mean of the five scores
func (s Scores) Average() float64 {
	return float64(s.Technical+s.Clarity+s.Structure+s.Confidence+s.Professionalism) / 5
}

// Turn is one answered question. Created once, never modified.
type Turn struct {
	ID              int64     `json:"id"`
	SessionID       string    `json:"session_id"`
	Question        string    `json:"question"`
	Answer          string    `json:"answer"`
	Scores          Scores    `json:"scores"`
	Strengths       string    `json:"strengths"`
	Weaknesses      string    `json:"weaknesses"`
	ImprovementPlan string    `json:"improvement_plan"`
	CoachFeedback   string    `json:"coach_feedback"`
	CreatedAt       time.Time `json:"created_at"`
}

// NewTurn projects an evaluation into a turn record
func NewTurn(sessionID, question, answer string, report ScoreReport, coachFeedback string, now time.Time) *Turn {
	return &Turn{
		SessionID:       sessionID,
		Question:        question,
		Answer:          answer,
		Scores:          report.Scores,
		Strengths:       report.Strengths,
		Weaknesses:      report.Weaknesses,
		ImprovementPlan: report.ImprovementPlan,
		CoachFeedback:   coachFeedback,
		CreatedAt:       now,
	}
}

// AudioClip is synthesized speech ready to be stored
type AudioClip struct {
	Data        []byte
	ContentType string
	Extension   string
}
