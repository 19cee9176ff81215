package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSession_Defaults(t *testing.T) {
	now := time.Unix(1700000000, 0)
	s := NewSession("id-1", "  ", "", "", 0, now)

	assert.Equal(t, DefaultCompany, s.Company)
	assert.Equal(t, DefaultPosition, s.Position)
	assert.Equal(t, DefaultDifficulty, s.Difficulty)
	assert.Equal(t, DefaultQuestionLimit, s.QuestionLimit)
	assert.Equal(t, int64(1), s.Revision)
	assert.Empty(t, s.Transcript)
	assert.Equal(t, StateCreated, s.State())
}

func TestSession_Lifecycle(t *testing.T) {
	s := NewSession("id-1", "Acme", "SRE", "Hard", 2, time.Now())

	s.AskQuestion("Tell me about yourself")
	q, ok := s.PendingQuestion()
	require.True(t, ok)
	assert.Equal(t, "Tell me about yourself", q)
	assert.Equal(t, StateAwaitingAnswer, s.State())

	s.RecordAnswer("I run on-call")
	_, ok = s.PendingQuestion()
	assert.False(t, ok)
	assert.Equal(t, 1, s.QuestionsAnswered)
	assert.Equal(t, StateStalled, s.State())

	last, ok := s.LastQuestion()
	require.True(t, ok)
	assert.Equal(t, "Tell me about yourself", last)

	s.AskQuestion("Describe an outage")
	s.RecordAnswer("DNS")
	assert.True(t, s.IsComplete())
	assert.Equal(t, StateCompleted, s.State())
	assert.Len(t, s.Transcript, 4)
}

func TestSession_HistoryText(t *testing.T) {
	s := NewSession("id-1", "Acme", "SRE", "Hard", 2, time.Now())
	s.AskQuestion("Q1")
	s.RecordAnswer("A1")

	assert.Equal(t, "Interviewer: Q1\nUser: A1\n", s.HistoryText())
	assert.Equal(t, "Company: Acme, Position: SRE, Difficulty: Hard", s.Context().String())
}

func TestSession_CloneIsDeep(t *testing.T) {
	s := NewSession("id-1", "", "", "", 3, time.Now())
	s.AskQuestion("Q1")

	c := s.Clone()
	c.RecordAnswer("A1")

	assert.Len(t, s.Transcript, 1)
	assert.Equal(t, 0, s.QuestionsAnswered)
	assert.Len(t, c.Transcript, 2)
}

func TestScoreReport_Clamp(t *testing.T) {
	r := ScoreReport{Scores: Scores{Technical: -5, Clarity: 150, Structure: 50, Confidence: 100, Professionalism: 0}}
	r.Clamp()

	assert.Equal(t, Scores{Technical: 0, Clarity: 100, Structure: 50, Confidence: 100, Professionalism: 0}, r.Scores)
	assert.InDelta(t, 50.0, r.Average(), 0.001)
}

func TestNewTurn(t *testing.T) {
	now := time.Now()
	report := ScoreReport{
		Scores:          Scores{Technical: 80, Clarity: 70, Structure: 60, Confidence: 90, Professionalism: 95},
		Strengths:       "clear",
		Weaknesses:      "short",
		ImprovementPlan: "use STAR",
	}

	turn := NewTurn("s1", "Q", "A", report, "Nice work", now)

	assert.Equal(t, "s1", turn.SessionID)
	assert.Equal(t, report.Scores, turn.Scores)
	assert.Equal(t, "use STAR", turn.ImprovementPlan)
	assert.Equal(t, "Nice work", turn.CoachFeedback)
	assert.Equal(t, now, turn.CreatedAt)
}
