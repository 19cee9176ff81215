package session

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"interview-coach/internal/app/model"
)

func TestWriteSessions(t *testing.T) {
	s := model.NewSession("abc", "Acme", "SRE", "", 3, time.Unix(1700000000, 0))
	s.AskQuestion("Q1")

	var out bytes.Buffer
	require.NoError(t, writeSessions(&out, []*model.Session{s}))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "PROGRESS")
	assert.Contains(t, lines[1], "abc")
	assert.Contains(t, lines[1], "0/3")
	assert.Contains(t, lines[1], "awaiting_answer")
}

func TestWriteDetail(t *testing.T) {
	s := model.NewSession("abc", "Acme", "SRE", "Advanced", 2, time.Unix(1700000000, 0))
	s.AskQuestion("Tell me about on-call.")
	s.RecordAnswer("Paged a lot.")
	s.AskQuestion("What did you automate?")
	report := model.ScoreReport{Scores: model.Scores{Technical: 50, Clarity: 50, Structure: 50, Confidence: 50, Professionalism: 50}}
	turns := []model.Turn{*model.NewTurn("abc", "Tell me about on-call.", "Paged a lot.", report, "Add numbers.", time.Now())}

	var out bytes.Buffer
	writeDetail(&out, s, turns)

	assert.Contains(t, out.String(), "Company: Acme, Position: SRE, Difficulty: Advanced")
	assert.Contains(t, out.String(), "Q1: Tell me about on-call.")
	assert.Contains(t, out.String(), "(avg 50.0)")
	assert.Contains(t, out.String(), "coach: Add numbers.")
	assert.Contains(t, out.String(), "Waiting for an answer to: What did you automate?")
}
