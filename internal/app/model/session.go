package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/samber/lo"
)

// Speaker tags a transcript entry
type Speaker string

const (
	SpeakerInterviewer Speaker = "Interviewer"
	SpeakerUser        Speaker = "User"
)

// SessionState is derived from the transcript and the question counter
type SessionState string

const (
	StateCreated        SessionState = "created"
	StateAwaitingAnswer SessionState = "awaiting_answer"
	StateCompleted      SessionState = "completed"
	// StateStalled means the last entry is an answer but the limit was not
	// reached. Sessions written by this package never end up here.
	StateStalled SessionState = "stalled"
)

const (
	DefaultCompany       = "General"
	DefaultPosition      = "Software Engineer"
	DefaultDifficulty    = "Intermediate"
	DefaultQuestionLimit = 5
)

// TranscriptEntry is one utterance in the interview
type TranscriptEntry struct {
	Speaker Speaker `json:"speaker"`
	Text    string  `json:"text"`
}

// InterviewContext is what the question generator knows about the interview
type InterviewContext struct {
	Company    string `json:"company"`
	Position   string `json:"position"`
	Difficulty string `json:"difficulty"`
}

func (c InterviewContext) String() string {
	return fmt.Sprintf("Company: %s, Position: %s, Difficulty: %s", c.Company, c.Position, c.Difficulty)
}

// Session is the durable state of one mock interview.
//
// QuestionsAnswered is incremented in the same write that appends the
// user's answer; the interview is complete once it reaches QuestionLimit.
// Revision is bumped by the store on every successful update.
type Session struct {
	ID                string            `json:"id"`
	Company           string            `json:"company"`
	Position          string            `json:"position"`
	Difficulty        string            `json:"difficulty"`
	QuestionLimit     int               `json:"question_limit"`
	QuestionsAnswered int               `json:"questions_answered"`
	Transcript        []TranscriptEntry `json:"transcript"`
	Revision          int64             `json:"revision"`
	CreatedAt         time.Time         `json:"created_at"`
	UpdatedAt         time.Time         `json:"updated_at"`
}

// NewSession creates a session with an empty transcript. Blank fields fall
// back to the defaults; a zero limit means DefaultQuestionLimit.
func NewSession(id, company, position, difficulty string, questionLimit int, now time.Time) *Session {
	return &Session{
		ID:            id,
		Company:       lo.Ternary(strings.TrimSpace(company) == "", DefaultCompany, strings.TrimSpace(company)),
		Position:      lo.Ternary(strings.TrimSpace(position) == "", DefaultPosition, strings.TrimSpace(position)),
		Difficulty:    lo.Ternary(strings.TrimSpace(difficulty) == "", DefaultDifficulty, strings.TrimSpace(difficulty)),
		QuestionLimit: lo.Ternary(questionLimit == 0, DefaultQuestionLimit, questionLimit),
		Transcript:    []TranscriptEntry{},
		Revision:      1,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// Context returns the interview context used for question generation
func (s *Session) Context() InterviewContext {
	return InterviewContext{
		Company:    s.Company,
		Position:   s.Position,
		Difficulty: s.Difficulty,
	}
}

// PendingQuestion returns the unanswered question, if the last transcript
// entry is an interviewer entry.
func (s *Session) PendingQuestion() (string, bool) {
	if len(s.Transcript) == 0 {
		return "", false
	}
	last := s.Transcript[len(s.Transcript)-1]
	if last.Speaker != SpeakerInterviewer {
		return "", false
	}
	return last.Text, true
}

// LastQuestion returns the most recent interviewer entry, answered or not
func (s *Session) LastQuestion() (string, bool) {
	entry, _, ok := lo.FindLastIndexOf(s.Transcript, func(e TranscriptEntry) bool {
		return e.Speaker == SpeakerInterviewer
	})
	return entry.Text, ok
}

// IsComplete reports whether the question limit has been reached
func (s *Session) IsComplete() bool {
	return s.QuestionsAnswered >= s.QuestionLimit
}

// State derives the lifecycle state
func (s *Session) State() SessionState {
	if _, ok := s.PendingQuestion(); ok {
		return StateAwaitingAnswer
	}
	if s.IsComplete() {
		return StateCompleted
	}
	if len(s.Transcript) == 0 {
		return StateCreated
	}
	return StateStalled
}

// AskQuestion appends an interviewer entry
func (s *Session) AskQuestion(question string) {
	s.Transcript = append(s.Transcript, TranscriptEntry{Speaker: SpeakerInterviewer, Text: question})
}

// RecordAnswer appends a user entry and counts the answered question
func (s *Session) RecordAnswer(answer string) {
	s.Transcript = append(s.Transcript, TranscriptEntry{Speaker: SpeakerUser, Text: answer})
	s.QuestionsAnswered++
}

// HistoryText renders the transcript the way it is shown to the language model
func (s *Session) HistoryText() string {
	return RenderTranscript(s.Transcript)
}

// RenderTranscript renders entries as "Speaker: text" lines
func RenderTranscript(entries []TranscriptEntry) string {
	var b strings.Builder
	for _, e := range entries {
		b.WriteString(string(e.Speaker))
		b.WriteString(": ")
		b.WriteString(e.Text)
		b.WriteString("\n")
	}
	return b.String()
}

// Clone returns a deep copy so a failed turn never leaks into the caller's value
func (s *Session) Clone() *Session {
	c := *s
	c.Transcript = append([]TranscriptEntry(nil), s.Transcript...)
	return &c
}
