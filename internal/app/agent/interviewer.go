package agent

import (
	"context"
	"fmt"
	"strings"

	"interview-coach/internal/app/api"
	apperrors "interview-coach/internal/app/errors"
	"interview-coach/internal/app/model"
)

// Interviewer generates the next question from the interview so far
type Interviewer struct {
	completer api.Completer
}

func NewInterviewer(completer api.Completer) *Interviewer {
	return &Interviewer{completer: completer}
}

// NextQuestion asks the model for the next question. An empty transcript
// yields the opening question.
func (i *Interviewer) NextQuestion(ctx context.Context, ic model.InterviewContext, transcript []model.TranscriptEntry) (string, error) {
	prompt := fmt.Sprintf("Context: %s\n\nInterview History:\n%s\n\nProvide the next interview question.",
		ic.String(), model.RenderTranscript(transcript))

	question, err := i.completer.Complete(ctx, interviewerPrompt, prompt)
	if err != nil {
		return "", providerError(apperrors.ErrQuestionUnavailable, err)
	}
	question = strings.TrimSpace(question)
	if question == "" {
		return "", apperrors.WithCause(apperrors.ErrQuestionUnavailable, apperrors.New("empty question"))
	}
	return question, nil
}
