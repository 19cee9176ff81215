package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"interview-coach/internal/app/api"
	apperrors "interview-coach/internal/app/errors"
	"interview-coach/internal/app/model"
)

// Coach turns an evaluation into a short spoken-style tip
type Coach struct {
	completer api.Completer
}

func NewCoach(completer api.Completer) *Coach {
	return &Coach{completer: completer}
}

// Feedback returns coaching text for the evaluation
func (c *Coach) Feedback(ctx context.Context, report model.ScoreReport) (string, error) {
	summary, err := json.Marshal(report)
	if err != nil {
		return "", apperrors.WithCause(apperrors.ErrCoachingFailed, err)
	}
	prompt := fmt.Sprintf("Evaluator Feedback: %s\n\nProvide a brief coaching tip for the user.", summary)

	text, err := c.completer.Complete(ctx, coachPrompt, prompt)
	if err != nil {
		return "", apperrors.WithCause(apperrors.ErrCoachingFailed, err)
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return "", apperrors.WithCause(apperrors.ErrCoachingFailed, apperrors.New("empty feedback"))
	}
	return text, nil
}
