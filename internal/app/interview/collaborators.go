package interview

import (
	"context"
	"time"

	"interview-coach/internal/app/model"
)

// QuestionGenerator produces the next interview question
type QuestionGenerator interface {
	NextQuestion(ctx context.Context, ic model.InterviewContext, transcript []model.TranscriptEntry) (string, error)
}

// AnswerEvaluator scores one answer
type AnswerEvaluator interface {
	Evaluate(ctx context.Context, question, answer string) (model.ScoreReport, error)
}

// FeedbackCoach turns a score report into advice
type FeedbackCoach interface {
	Feedback(ctx context.Context, report model.ScoreReport) (string, error)
}

// Metrics receives turn lifecycle events. *metrics.Recorder satisfies it.
type Metrics interface {
	SessionStarted()
	TurnCompleted(final bool)
	Failed(operation, kind string)
	Degraded(step string)
	ObserveProvider(step string, started time.Time, err error)
}

type noopMetrics struct{}

func (noopMetrics) SessionStarted()                          {}
func (noopMetrics) TurnCompleted(bool)                       {}
func (noopMetrics) Failed(string, string)                    {}
func (noopMetrics) Degraded(string)                          {}
func (noopMetrics) ObserveProvider(string, time.Time, error) {}
