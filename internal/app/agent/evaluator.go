package agent

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"interview-coach/internal/app/api"
	apperrors "interview-coach/internal/app/errors"
	"interview-coach/internal/app/model"
)

// evaluation is the wire shape the model is asked to produce
type evaluation struct {
	TechnicalScore       int    `json:"technical_score"`
	ClarityScore         int    `json:"clarity_score"`
	StructureScore       int    `json:"structure_score"`
	ConfidenceScore      int    `json:"confidence_score"`
	ProfessionalismScore int    `json:"professionalism_score"`
	Strengths            string `json:"strengths"`
	Weaknesses           string `json:"weaknesses"`
	ImprovementPlan      string `json:"improvement_plan"`
}

func (e evaluation) report() model.ScoreReport {
	r := model.ScoreReport{
		Scores: model.Scores{
			Technical:       e.TechnicalScore,
			Clarity:         e.ClarityScore,
			Structure:       e.StructureScore,
			Confidence:      e.ConfidenceScore,
			Professionalism: e.ProfessionalismScore,
		},
		Strengths:       e.Strengths,
		Weaknesses:      e.Weaknesses,
		ImprovementPlan: e.ImprovementPlan,
	}
	r.Clamp()
	return r
}

// Evaluator scores one answer
type Evaluator struct {
	completer api.Completer
	logger    *zap.Logger
}

func NewEvaluator(completer api.Completer, logger *zap.Logger) *Evaluator {
	return &Evaluator{completer: completer, logger: logger}
}

// Evaluate scores answer against question. Scores outside [0,100] are clamped.
func (e *Evaluator) Evaluate(ctx context.Context, question, answer string) (model.ScoreReport, error) {
	prompt := fmt.Sprintf("Question: %s\nUser Answer: %s\n\nPlease evaluate this response.", question, answer)

	var out evaluation
	res := e.completer.CompleteStructured(ctx, evaluatorPrompt, prompt, "evaluation", &out)
	switch res.Outcome {
	case api.OutcomeStructured:
	case api.OutcomeFallback:
		e.logger.Warn("structured evaluation failed, used JSON fallback", zap.Error(res.StructuredErr))
	default:
		return model.ScoreReport{}, providerError(apperrors.ErrEvaluationUnavailable, res.Err)
	}
	return out.report(), nil
}
