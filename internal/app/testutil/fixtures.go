package testutil

import "interview-coach/internal/app/model"

// SampleReport is a plausible evaluation of a decent answer
func SampleReport() model.ScoreReport {
	return model.ScoreReport{
		Scores: model.Scores{
			Technical:       72,
			Clarity:         80,
			Structure:       65,
			Confidence:      70,
			Professionalism: 90,
		},
		Strengths:       "Concrete example with measurable impact",
		Weaknesses:      "Skipped the trade-offs that were considered",
		ImprovementPlan: "Use the STAR structure and name one alternative you rejected",
	}
}

// SampleEvaluationJSON is SampleReport as the evaluator model returns it
const SampleEvaluationJSON = `{
  "technical_score": 72,
  "clarity_score": 80,
  "structure_score": 65,
  "confidence_score": 70,
  "professionalism_score": 90,
  "strengths": "Concrete example with measurable impact",
  "weaknesses": "Skipped the trade-offs that were considered",
  "improvement_plan": "Use the STAR structure and name one alternative you rejected"
}`
