package export

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/tealeg/xlsx"

	"interview-coach/internal/app/model"
)

// SessionReport is one session together with its answered turns
type SessionReport struct {
	Session model.Session
	Turns   []model.Turn
}

// Source is the read side of the session store
type Source interface {
	ListSessions(ctx context.Context, limit int) ([]model.Session, error)
	ListTurns(ctx context.Context, sessionID string) ([]model.Turn, error)
}

// Collect loads up to limit of the newest sessions with their turns
func Collect(ctx context.Context, source Source, limit int) ([]SessionReport, error) {
	sessions, err := source.ListSessions(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}

	reports := make([]SessionReport, 0, len(sessions))
	for _, s := range sessions {
		turns, err := source.ListTurns(ctx, s.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to list turns for %s: %w", s.ID, err)
		}
		reports = append(reports, SessionReport{Session: s, Turns: turns})
	}
	return reports, nil
}

var summaryHeader = []string{
	"Session ID", "Company", "Position", "Difficulty",
	"Questions Answered", "Question Limit", "State", "Average Score", "Created At",
}

var turnHeader = []string{
	"Session ID", "Turn", "Question", "Answer",
	"Technical", "Clarity", "Structure", "Confidence", "Professionalism", "Average",
	"Strengths", "Weaknesses", "Improvement Plan", "Coach Feedback", "Created At",
}

// Build lays the reports out as a workbook with a Sessions sheet and a Turns sheet
func Build(reports []SessionReport) (*xlsx.File, error) {
	file := xlsx.NewFile()

	sessions, err := file.AddSheet("Sessions")
	if err != nil {
		return nil, fmt.Errorf("failed to add sessions sheet: %w", err)
	}
	turns, err := file.AddSheet("Turns")
	if err != nil {
		return nil, fmt.Errorf("failed to add turns sheet: %w", err)
	}

	addStrings(sessions.AddRow(), summaryHeader...)
	addStrings(turns.AddRow(), turnHeader...)

	for _, r := range reports {
		s := r.Session
		row := sessions.AddRow()
		addStrings(row, s.ID, s.Company, s.Position, s.Difficulty)
		row.AddCell().SetInt(s.QuestionsAnswered)
		row.AddCell().SetInt(s.QuestionLimit)
		row.AddCell().Value = string(s.State())
		row.AddCell().Value = fmt.Sprintf("%.1f", averageScore(r.Turns))
		row.AddCell().Value = s.CreatedAt.Format(time.RFC3339)

		for i, t := range r.Turns {
			row := turns.AddRow()
			row.AddCell().Value = s.ID
			row.AddCell().SetInt(i + 1)
			addStrings(row, t.Question, t.Answer)
			row.AddCell().SetInt(t.Scores.Technical)
			row.AddCell().SetInt(t.Scores.Clarity)
			row.AddCell().SetInt(t.Scores.Structure)
			row.AddCell().SetInt(t.Scores.Confidence)
			row.AddCell().SetInt(t.Scores.Professionalism)
			row.AddCell().Value = fmt.Sprintf("%.1f", t.Scores.Average())
			addStrings(row, t.Strengths, t.Weaknesses, t.ImprovementPlan, t.CoachFeedback)
			row.AddCell().Value = t.CreatedAt.Format(time.RFC3339)
		}
	}

	return file, nil
}

// ToExcel writes the workbook to outputFilePath
func ToExcel(reports []SessionReport, outputFilePath string) error {
	file, err := Build(reports)
	if err != nil {
		return err
	}
	if err := file.Save(outputFilePath); err != nil {
		return fmt.Errorf("failed to save %s: %w", outputFilePath, err)
	}
	return nil
}

// Write streams the workbook to w
func Write(reports []SessionReport, w io.Writer) error {
	file, err := Build(reports)
	if err != nil {
		return err
	}
	return file.Write(w)
}

func addStrings(row *xlsx.Row, values ...string) {
	for _, v := range values {
		row.AddCell().Value = v
	}
}

func averageScore(turns []model.Turn) float64 {
	if len(turns) == 0 {
		return 0
	}
	var sum float64
	for _, t := range turns {
		sum += t.Scores.Average()
	}
	return sum / float64(len(turns))
}
