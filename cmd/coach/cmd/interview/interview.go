package interview

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"interview-coach/cmd/coach/cmd/shared"
	apperrors "interview-coach/internal/app/errors"
	coach "interview-coach/internal/app/interview"
)

var (
	company       string
	position      string
	difficulty    string
	questionLimit int
)

func init() {
	Cmd.Flags().StringVar(&company, "company", "", "company you are interviewing with")
	Cmd.Flags().StringVar(&position, "position", "", "role you are interviewing for")
	Cmd.Flags().StringVarP(&difficulty, "difficulty", "d", "", "Beginner, Intermediate or Advanced")
	Cmd.Flags().IntVarP(&questionLimit, "questions", "q", 0, "number of questions (default from config)")
}

// Cmd represents the interview command
var Cmd = &cobra.Command{
	Use:   "interview",
	Short: "Run a mock interview in the terminal",
	Long: `Run a mock interview in the terminal.

- Type each answer and finish it with an empty line
- Every answer is scored and coached before the next question is asked`,
	RunE: func(cmd *cobra.Command, args []string) error {
		core, cleanup, err := shared.Core(cmd.Context())
		if err != nil {
			return err
		}
		defer cleanup()

		return Run(cmd.Context(), core.Orchestrator, cmd.InOrStdin(), cmd.OutOrStdout(), coach.StartRequest{
			Company:       company,
			Position:      position,
			Difficulty:    difficulty,
			QuestionLimit: questionLimit,
		})
	},
}

// Driver is the part of the orchestrator a terminal session needs
type Driver interface {
	StartSession(ctx context.Context, req coach.StartRequest) (*coach.StartResult, error)
	SubmitAnswer(ctx context.Context, sessionID string, answer coach.Answer) (*coach.TurnResult, error)
}

// Run asks questions on out and reads answers from in until the interview
// completes or in is exhausted. Transient provider failures let the user
// retry the same answer.
func Run(ctx context.Context, d Driver, in io.Reader, out io.Writer, req coach.StartRequest) error {
	started, err := d.StartSession(ctx, req)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Session %s, %d questions\n\n", started.SessionID, started.QuestionLimit)

	scanner := bufio.NewScanner(in)
	question := started.Question
	for number := 1; ; {
		fmt.Fprintf(out, "Q%d: %s\n> ", number, question)

		answer, ok := readAnswer(scanner)
		if !ok {
			fmt.Fprintf(out, "\nStopped. Resume later with session %s.\n", started.SessionID)
			return scanner.Err()
		}
		if answer == "" {
			continue
		}

		result, err := d.SubmitAnswer(ctx, started.SessionID, coach.Answer{Text: answer})
		if err != nil {
			if retryable(err) {
				fmt.Fprintf(out, "%v. Try again.\n\n", err)
				continue
			}
			return err
		}

		printTurn(out, result)
		if result.Completed {
			fmt.Fprintln(out, "Interview complete.")
			return nil
		}
		question = result.NextQuestion
		number++
	}
}

// readAnswer collects lines up to the first empty line
func readAnswer(scanner *bufio.Scanner) (string, bool) {
	var lines []string
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			if len(lines) == 0 {
				continue
			}
			return strings.Join(lines, " "), true
		}
		lines = append(lines, line)
	}
	if len(lines) > 0 {
		return strings.Join(lines, " "), true
	}
	return "", false
}

func retryable(err error) bool {
	return apperrors.Retryable(err) || apperrors.IsKind(err, apperrors.KindProviderUnavailable)
}

func printTurn(out io.Writer, r *coach.TurnResult) {
	s := r.Evaluation.Scores
	fmt.Fprintf(out, "\nScores: technical %d, clarity %d, structure %d, confidence %d, professionalism %d (avg %.1f)\n",
		s.Technical, s.Clarity, s.Structure, s.Confidence, s.Professionalism, s.Average())
	if r.Evaluation.Strengths != "" {
		fmt.Fprintf(out, "Strengths: %s\n", r.Evaluation.Strengths)
	}
	if r.Evaluation.Weaknesses != "" {
		fmt.Fprintf(out, "Weaknesses: %s\n", r.Evaluation.Weaknesses)
	}
	if r.Evaluation.ImprovementPlan != "" {
		fmt.Fprintf(out, "Plan: %s\n", r.Evaluation.ImprovementPlan)
	}
	fmt.Fprintf(out, "Coach: %s\n", r.CoachFeedback)
	fmt.Fprintf(out, "Progress: %d/%d\n\n", r.QuestionsAnswered, r.QuestionLimit)
}
