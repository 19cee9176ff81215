package session

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"interview-coach/cmd/coach/cmd/shared"
	"interview-coach/internal/app/model"
)

var limit int

func init() {
	listCmd.Flags().IntVarP(&limit, "limit", "n", 20, "maximum number of sessions")

	Cmd.AddCommand(listCmd)
	Cmd.AddCommand(showCmd)
}

// Cmd represents the session command
var Cmd = &cobra.Command{
	Use:   "session",
	Short: "Inspect stored interview sessions",
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the most recent sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		core, cleanup, err := shared.Core(cmd.Context())
		if err != nil {
			return err
		}
		defer cleanup()

		sessions, err := core.Orchestrator.ListSessions(cmd.Context(), limit)
		if err != nil {
			return err
		}
		if len(sessions) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "no sessions")
			return nil
		}
		return writeSessions(cmd.OutOrStdout(), sessions)
	},
}

var showCmd = &cobra.Command{
	Use:   "show <session-id>",
	Short: "Print a session transcript with the score of every answer",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		core, cleanup, err := shared.Core(cmd.Context())
		if err != nil {
			return err
		}
		defer cleanup()

		detail, err := core.Orchestrator.GetSession(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		writeDetail(cmd.OutOrStdout(), detail.Session, detail.Turns)
		return nil
	},
}

func writeSessions(out io.Writer, sessions []*model.Session) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCOMPANY\tPOSITION\tDIFFICULTY\tPROGRESS\tSTATE\tCREATED")
	for _, s := range sessions {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d/%d\t%s\t%s\n",
			s.ID, s.Company, s.Position, s.Difficulty,
			s.QuestionsAnswered, s.QuestionLimit, s.State(),
			s.CreatedAt.Local().Format(time.DateTime),
		)
	}
	return w.Flush()
}

func writeDetail(out io.Writer, s *model.Session, turns []model.Turn) {
	fmt.Fprintf(out, "Session %s\n%s\nProgress: %d/%d (%s)\n\n",
		s.ID, s.Context(), s.QuestionsAnswered, s.QuestionLimit, s.State())

	for i, t := range turns {
		fmt.Fprintf(out, "Q%d: %s\n", i+1, t.Question)
		fmt.Fprintf(out, "A:  %s\n", t.Answer)
		fmt.Fprintf(out, "    technical %d, clarity %d, structure %d, confidence %d, professionalism %d (avg %.1f)\n",
			t.Scores.Technical, t.Scores.Clarity, t.Scores.Structure, t.Scores.Confidence, t.Scores.Professionalism,
			t.Scores.Average())
		if t.CoachFeedback != "" {
			fmt.Fprintf(out, "    coach: %s\n", t.CoachFeedback)
		}
		fmt.Fprintln(out)
	}

	if q, ok := s.PendingQuestion(); ok {
		fmt.Fprintf(out, "Waiting for an answer to: %s\n", q)
	}
}
