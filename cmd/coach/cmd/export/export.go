package export

import (
	"fmt"

	"github.com/spf13/cobra"

	"interview-coach/cmd/coach/cmd/shared"
	"interview-coach/internal/app/export"
)

var (
	outputFilePath string
	limit          int
)

func init() {
	Cmd.Flags().StringVarP(&outputFilePath, "outputFilePath", "o", "", "set outputFilePath")
	Cmd.Flags().IntVarP(&limit, "limit", "n", 100, "export at most this many recent sessions")

	Cmd.MarkFlagRequired("outputFilePath")
}

// Cmd represents the export command
var Cmd = &cobra.Command{
	Use:   "export",
	Short: "Export sessions and their scored turns to excel",
	Long: `Export sessions and their scored turns to excel

- The Sessions sheet has one row per session with its average score
- The Turns sheet has one row per answered question`,
	RunE: func(cmd *cobra.Command, args []string) error {
		core, cleanup, err := shared.Core(cmd.Context())
		if err != nil {
			return err
		}
		defer cleanup()

		reports, err := export.Collect(cmd.Context(), core.Store, limit)
		if err != nil {
			return err
		}
		if err := export.ToExcel(reports, outputFilePath); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "export finished, %d sessions written to %v\n", len(reports), outputFilePath)
		return nil
	},
}
