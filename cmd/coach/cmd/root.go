package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"interview-coach/cmd/coach/cmd/export"
	"interview-coach/cmd/coach/cmd/interview"
	"interview-coach/cmd/coach/cmd/serve"
	"interview-coach/cmd/coach/cmd/session"
	"interview-coach/cmd/coach/cmd/shared"
	"interview-coach/cmd/coach/cmd/version"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "coach",
	Short: "Practice job interviews with a language model interviewer",
	Long: `Practice job interviews with a language model interviewer.
- Serve the HTTP API and browser frontend routes with "coach serve"
- Run a session in the terminal with "coach interview"
- Every answer is scored and coached, and the results are saved to the database.`,
	TraverseChildren: true,
	SilenceUsage:     true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serve.Cmd)
	rootCmd.AddCommand(interview.Cmd)
	rootCmd.AddCommand(session.Cmd)
	rootCmd.AddCommand(export.Cmd)
	rootCmd.AddCommand(version.Cmd)

	rootCmd.PersistentFlags().BoolVarP(&shared.Verbose, "verbose", "V", false, "verbose output")
	rootCmd.PersistentFlags().StringVarP(&shared.ConfigPath, "config", "c", "", "config file (default $COACH_CONFIG)")
}
