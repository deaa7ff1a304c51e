package main

import (
	"strings"

	"github.com/amonks/tab/internal/console"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run COMMAND [ARGS...]",
	Short: "Run one command and exit",
	Example: `  tab run addmod m/CS2103
  tab run addstu m/CS2103 s/A1234567A n/Alice Tan
  tab run done m/CS2103 s/A1234567A t/T1`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
	// Command arguments such as n/ or e/ values may start with a dash.
	runCmd.Flags().SetInterspersed(false)
}

func runRun(cmd *cobra.Command, args []string) error {
	s, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	if _, err := s.runOnce(cmd.Context(), strings.Join(args, " ")); err != nil {
		s.logger.Error(err)
		return &console.ExitError{Code: 1, Err: err}
	}
	return nil
}
