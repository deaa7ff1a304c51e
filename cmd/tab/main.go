// Package main implements the tab CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		var exitErr interface{ ExitCode() int }
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.ExitCode())
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tab",
	Short: "Teaching assistant buddy - track modules, students, and tasks",
	Long: `tab keeps a record of the modules you teach, the students enrolled in each,
and the tasks every student has completed.

Run without arguments to type commands at a prompt, or use "tab run" for a
single command. Type "help" at the prompt for the command reference.`,
	Args:          cobra.NoArgs,
	RunE:          runRepl,
	SilenceErrors: true,
}

var (
	dataFlag    string
	backendFlag string
	verboseFlag bool
)

var globalFlagAliases = map[string]string{
	"file":    "data",
	"storage": "backend",
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&dataFlag, "data", "", "Roster data file (default ~/.local/share/tab/roster.<ext>)")
	flags.StringVar(&backendFlag, "backend", "", "Storage backend: json or sqlite")
	flags.BoolVarP(&verboseFlag, "verbose", "v", false, "Print debug output")
	rootCmd.SetGlobalNormalizationFunc(aliasNormalizer(globalFlagAliases))
}
