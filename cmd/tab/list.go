package main

import (
	"github.com/amonks/tab/internal/storage"
	"github.com/amonks/tab/internal/ui"
	"github.com/amonks/tab/roster"
	"github.com/spf13/cobra"
)

var listJSON bool

var listCmd = &cobra.Command{
	Use:   "list [KEYWORDS...]",
	Short: "List modules, students, and tasks",
	Long: `List modules with their students and tasks. With keywords, only modules
whose name matches one of them are listed.`,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output as JSON")
}

func runList(cmd *cobra.Command, args []string) error {
	s, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	r, err := s.store.Load(cmd.Context())
	if err != nil {
		return err
	}

	var pred roster.ModulePredicate = roster.AllModules
	if len(args) > 0 {
		pred = roster.ModuleNameContainsKeywords(args)
	}
	modules := r.FilterModules(pred)

	if listJSON {
		records := storage.Records(moduleSnapshot(modules))
		return encodeJSON(cmd.OutOrStdout(), records)
	}
	s.logger.Print(ui.FormatModules(modules, s.logger.Color()))
	return nil
}

// moduleSnapshot exposes a filtered module list as a roster.Snapshot.
type moduleSnapshot []*roster.Module

func (m moduleSnapshot) Modules() []*roster.Module { return m }

func (m moduleSnapshot) Students() []*roster.Student {
	var students []*roster.Student
	for _, module := range m {
		students = append(students, module.Students()...)
	}
	return students
}
