package ui

import (
	"fmt"
	"strings"

	"github.com/amonks/tab/roster"
	"github.com/charmbracelet/lipgloss"
)

var (
	doneStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	pendingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	moduleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("33"))
)

var rosterHeaders = []string{"MODULE", "STUDENT", "NAME", "EMAIL", "DONE", "TASKS"}

// FormatModules renders one row per enrolled student, and one row for each
// module without students.
func FormatModules(modules []*roster.Module, color bool) string {
	if len(modules) == 0 {
		return "No modules.\n"
	}

	builder := NewTableBuilder(rosterHeaders, len(modules))
	for _, m := range modules {
		name := m.Name().String()
		if color {
			name = moduleStyle.Render(name)
		}

		students := m.Students()
		if len(students) == 0 {
			builder.AddRow(name, "-", "-", "-", "-", "-")
			continue
		}
		for _, s := range students {
			tasks := s.Tasks()
			builder.AddRow(
				name,
				s.ID().String(),
				orDash(s.Name()),
				orDash(s.Email()),
				fmt.Sprintf("%d/%d", s.CompletedCount(), len(tasks)),
				formatTasks(tasks, color),
			)
		}
	}
	return builder.String()
}

func formatTasks(tasks []*roster.Task, color bool) string {
	if len(tasks) == 0 {
		return "-"
	}
	parts := make([]string, 0, len(tasks))
	for _, task := range tasks {
		marker, style := "[ ]", pendingStyle
		if task.IsComplete() {
			marker, style = "[x]", doneStyle
		}
		if color {
			marker = style.Render(marker)
		}
		parts = append(parts, marker+task.ID().String())
	}
	return strings.Join(parts, " ")
}

func orDash(value string) string {
	if strings.TrimSpace(value) == "" {
		return "-"
	}
	return value
}
