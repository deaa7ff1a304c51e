package command

import (
	"fmt"
	"strings"

	"github.com/amonks/tab/roster"
)

const (
	WordFind  = "find"
	WordList  = "list"
	WordClear = "clear"
	WordHelp  = "help"
	WordExit  = "exit"
)

const (
	findUsage  = "find KEYWORD [MORE_KEYWORDS]...\nExample: find cs2103 cs2101"
	listUsage  = "list"
	clearUsage = "clear"
	helpUsage  = "help"
	exitUsage  = "exit"
)

// Find narrows the module view to names matching any keyword.
type Find struct {
	Keywords []string
}

func parseFind(args string) (Command, error) {
	keywords := strings.Fields(args)
	if len(keywords) == 0 {
		return nil, invalidFormat(findUsage)
	}
	return Find{Keywords: keywords}, nil
}

func (c Find) Execute(m Model) (Result, error) {
	m.UpdateFilteredModules(roster.ModuleNameContainsKeywords(c.Keywords))
	count := len(m.FilteredModules())
	noun := "modules"
	if count == 1 {
		noun = "module"
	}
	return Result{Feedback: fmt.Sprintf("%d %s listed", count, noun)}, nil
}

// List resets the module view to every module.
type List struct{}

func parseList(string) (Command, error) { return List{}, nil }

func (List) Execute(m Model) (Result, error) {
	showAll(m)
	return Result{Feedback: "Listed all modules"}, nil
}

// Clear deletes every module.
type Clear struct{}

func parseClear(string) (Command, error) { return Clear{}, nil }

func (Clear) Execute(m Model) (Result, error) {
	if err := m.Roster().ResetData(roster.New()); err != nil {
		return Result{}, err
	}
	showAll(m)
	return Result{Feedback: "Roster has been cleared"}, nil
}

// Help asks the caller to show the command reference.
type Help struct{}

func parseHelp(string) (Command, error) { return Help{}, nil }

func (Help) Execute(Model) (Result, error) {
	return Result{Feedback: "Showing help", ShowHelp: true}, nil
}

// Exit asks the caller to stop reading input.
type Exit struct{}

func parseExit(string) (Command, error) { return Exit{}, nil }

func (Exit) Execute(Model) (Result, error) {
	return Result{Feedback: "Exiting", Exit: true}, nil
}
