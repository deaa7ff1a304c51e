// Package command turns text input into typed commands and runs them
// against a roster model.
//
// Input is a command word followed by prefixed arguments:
//
//	done m/CS2103 s/A1234567A t/T1
//
// Parse validates the shape of the input and every identifier it carries.
// Execute reports domain failures such as a missing module as errors.
package command

import (
	"fmt"
	"strings"

	internalstrings "github.com/amonks/tab/internal/strings"
	"github.com/amonks/tab/roster"
)

// Model is what commands run against.
type Model interface {
	Roster() *roster.Roster
	FilteredModules() []*roster.Module
	UpdateFilteredModules(pred roster.ModulePredicate)
}

// Result is the outcome of a successful command.
type Result struct {
	Feedback string
	ShowHelp bool
	Exit     bool
}

// Command is a parsed, validated command ready to run.
type Command interface {
	Execute(m Model) (Result, error)
}

// Usage describes one command word for help output.
type Usage struct {
	Word    string
	Summary string
	Format  string
}

type entry struct {
	Usage
	parse func(args string) (Command, error)
}

var entries = []entry{
	{Usage{WordAddModule, "Add a module", addModuleUsage}, parseAddModule},
	{Usage{WordEditModule, "Rename a module", editModuleUsage}, parseEditModule},
	{Usage{WordDeleteModule, "Delete a module and its enrollments", deleteModuleUsage}, parseDeleteModule},
	{Usage{WordAddStudent, "Enroll a student in a module", addStudentUsage}, parseAddStudent},
	{Usage{WordEditStudent, "Edit a student's name or email", editStudentUsage}, parseEditStudent},
	{Usage{WordDeleteStudent, "Remove a student from a module", deleteStudentUsage}, parseDeleteStudent},
	{Usage{WordAddTask, "Assign a task to every student in a module", addTaskUsage}, parseAddTask},
	{Usage{WordDeleteTask, "Remove a task from every student in a module", deleteTaskUsage}, parseDeleteTask},
	{Usage{WordDone, "Mark a student's task done", doneUsage}, parseMarkDone},
	{Usage{WordUndone, "Mark a student's task not done", undoneUsage}, parseMarkUndone},
	{Usage{WordFind, "List modules matching any keyword", findUsage}, parseFind},
	{Usage{WordList, "List all modules", listUsage}, parseList},
	{Usage{WordClear, "Delete every module", clearUsage}, parseClear},
	{Usage{WordHelp, "Show the command reference", helpUsage}, parseHelp},
	{Usage{WordExit, "Leave the prompt", exitUsage}, parseExit},
}

// Usages lists every command in reference order.
func Usages() []Usage {
	out := make([]Usage, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Usage)
	}
	return out
}

// Parse parses one line of input.
func Parse(input string) (Command, error) {
	word, args := internalstrings.SplitCommandWord(input)
	if word == "" {
		return nil, &ParseError{Err: ErrInvalidCommandFormat, Usage: "Type help to list the commands."}
	}
	for _, e := range entries {
		if e.Word == word {
			return e.parse(args)
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownCommand, word)
}

// Run parses and executes one line of input.
func Run(m Model, input string) (Result, error) {
	cmd, err := Parse(input)
	if err != nil {
		return Result{}, err
	}
	return cmd.Execute(m)
}

// tokenizeRequired tokenizes args and checks that every required prefix is
// present and nothing precedes the first prefix.
func tokenizeRequired(args, usage string, required []Prefix, optional ...Prefix) (ArgumentMultimap, error) {
	argMultimap := Tokenize(args, append(append([]Prefix{}, required...), optional...)...)
	if argMultimap.Preamble() != "" {
		return argMultimap, invalidFormat(usage)
	}
	for _, prefix := range required {
		if !argMultimap.Has(prefix) {
			return argMultimap, invalidFormat(usage)
		}
	}
	return argMultimap, nil
}

// textValue returns the last value for a free-text prefix with runs of
// whitespace collapsed.
func textValue(argMultimap ArgumentMultimap, prefix Prefix) (string, bool) {
	value, ok := argMultimap.Value(prefix)
	return internalstrings.NormalizeWhitespace(value), ok
}

func parseModuleName(value string) (roster.ModuleName, error) {
	name, err := roster.NewModuleName(value)
	if err != nil {
		return roster.ModuleName{}, &ParseError{Err: err}
	}
	return name, nil
}

func parseStudentID(value string) (roster.StudentID, error) {
	id, err := roster.NewStudentID(strings.TrimSpace(value))
	if err != nil {
		return roster.StudentID{}, &ParseError{Err: err}
	}
	return id, nil
}

func parseTaskID(value string) (roster.TaskID, error) {
	id, err := roster.NewTaskID(strings.TrimSpace(value))
	if err != nil {
		return roster.TaskID{}, &ParseError{Err: err}
	}
	return id, nil
}

// parseTaskAddress reads the m/ s/ t/ triple shared by done and undone.
func parseTaskAddress(args, usage string) (taskAddress, error) {
	argMultimap, err := tokenizeRequired(args, usage, []Prefix{PrefixModule, PrefixStudent, PrefixTask})
	if err != nil {
		return taskAddress{}, err
	}

	moduleValue, _ := argMultimap.Value(PrefixModule)
	studentValue, _ := argMultimap.Value(PrefixStudent)
	taskValue, _ := argMultimap.Value(PrefixTask)

	moduleName, err := parseModuleName(moduleValue)
	if err != nil {
		return taskAddress{}, err
	}
	studentID, err := parseStudentID(studentValue)
	if err != nil {
		return taskAddress{}, err
	}
	taskID, err := parseTaskID(taskValue)
	if err != nil {
		return taskAddress{}, err
	}
	return taskAddress{Module: moduleName, Student: studentID, Task: taskID}, nil
}

type taskAddress struct {
	Module  roster.ModuleName
	Student roster.StudentID
	Task    roster.TaskID
}

func (a taskAddress) String() string {
	return fmt.Sprintf("%s %s %s", a.Module, a.Student, a.Task)
}

func showAll(m Model) {
	m.UpdateFilteredModules(roster.AllModules)
}
