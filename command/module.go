package command

import (
	"fmt"

	"github.com/amonks/tab/roster"
)

const (
	WordAddModule    = "addmod"
	WordEditModule   = "editmod"
	WordDeleteModule = "delmod"
)

const (
	addModuleUsage    = "addmod m/MODULE\nExample: addmod m/CS2103"
	editModuleUsage   = "editmod m/MODULE n/NEW_NAME\nExample: editmod m/CS2103 n/CS2103T"
	deleteModuleUsage = "delmod m/MODULE\nExample: delmod m/CS2103"
)

// AddModule adds an empty module.
type AddModule struct {
	Name roster.ModuleName
}

func parseAddModule(args string) (Command, error) {
	argMultimap, err := tokenizeRequired(args, addModuleUsage, []Prefix{PrefixModule})
	if err != nil {
		return nil, err
	}
	value, _ := argMultimap.Value(PrefixModule)
	name, err := parseModuleName(value)
	if err != nil {
		return nil, err
	}
	return AddModule{Name: name}, nil
}

func (c AddModule) Execute(m Model) (Result, error) {
	if err := m.Roster().AddModule(roster.NewModule(c.Name)); err != nil {
		return Result{}, err
	}
	showAll(m)
	return Result{Feedback: fmt.Sprintf("New module added: %s", c.Name)}, nil
}

// EditModule renames a module, keeping its students and tasks.
type EditModule struct {
	Name    roster.ModuleName
	NewName roster.ModuleName
}

func parseEditModule(args string) (Command, error) {
	argMultimap, err := tokenizeRequired(args, editModuleUsage, []Prefix{PrefixModule, PrefixName})
	if err != nil {
		return nil, err
	}
	value, _ := argMultimap.Value(PrefixModule)
	name, err := parseModuleName(value)
	if err != nil {
		return nil, err
	}
	newValue, _ := argMultimap.Value(PrefixName)
	newName, err := parseModuleName(newValue)
	if err != nil {
		return nil, err
	}
	return EditModule{Name: name, NewName: newName}, nil
}

func (c EditModule) Execute(m Model) (Result, error) {
	r := m.Roster()
	target, ok := r.Module(c.Name)
	if !ok {
		return Result{}, &roster.NotFoundError{Kind: roster.KindModule, Key: c.Name.String()}
	}
	if err := r.SetModule(target, target.Renamed(c.NewName)); err != nil {
		return Result{}, err
	}
	showAll(m)
	return Result{Feedback: fmt.Sprintf("Edited module: %s is now %s", c.Name, c.NewName)}, nil
}

// DeleteModule removes a module with all its students.
type DeleteModule struct {
	Name roster.ModuleName
}

func parseDeleteModule(args string) (Command, error) {
	argMultimap, err := tokenizeRequired(args, deleteModuleUsage, []Prefix{PrefixModule})
	if err != nil {
		return nil, err
	}
	value, _ := argMultimap.Value(PrefixModule)
	name, err := parseModuleName(value)
	if err != nil {
		return nil, err
	}
	return DeleteModule{Name: name}, nil
}

func (c DeleteModule) Execute(m Model) (Result, error) {
	r := m.Roster()
	target, ok := r.Module(c.Name)
	if !ok {
		return Result{}, &roster.NotFoundError{Kind: roster.KindModule, Key: c.Name.String()}
	}
	if err := r.RemoveModule(target); err != nil {
		return Result{}, err
	}
	showAll(m)
	return Result{Feedback: fmt.Sprintf("Deleted module: %s", c.Name)}, nil
}
