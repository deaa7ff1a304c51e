package command

import (
	"fmt"

	"github.com/amonks/tab/roster"
)

const (
	WordAddTask    = "addtask"
	WordDeleteTask = "deltask"
	WordDone       = "done"
	WordUndone     = "undone"
)

const (
	addTaskUsage    = "addtask m/MODULE t/TASK_ID [d/DESCRIPTION]\nExample: addtask m/CS2103 t/T1 d/Tutorial 1"
	deleteTaskUsage = "deltask m/MODULE t/TASK_ID\nExample: deltask m/CS2103 t/T1"
	doneUsage       = "done m/MODULE s/STUDENT_ID t/TASK_ID\nExample: done m/CS2103 s/A1234567A t/T1"
	undoneUsage     = "undone m/MODULE s/STUDENT_ID t/TASK_ID\nExample: undone m/CS2103 s/A1234567A t/T1"
)

// AddTask assigns a new task to every student of a module.
type AddTask struct {
	Module      roster.ModuleName
	Task        roster.TaskID
	Description string
}

func parseAddTask(args string) (Command, error) {
	argMultimap, err := tokenizeRequired(args, addTaskUsage,
		[]Prefix{PrefixModule, PrefixTask}, PrefixDescription)
	if err != nil {
		return nil, err
	}
	moduleValue, _ := argMultimap.Value(PrefixModule)
	moduleName, err := parseModuleName(moduleValue)
	if err != nil {
		return nil, err
	}
	taskValue, _ := argMultimap.Value(PrefixTask)
	taskID, err := parseTaskID(taskValue)
	if err != nil {
		return nil, err
	}
	description, _ := textValue(argMultimap, PrefixDescription)
	return AddTask{Module: moduleName, Task: taskID, Description: description}, nil
}

func (c AddTask) Execute(m Model) (Result, error) {
	if err := m.Roster().AddTask(c.Module, roster.NewTask(c.Task, c.Description)); err != nil {
		return Result{}, err
	}
	showAll(m)
	return Result{Feedback: fmt.Sprintf("New task added to %s: %s", c.Module, c.Task)}, nil
}

// DeleteTask removes a task from every student of a module.
type DeleteTask struct {
	Module roster.ModuleName
	Task   roster.TaskID
}

func parseDeleteTask(args string) (Command, error) {
	argMultimap, err := tokenizeRequired(args, deleteTaskUsage, []Prefix{PrefixModule, PrefixTask})
	if err != nil {
		return nil, err
	}
	moduleValue, _ := argMultimap.Value(PrefixModule)
	moduleName, err := parseModuleName(moduleValue)
	if err != nil {
		return nil, err
	}
	taskValue, _ := argMultimap.Value(PrefixTask)
	taskID, err := parseTaskID(taskValue)
	if err != nil {
		return nil, err
	}
	return DeleteTask{Module: moduleName, Task: taskID}, nil
}

func (c DeleteTask) Execute(m Model) (Result, error) {
	if err := m.Roster().RemoveTask(c.Module, c.Task); err != nil {
		return Result{}, err
	}
	showAll(m)
	return Result{Feedback: fmt.Sprintf("Deleted task from %s: %s", c.Module, c.Task)}, nil
}

// MarkTaskDone marks one student's copy of a task done.
type MarkTaskDone struct {
	taskAddress
}

// NewMarkTaskDone returns the command for the addressed task.
func NewMarkTaskDone(module roster.ModuleName, student roster.StudentID, task roster.TaskID) MarkTaskDone {
	return MarkTaskDone{taskAddress{Module: module, Student: student, Task: task}}
}

func parseMarkDone(args string) (Command, error) {
	address, err := parseTaskAddress(args, doneUsage)
	if err != nil {
		return nil, err
	}
	return MarkTaskDone{address}, nil
}

func (c MarkTaskDone) Execute(m Model) (Result, error) {
	if err := m.Roster().SetTaskDone(c.Module, c.Student, c.Task); err != nil {
		return Result{}, err
	}
	showAll(m)
	return Result{Feedback: fmt.Sprintf("Task marked done: %s", c.taskAddress)}, nil
}

// MarkTaskUndone marks one student's copy of a task not done.
type MarkTaskUndone struct {
	taskAddress
}

// NewMarkTaskUndone returns the command for the addressed task.
func NewMarkTaskUndone(module roster.ModuleName, student roster.StudentID, task roster.TaskID) MarkTaskUndone {
	return MarkTaskUndone{taskAddress{Module: module, Student: student, Task: task}}
}

func parseMarkUndone(args string) (Command, error) {
	address, err := parseTaskAddress(args, undoneUsage)
	if err != nil {
		return nil, err
	}
	return MarkTaskUndone{address}, nil
}

func (c MarkTaskUndone) Execute(m Model) (Result, error) {
	if err := m.Roster().SetTaskUndone(c.Module, c.Student, c.Task); err != nil {
		return Result{}, err
	}
	showAll(m)
	return Result{Feedback: fmt.Sprintf("Task marked not done: %s", c.taskAddress)}, nil
}
