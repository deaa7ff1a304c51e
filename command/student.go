package command

import (
	"fmt"
	"strings"

	"github.com/amonks/tab/roster"
)

const (
	WordAddStudent    = "addstu"
	WordEditStudent   = "editstu"
	WordDeleteStudent = "delstu"
)

const (
	addStudentUsage    = "addstu m/MODULE s/STUDENT_ID [n/NAME] [e/EMAIL]\nExample: addstu m/CS2103 s/A1234567A n/Alice Tan e/alice@example.com"
	editStudentUsage   = "editstu m/MODULE s/STUDENT_ID [n/NAME] [e/EMAIL]\nExample: editstu m/CS2103 s/A1234567A e/alice@u.example.com"
	deleteStudentUsage = "delstu m/MODULE s/STUDENT_ID\nExample: delstu m/CS2103 s/A1234567A"
)

// AddStudent enrolls a student in a module. The student starts with an
// incomplete copy of every task already assigned in the module.
type AddStudent struct {
	Module  roster.ModuleName
	Student roster.StudentID
	Name    string
	Email   string
}

func parseAddStudent(args string) (Command, error) {
	argMultimap, err := tokenizeRequired(args, addStudentUsage,
		[]Prefix{PrefixModule, PrefixStudent}, PrefixName, PrefixEmail)
	if err != nil {
		return nil, err
	}
	moduleValue, _ := argMultimap.Value(PrefixModule)
	moduleName, err := parseModuleName(moduleValue)
	if err != nil {
		return nil, err
	}
	studentValue, _ := argMultimap.Value(PrefixStudent)
	studentID, err := parseStudentID(studentValue)
	if err != nil {
		return nil, err
	}
	name, _ := textValue(argMultimap, PrefixName)
	email, _ := argMultimap.Value(PrefixEmail)
	return AddStudent{Module: moduleName, Student: studentID, Name: name, Email: email}, nil
}

func (c AddStudent) Execute(m Model) (Result, error) {
	r := m.Roster()
	module, ok := r.Module(c.Module)
	if !ok {
		return Result{}, &roster.NotFoundError{Kind: roster.KindModule, Key: c.Module.String()}
	}

	taskIDs := module.TaskIDs()
	tasks := make([]*roster.Task, 0, len(taskIDs))
	for _, taskID := range taskIDs {
		tasks = append(tasks, roster.NewTask(taskID, taskDescription(module, taskID)))
	}
	student, err := roster.NewStudent(c.Student, c.Name, c.Email).WithTasks(tasks)
	if err != nil {
		return Result{}, err
	}

	if err := r.AddStudent(c.Module, student); err != nil {
		return Result{}, err
	}
	showAll(m)
	return Result{Feedback: fmt.Sprintf("New student added to %s: %s", c.Module, describeStudent(student))}, nil
}

// EditStudent changes a student's profile fields. Nil fields are kept.
type EditStudent struct {
	Module  roster.ModuleName
	Student roster.StudentID
	Name    *string
	Email   *string
}

func parseEditStudent(args string) (Command, error) {
	argMultimap, err := tokenizeRequired(args, editStudentUsage,
		[]Prefix{PrefixModule, PrefixStudent}, PrefixName, PrefixEmail)
	if err != nil {
		return nil, err
	}
	moduleValue, _ := argMultimap.Value(PrefixModule)
	moduleName, err := parseModuleName(moduleValue)
	if err != nil {
		return nil, err
	}
	studentValue, _ := argMultimap.Value(PrefixStudent)
	studentID, err := parseStudentID(studentValue)
	if err != nil {
		return nil, err
	}

	c := EditStudent{Module: moduleName, Student: studentID}
	if name, ok := textValue(argMultimap, PrefixName); ok {
		c.Name = &name
	}
	if email, ok := argMultimap.Value(PrefixEmail); ok {
		c.Email = &email
	}
	if c.Name == nil && c.Email == nil {
		return nil, &ParseError{Err: ErrNoFieldsToEdit, Usage: editStudentUsage}
	}
	return c, nil
}

func (c EditStudent) Execute(m Model) (Result, error) {
	r := m.Roster()
	module, ok := r.Module(c.Module)
	if !ok {
		return Result{}, &roster.NotFoundError{Kind: roster.KindModule, Key: c.Module.String()}
	}
	target, ok := module.Student(c.Student)
	if !ok {
		return Result{}, &roster.NotFoundError{Kind: roster.KindStudent, Key: c.Student.String()}
	}

	name, email := target.Name(), target.Email()
	if c.Name != nil {
		name = *c.Name
	}
	if c.Email != nil {
		email = *c.Email
	}
	edited := target.WithProfile(name, email)
	if err := r.SetStudent(c.Module, target, edited); err != nil {
		return Result{}, err
	}
	showAll(m)
	return Result{Feedback: fmt.Sprintf("Edited student in %s: %s", c.Module, describeStudent(edited))}, nil
}

// DeleteStudent unenrolls a student from one module.
type DeleteStudent struct {
	Module  roster.ModuleName
	Student roster.StudentID
}

func parseDeleteStudent(args string) (Command, error) {
	argMultimap, err := tokenizeRequired(args, deleteStudentUsage, []Prefix{PrefixModule, PrefixStudent})
	if err != nil {
		return nil, err
	}
	moduleValue, _ := argMultimap.Value(PrefixModule)
	moduleName, err := parseModuleName(moduleValue)
	if err != nil {
		return nil, err
	}
	studentValue, _ := argMultimap.Value(PrefixStudent)
	studentID, err := parseStudentID(studentValue)
	if err != nil {
		return nil, err
	}
	return DeleteStudent{Module: moduleName, Student: studentID}, nil
}

func (c DeleteStudent) Execute(m Model) (Result, error) {
	if err := m.Roster().RemoveStudent(c.Module, roster.NewStudent(c.Student, "", "")); err != nil {
		return Result{}, err
	}
	showAll(m)
	return Result{Feedback: fmt.Sprintf("Deleted student from %s: %s", c.Module, c.Student)}, nil
}

func describeStudent(s *roster.Student) string {
	parts := []string{s.ID().String()}
	if s.Name() != "" {
		parts = append(parts, s.Name())
	}
	if s.Email() != "" {
		parts = append(parts, "<"+s.Email()+">")
	}
	return strings.Join(parts, " ")
}

// taskDescription returns the description of the first copy of the task
// held in the module.
func taskDescription(module *roster.Module, id roster.TaskID) string {
	for _, s := range module.Students() {
		if task, ok := s.Task(id); ok {
			return task.Description()
		}
	}
	return ""
}
