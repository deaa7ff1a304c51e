// Package roster implements the teaching-assistant record model.
//
// A Roster owns modules, each module owns its enrolled students, and each
// student owns its tasks. Every level enforces unique identities: module
// names, student ids within a module, and task ids within a student.
//
// Students are owned by modules only. The roster-wide student view is a
// derived index rebuilt after every mutation. Modules, students and tasks
// handed out by a Roster expose no mutators; changes go through the Roster so
// the index and change notifications stay in step with the module lists.
package roster

import "fmt"

// Snapshot is a read-only view of roster contents, used to copy and persist
// rosters.
type Snapshot interface {
	Modules() []*Module
	Students() []*Student
}

// Roster is the aggregate root of the record model.
type Roster struct {
	modules  *UniqueList[*Module]
	enrolled map[StudentID][]ModuleName

	observers    []observer
	nextObserver int
}

// New returns an empty roster.
func New() *Roster {
	return &Roster{
		modules:  newModuleList(),
		enrolled: make(map[StudentID][]ModuleName),
	}
}

// NewFrom returns a roster holding a deep copy of snapshot.
func NewFrom(snapshot Snapshot) (*Roster, error) {
	r := New()
	if err := r.ResetData(snapshot); err != nil {
		return nil, err
	}
	return r, nil
}

// ResetData replaces the roster contents with a deep copy of source.
// Students are derived from the source modules.
func (r *Roster) ResetData(source Snapshot) error {
	sourceModules := source.Modules()
	modules := make([]*Module, 0, len(sourceModules))
	for _, m := range sourceModules {
		modules = append(modules, m.Clone())
	}
	if err := r.modules.SetAll(modules); err != nil {
		return err
	}
	r.reindex()
	r.notify(Change{Kind: ChangeReset})
	return nil
}

// SetModules replaces the module list.
func (r *Roster) SetModules(modules []*Module) error {
	if err := r.modules.SetAll(modules); err != nil {
		return err
	}
	r.reindex()
	r.notify(Change{Kind: ChangeReset})
	return nil
}

// Modules returns the modules in insertion order.
func (r *Roster) Modules() []*Module {
	return r.modules.Items()
}

// Students returns every enrolled student once, in module order then
// enrollment order. A student enrolled in several modules is reported with
// the profile from the first module.
func (r *Roster) Students() []*Student {
	seen := make(map[StudentID]bool, len(r.enrolled))
	var students []*Student
	for m := range r.modules.All() {
		for student := range m.students.All() {
			if seen[student.ID()] {
				continue
			}
			seen[student.ID()] = true
			students = append(students, student)
		}
	}
	return students
}

// Module returns the module with the given name.
func (r *Roster) Module(name ModuleName) (*Module, bool) {
	return r.modules.Get(name.String())
}

// ModulesOf returns the names of the modules the student is enrolled in.
func (r *Roster) ModulesOf(id StudentID) []ModuleName {
	names := r.enrolled[id]
	out := make([]ModuleName, len(names))
	copy(out, names)
	return out
}

// FilterModules returns the modules selected by pred, in insertion order.
func (r *Roster) FilterModules(pred ModulePredicate) []*Module {
	if pred == nil {
		pred = AllModules
	}
	var out []*Module
	for m := range r.modules.All() {
		if pred(m) {
			out = append(out, m)
		}
	}
	return out
}

// HasModuleName reports whether a module with the given name exists.
func (r *Roster) HasModuleName(name ModuleName) bool {
	return r.modules.ContainsKey(name.String())
}

// HasModule reports whether a module with the same identity as module exists.
func (r *Roster) HasModule(module *Module) bool {
	return r.modules.Contains(module)
}

// HasStudent reports whether a student with the same identity as student is
// enrolled in any module.
func (r *Roster) HasStudent(student *Student) bool {
	_, ok := r.enrolled[student.ID()]
	return ok
}

// HasTask reports whether the named module exists and one of its students
// holds the task. A missing module reports false.
func (r *Roster) HasTask(name ModuleName, task *Task) bool {
	m, ok := r.Module(name)
	if !ok {
		return false
	}
	return m.HasTask(task.ID())
}

// FindTask walks module, student, then task. The returned NotFoundError names
// the first link that did not resolve.
func (r *Roster) FindTask(name ModuleName, studentID StudentID, taskID TaskID) (*Task, error) {
	student, err := r.findStudent(name, studentID)
	if err != nil {
		return nil, err
	}
	task, ok := student.Task(taskID)
	if !ok {
		return nil, &NotFoundError{Kind: KindTask, Key: taskID.String()}
	}
	return task, nil
}

// IsTaskDone reports the completion flag of the addressed task. Any missing
// link reports false.
func (r *Roster) IsTaskDone(name ModuleName, studentID StudentID, taskID TaskID) bool {
	task, err := r.FindTask(name, studentID, taskID)
	if err != nil {
		return false
	}
	return task.IsComplete()
}

// SetTaskDone marks the addressed task done.
func (r *Roster) SetTaskDone(name ModuleName, studentID StudentID, taskID TaskID) error {
	task, err := r.FindTask(name, studentID, taskID)
	if err != nil {
		return err
	}
	task.setComplete()
	r.notify(Change{Kind: ChangeTaskDone, Module: name, Student: studentID, Task: taskID})
	return nil
}

// SetTaskUndone marks the addressed task not done.
func (r *Roster) SetTaskUndone(name ModuleName, studentID StudentID, taskID TaskID) error {
	task, err := r.FindTask(name, studentID, taskID)
	if err != nil {
		return err
	}
	task.setIncomplete()
	r.notify(Change{Kind: ChangeTaskUndone, Module: name, Student: studentID, Task: taskID})
	return nil
}

// AddModule adds module. Its name must be unused.
func (r *Roster) AddModule(module *Module) error {
	if err := r.modules.Add(module); err != nil {
		return err
	}
	r.reindex()
	r.notify(Change{Kind: ChangeModuleAdded, Module: module.Name()})
	return nil
}

// SetModule replaces target with edited. edited may not take the name of a
// different module.
func (r *Roster) SetModule(target, edited *Module) error {
	if err := r.modules.Set(target, edited); err != nil {
		return err
	}
	r.reindex()
	r.notify(Change{Kind: ChangeModuleEdited, Module: edited.Name()})
	return nil
}

// RemoveModule removes the module with the same name as module, along with
// its enrollments.
func (r *Roster) RemoveModule(module *Module) error {
	if err := r.modules.Remove(module); err != nil {
		return err
	}
	r.reindex()
	r.notify(Change{Kind: ChangeModuleRemoved, Module: module.Name()})
	return nil
}

// AddStudent enrolls student in the named module.
func (r *Roster) AddStudent(name ModuleName, student *Student) error {
	m, err := r.findModule(name)
	if err != nil {
		return err
	}
	if err := m.addStudent(student); err != nil {
		return err
	}
	r.reindex()
	r.notify(Change{Kind: ChangeStudentAdded, Module: name, Student: student.ID()})
	return nil
}

// SetStudent replaces target with edited inside the named module.
func (r *Roster) SetStudent(name ModuleName, target, edited *Student) error {
	m, err := r.findModule(name)
	if err != nil {
		return err
	}
	if err := m.setStudent(target, edited); err != nil {
		return err
	}
	r.reindex()
	r.notify(Change{Kind: ChangeStudentEdited, Module: name, Student: edited.ID()})
	return nil
}

// RemoveStudent unenrolls student from the named module.
func (r *Roster) RemoveStudent(name ModuleName, student *Student) error {
	m, err := r.findModule(name)
	if err != nil {
		return err
	}
	if err := m.removeStudent(student); err != nil {
		return err
	}
	r.reindex()
	r.notify(Change{Kind: ChangeStudentRemoved, Module: name, Student: student.ID()})
	return nil
}

// AddTask assigns task to every student of the named module.
func (r *Roster) AddTask(name ModuleName, task *Task) error {
	m, err := r.findModule(name)
	if err != nil {
		return err
	}
	if err := m.addTask(task); err != nil {
		return err
	}
	r.notify(Change{Kind: ChangeTaskAdded, Module: name, Task: task.ID()})
	return nil
}

// RemoveTask removes the task from every student of the named module.
func (r *Roster) RemoveTask(name ModuleName, taskID TaskID) error {
	m, err := r.findModule(name)
	if err != nil {
		return err
	}
	if err := m.removeTask(taskID); err != nil {
		return err
	}
	r.notify(Change{Kind: ChangeTaskRemoved, Module: name, Task: taskID})
	return nil
}

func (r *Roster) String() string {
	return fmt.Sprintf("%d modules, %d students", r.modules.Len(), len(r.enrolled))
}

func (r *Roster) findModule(name ModuleName) (*Module, error) {
	m, ok := r.Module(name)
	if !ok {
		return nil, &NotFoundError{Kind: KindModule, Key: name.String()}
	}
	return m, nil
}

func (r *Roster) findStudent(name ModuleName, id StudentID) (*Student, error) {
	m, err := r.findModule(name)
	if err != nil {
		return nil, err
	}
	student, ok := m.Student(id)
	if !ok {
		return nil, &NotFoundError{Kind: KindStudent, Key: id.String()}
	}
	return student, nil
}

func (r *Roster) reindex() {
	clear(r.enrolled)
	for m := range r.modules.All() {
		for student := range m.students.All() {
			r.enrolled[student.ID()] = append(r.enrolled[student.ID()], m.Name())
		}
	}
}
