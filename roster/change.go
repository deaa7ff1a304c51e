package roster

import "slices"

// ChangeKind names a roster mutation.
type ChangeKind string

const (
	ChangeModuleAdded    ChangeKind = "module_added"
	ChangeModuleEdited   ChangeKind = "module_edited"
	ChangeModuleRemoved  ChangeKind = "module_removed"
	ChangeStudentAdded   ChangeKind = "student_added"
	ChangeStudentEdited  ChangeKind = "student_edited"
	ChangeStudentRemoved ChangeKind = "student_removed"
	ChangeTaskAdded      ChangeKind = "task_added"
	ChangeTaskRemoved    ChangeKind = "task_removed"
	ChangeTaskDone       ChangeKind = "task_done"
	ChangeTaskUndone     ChangeKind = "task_undone"
	ChangeReset          ChangeKind = "reset"
)

// Change describes one successful mutation. Fields that do not apply to the
// kind are zero.
type Change struct {
	Kind    ChangeKind
	Module  ModuleName
	Student StudentID
	Task    TaskID
}

type observer struct {
	id int
	fn func(Change)
}

// Subscribe registers fn to be called after every successful mutation and
// returns a function that removes it. Observers are called in subscription
// order.
func (r *Roster) Subscribe(fn func(Change)) (unsubscribe func()) {
	id := r.nextObserver
	r.nextObserver++
	r.observers = append(r.observers, observer{id: id, fn: fn})
	return func() {
		r.observers = slices.DeleteFunc(r.observers, func(o observer) bool {
			return o.id == id
		})
	}
}

func (r *Roster) notify(change Change) {
	for _, o := range slices.Clone(r.observers) {
		o.fn(change)
	}
}
