package roster

// Task is one piece of work assigned to a student.
type Task struct {
	id          TaskID
	description string
	complete    bool
}

// NewTask returns an incomplete task.
func NewTask(id TaskID, description string) *Task {
	return &Task{id: id, description: description}
}

func (t *Task) ID() TaskID          { return t.id }
func (t *Task) Description() string { return t.description }

// IsComplete reports whether the task has been marked done.
func (t *Task) IsComplete() bool { return t.complete }

func (t *Task) setComplete()   { t.complete = true }
func (t *Task) setIncomplete() { t.complete = false }

// WithComplete returns a copy of the task with the given completion flag.
func (t *Task) WithComplete(complete bool) *Task {
	clone := t.Clone()
	clone.complete = complete
	return clone
}

// Clone returns an independent copy.
func (t *Task) Clone() *Task {
	clone := *t
	return &clone
}

func newTaskList() *UniqueList[*Task] {
	return NewUniqueList(KindTask, func(t *Task) string { return t.id.String() })
}
