package roster

// Student is a student enrolled in a module. Identity is the student id;
// name and email are profile fields.
type Student struct {
	id    StudentID
	name  string
	email string
	tasks *UniqueList[*Task]
}

// NewStudent returns a student with no tasks.
func NewStudent(id StudentID, name, email string) *Student {
	return &Student{
		id:    id,
		name:  name,
		email: email,
		tasks: newTaskList(),
	}
}

func (s *Student) ID() StudentID { return s.id }
func (s *Student) Name() string  { return s.name }
func (s *Student) Email() string { return s.email }

// Tasks returns the student's tasks in assignment order.
func (s *Student) Tasks() []*Task {
	return s.tasks.Items()
}

// Task returns the task with the given id.
func (s *Student) Task(id TaskID) (*Task, bool) {
	return s.tasks.Get(id.String())
}

// HasTask reports whether the student holds a task with the given id.
func (s *Student) HasTask(id TaskID) bool {
	return s.tasks.ContainsKey(id.String())
}

func (s *Student) addTask(task *Task) error {
	return s.tasks.Add(task)
}

func (s *Student) removeTask(id TaskID) error {
	return s.tasks.RemoveKey(id.String())
}

// WithTasks returns a copy of the student holding copies of tasks in place of
// its current ones. Task ids must be unique.
func (s *Student) WithTasks(tasks []*Task) (*Student, error) {
	edited := NewStudent(s.id, s.name, s.email)
	copies := make([]*Task, 0, len(tasks))
	for _, task := range tasks {
		copies = append(copies, task.Clone())
	}
	if err := edited.tasks.SetAll(copies); err != nil {
		return nil, err
	}
	return edited, nil
}

// WithProfile returns a copy of the student with new profile fields and the
// same tasks.
func (s *Student) WithProfile(name, email string) *Student {
	edited := s.Clone()
	edited.name = name
	edited.email = email
	return edited
}

// CompletedCount returns the number of completed tasks.
func (s *Student) CompletedCount() int {
	count := 0
	for task := range s.tasks.All() {
		if task.IsComplete() {
			count++
		}
	}
	return count
}

// Clone returns a deep copy, tasks included.
func (s *Student) Clone() *Student {
	clone := NewStudent(s.id, s.name, s.email)
	for task := range s.tasks.All() {
		// Keys were unique in the source list.
		_ = clone.tasks.Add(task.Clone())
	}
	return clone
}

func newStudentList() *UniqueList[*Student] {
	return NewUniqueList(KindStudent, func(s *Student) string { return s.id.String() })
}
