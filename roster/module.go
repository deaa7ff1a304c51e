package roster

// Module is a taught module and the students enrolled in it.
type Module struct {
	name     ModuleName
	students *UniqueList[*Student]
}

// NewModule returns a module with no students.
func NewModule(name ModuleName) *Module {
	return &Module{name: name, students: newStudentList()}
}

func (m *Module) Name() ModuleName { return m.name }

// Students returns the enrolled students in enrollment order.
func (m *Module) Students() []*Student {
	return m.students.Items()
}

// Student returns the enrolled student with the given id.
func (m *Module) Student(id StudentID) (*Student, bool) {
	return m.students.Get(id.String())
}

// HasStudent reports whether a student with the given id is enrolled.
func (m *Module) HasStudent(id StudentID) bool {
	return m.students.ContainsKey(id.String())
}

func (m *Module) addStudent(student *Student) error {
	return m.students.Add(student)
}

func (m *Module) setStudent(target, edited *Student) error {
	return m.students.Set(target, edited)
}

func (m *Module) removeStudent(student *Student) error {
	return m.students.Remove(student)
}

// WithStudents returns a copy of the module enrolling copies of students in
// place of its current ones. Student ids must be unique.
func (m *Module) WithStudents(students []*Student) (*Module, error) {
	edited := NewModule(m.name)
	copies := make([]*Student, 0, len(students))
	for _, student := range students {
		copies = append(copies, student.Clone())
	}
	if err := edited.students.SetAll(copies); err != nil {
		return nil, err
	}
	return edited, nil
}

// HasTask reports whether any enrolled student holds a task with the given id.
func (m *Module) HasTask(id TaskID) bool {
	for student := range m.students.All() {
		if student.HasTask(id) {
			return true
		}
	}
	return false
}

// addTask assigns an incomplete copy of task to every enrolled student. It
// fails without assigning anything if any student already holds the task id.
func (m *Module) addTask(task *Task) error {
	if m.HasTask(task.ID()) {
		return &DuplicateError{Kind: KindTask, Key: task.ID().String()}
	}
	for student := range m.students.All() {
		if err := student.addTask(task.WithComplete(false)); err != nil {
			return err
		}
	}
	return nil
}

// removeTask removes the task id from every student holding it.
func (m *Module) removeTask(id TaskID) error {
	if !m.HasTask(id) {
		return &NotFoundError{Kind: KindTask, Key: id.String()}
	}
	for student := range m.students.All() {
		if !student.HasTask(id) {
			continue
		}
		if err := student.removeTask(id); err != nil {
			return err
		}
	}
	return nil
}

// TaskIDs returns the distinct task ids held by enrolled students, in first
// seen order.
func (m *Module) TaskIDs() []TaskID {
	seen := make(map[TaskID]bool)
	var ids []TaskID
	for student := range m.students.All() {
		for _, task := range student.Tasks() {
			if seen[task.ID()] {
				continue
			}
			seen[task.ID()] = true
			ids = append(ids, task.ID())
		}
	}
	return ids
}

// Renamed returns a deep copy carrying a new name.
func (m *Module) Renamed(name ModuleName) *Module {
	clone := m.Clone()
	clone.name = name
	return clone
}

// Clone returns a deep copy, students and tasks included.
func (m *Module) Clone() *Module {
	clone := NewModule(m.name)
	for student := range m.students.All() {
		_ = clone.students.Add(student.Clone())
	}
	return clone
}

func newModuleList() *UniqueList[*Module] {
	return NewUniqueList(KindModule, func(m *Module) string { return m.name.String() })
}
