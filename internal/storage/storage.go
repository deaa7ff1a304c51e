// Package storage defines how rosters are persisted.
//
// Backends exchange plain records rather than roster entities, so every
// identifier read back from disk goes through the same validating
// constructors as user input.
package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/amonks/tab/roster"
)

// ErrCorruptData is returned when stored data fails roster validation.
var ErrCorruptData = errors.New("stored roster data is invalid")

// Store loads and saves a whole roster.
type Store interface {
	// Load returns the stored roster, or an empty roster if nothing is stored yet.
	Load(ctx context.Context) (*roster.Roster, error)

	// Save replaces the stored roster with snapshot.
	Save(ctx context.Context, snapshot roster.Snapshot) error

	// Close releases the backend.
	Close() error
}

// TaskRecord is the stored form of a task.
type TaskRecord struct {
	ID          string `json:"id"`
	Description string `json:"description,omitempty"`
	Done        bool   `json:"done"`
}

// StudentRecord is the stored form of an enrolled student.
type StudentRecord struct {
	ID    string       `json:"id"`
	Name  string       `json:"name,omitempty"`
	Email string       `json:"email,omitempty"`
	Tasks []TaskRecord `json:"tasks"`
}

// ModuleRecord is the stored form of a module.
type ModuleRecord struct {
	Name     string          `json:"name"`
	Students []StudentRecord `json:"students"`
}

// Records converts a snapshot into records, preserving every order.
func Records(snapshot roster.Snapshot) []ModuleRecord {
	modules := snapshot.Modules()
	records := make([]ModuleRecord, 0, len(modules))
	for _, m := range modules {
		students := m.Students()
		moduleRecord := ModuleRecord{
			Name:     m.Name().String(),
			Students: make([]StudentRecord, 0, len(students)),
		}
		for _, s := range students {
			tasks := s.Tasks()
			studentRecord := StudentRecord{
				ID:    s.ID().String(),
				Name:  s.Name(),
				Email: s.Email(),
				Tasks: make([]TaskRecord, 0, len(tasks)),
			}
			for _, task := range tasks {
				studentRecord.Tasks = append(studentRecord.Tasks, TaskRecord{
					ID:          task.ID().String(),
					Description: task.Description(),
					Done:        task.IsComplete(),
				})
			}
			moduleRecord.Students = append(moduleRecord.Students, studentRecord)
		}
		records = append(records, moduleRecord)
	}
	return records
}

// Build validates records and assembles a roster from them.
func Build(records []ModuleRecord) (*roster.Roster, error) {
	modules := make([]*roster.Module, 0, len(records))
	for i, record := range records {
		m, err := buildModule(record)
		if err != nil {
			return nil, fmt.Errorf("%w: module %d: %w", ErrCorruptData, i, err)
		}
		modules = append(modules, m)
	}

	r := roster.New()
	if err := r.SetModules(modules); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptData, err)
	}
	return r, nil
}

func buildModule(record ModuleRecord) (*roster.Module, error) {
	name, err := roster.NewModuleName(record.Name)
	if err != nil {
		return nil, err
	}
	students := make([]*roster.Student, 0, len(record.Students))
	for _, studentRecord := range record.Students {
		student, err := buildStudent(studentRecord)
		if err != nil {
			return nil, err
		}
		students = append(students, student)
	}
	return roster.NewModule(name).WithStudents(students)
}

func buildStudent(record StudentRecord) (*roster.Student, error) {
	id, err := roster.NewStudentID(record.ID)
	if err != nil {
		return nil, err
	}
	tasks := make([]*roster.Task, 0, len(record.Tasks))
	for _, taskRecord := range record.Tasks {
		taskID, err := roster.NewTaskID(taskRecord.ID)
		if err != nil {
			return nil, fmt.Errorf("student %s: %w", id, err)
		}
		tasks = append(tasks, roster.NewTask(taskID, taskRecord.Description).WithComplete(taskRecord.Done))
	}
	student, err := roster.NewStudent(id, record.Name, record.Email).WithTasks(tasks)
	if err != nil {
		return nil, fmt.Errorf("student %s: %w", id, err)
	}
	return student, nil
}

// Updater is implemented by stores that can run a locked read-modify-write.
type Updater interface {
	Update(ctx context.Context, fn func(r *roster.Roster) error) error
}

// Update loads the roster, applies fn, and saves the result. Stores that
// implement Updater run the whole sequence under their own lock.
func Update(ctx context.Context, store Store, fn func(r *roster.Roster) error) error {
	if updater, ok := store.(Updater); ok {
		return updater.Update(ctx, fn)
	}

	r, err := store.Load(ctx)
	if err != nil {
		return err
	}
	if err := fn(r); err != nil {
		return err
	}
	return store.Save(ctx, r)
}
