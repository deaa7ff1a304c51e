package roster

import (
	"errors"
	"fmt"
)

// Entity kinds reported by DuplicateError and NotFoundError.
const (
	KindModule  = "module"
	KindStudent = "student"
	KindTask    = "task"
)

var (
	// ErrInvalidStudentID is returned when a student id does not match the id format.
	ErrInvalidStudentID = errors.New("student id must be one uppercase letter, seven digits, then one uppercase letter")

	// ErrInvalidTaskID is returned when a task id is empty, too long, or not alphanumeric.
	ErrInvalidTaskID = errors.New("task id must be 1 to 32 letters or digits")

	// ErrInvalidModuleName is returned when a module name is empty, too long, or not alphanumeric.
	ErrInvalidModuleName = errors.New("module name must be 1 to 20 letters or digits")

	// ErrDuplicate is returned when an entity with the same identity already exists.
	ErrDuplicate = errors.New("duplicate entity")

	// ErrNotFound is returned when an addressed entity does not exist.
	ErrNotFound = errors.New("entity not found")
)

// DuplicateError reports an identity collision inside a unique list.
type DuplicateError struct {
	Kind string
	Key  string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("%s %s already exists", e.Kind, e.Key)
}

func (e *DuplicateError) Unwrap() error {
	return ErrDuplicate
}

// NotFoundError reports a missing entity, naming the link that failed to resolve.
type NotFoundError struct {
	Kind string
	Key  string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Kind, e.Key)
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}
