package roster

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	// MaxTaskIDLength is the maximum length of a task id.
	MaxTaskIDLength = 32

	// MaxModuleNameLength is the maximum length of a normalized module name.
	MaxModuleNameLength = 20
)

var (
	studentIDPattern = regexp.MustCompile(`^[A-Z][0-9]{7}[A-Z]$`)
	alnumPattern     = regexp.MustCompile(`^[A-Za-z0-9]+$`)
)

// StudentID identifies a student, e.g. A1234567A.
type StudentID struct {
	value string
}

// IsValidStudentID reports whether value is one uppercase letter, seven digits,
// then one uppercase letter.
func IsValidStudentID(value string) bool {
	return studentIDPattern.MatchString(value)
}

// NewStudentID validates value and returns it as a StudentID.
func NewStudentID(value string) (StudentID, error) {
	if !IsValidStudentID(value) {
		return StudentID{}, fmt.Errorf("%w: %q", ErrInvalidStudentID, value)
	}
	return StudentID{value: value}, nil
}

// MustStudentID is like NewStudentID but panics on invalid input. Use only in tests.
func MustStudentID(value string) StudentID {
	id, err := NewStudentID(value)
	if err != nil {
		panic(err)
	}
	return id
}

func (id StudentID) String() string { return id.value }
func (id StudentID) IsZero() bool   { return id.value == "" }

// TaskID identifies a task within a student's task list.
type TaskID struct {
	value string
}

// IsValidTaskID reports whether value is a non-empty run of ASCII letters and digits.
func IsValidTaskID(value string) bool {
	return len(value) <= MaxTaskIDLength && alnumPattern.MatchString(value)
}

// NewTaskID validates value and returns it as a TaskID.
func NewTaskID(value string) (TaskID, error) {
	if !IsValidTaskID(value) {
		return TaskID{}, fmt.Errorf("%w: %q", ErrInvalidTaskID, value)
	}
	return TaskID{value: value}, nil
}

// MustTaskID is like NewTaskID but panics on invalid input. Use only in tests.
func MustTaskID(value string) TaskID {
	id, err := NewTaskID(value)
	if err != nil {
		panic(err)
	}
	return id
}

func (id TaskID) String() string { return id.value }
func (id TaskID) IsZero() bool   { return id.value == "" }

// ModuleName identifies a module. Names are stored trimmed and upper-cased,
// so "cs2103t" and "CS2103T" are the same module.
type ModuleName struct {
	value string
}

// NormalizeModuleName returns the canonical form of a module name.
func NormalizeModuleName(value string) string {
	return strings.ToUpper(strings.TrimSpace(value))
}

// IsValidModuleName reports whether value normalizes to 1-20 ASCII letters or digits.
func IsValidModuleName(value string) bool {
	normalized := NormalizeModuleName(value)
	return len(normalized) <= MaxModuleNameLength && alnumPattern.MatchString(normalized)
}

// NewModuleName validates and normalizes value.
func NewModuleName(value string) (ModuleName, error) {
	if !IsValidModuleName(value) {
		return ModuleName{}, fmt.Errorf("%w: %q", ErrInvalidModuleName, value)
	}
	return ModuleName{value: NormalizeModuleName(value)}, nil
}

// MustModuleName is like NewModuleName but panics on invalid input. Use only in tests.
func MustModuleName(value string) ModuleName {
	name, err := NewModuleName(value)
	if err != nil {
		panic(err)
	}
	return name
}

func (name ModuleName) String() string { return name.value }
func (name ModuleName) IsZero() bool   { return name.value == "" }
