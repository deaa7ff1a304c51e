package command

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCommandFormat is returned when required prefixes are missing
	// or unexpected text precedes them.
	ErrInvalidCommandFormat = errors.New("invalid command format")

	// ErrUnknownCommand is returned for an unrecognized command word.
	ErrUnknownCommand = errors.New("unknown command")

	// ErrNoFieldsToEdit is returned by edit commands given nothing to change.
	ErrNoFieldsToEdit = errors.New("at least one field to edit must be provided")
)

// ParseError reports input that could not be turned into a command.
// Usage is the expected form of the command, when one applies.
type ParseError struct {
	Err   error
	Usage string
}

func (e *ParseError) Error() string {
	if e.Usage == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%v\n%s", e.Err, e.Usage)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func invalidFormat(usage string) error {
	return &ParseError{Err: ErrInvalidCommandFormat, Usage: usage}
}
