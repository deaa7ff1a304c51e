// Package console writes command feedback and errors to the terminal.
package console

import (
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
)

// Options controls console output.
type Options struct {
	// Width wraps feedback at this many columns. Zero disables wrapping.
	Width int
	// Color enables ANSI styling.
	Color bool
	// Verbose enables Debugf output.
	Verbose bool
}

// Logger writes styled feedback to out and errors to errOut.
type Logger struct {
	out    io.Writer
	errOut io.Writer
	opts   Options
	debug  *log.Logger

	successStyle lipgloss.Style
	infoStyle    lipgloss.Style
	errorStyle   lipgloss.Style
}

// New builds a logger. Nil writers discard output.
func New(out, errOut io.Writer, opts Options) *Logger {
	if out == nil {
		out = io.Discard
	}
	if errOut == nil {
		errOut = io.Discard
	}
	logger := &Logger{
		out:          out,
		errOut:       errOut,
		opts:         opts,
		successStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		infoStyle:    lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
		errorStyle:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1")),
	}
	if opts.Verbose {
		logger.debug = log.New(errOut, "debug: ", log.Lmsgprefix)
	}
	return logger
}

// Width returns the wrap width.
func (logger *Logger) Width() int {
	if logger == nil {
		return 0
	}
	return logger.opts.Width
}

// Color reports whether styling is enabled.
func (logger *Logger) Color() bool {
	return logger != nil && logger.opts.Color
}

// Success writes feedback for a completed command.
func (logger *Logger) Success(message string) {
	if logger == nil {
		return
	}
	logger.writeLabeled(logger.out, logger.successStyle, "ok", message)
}

// Info writes a neutral message.
func (logger *Logger) Info(message string) {
	if logger == nil {
		return
	}
	logger.writeLabeled(logger.out, logger.infoStyle, "", message)
}

// Error writes err to the error stream. Multi-line messages, such as a
// parse error with its usage, keep their line breaks.
func (logger *Logger) Error(err error) {
	if logger == nil || err == nil {
		return
	}
	logger.writeLabeled(logger.errOut, logger.errorStyle, "error", err.Error())
}

// Print writes preformatted text, such as a table, to the output stream.
func (logger *Logger) Print(text string) {
	if logger == nil || text == "" {
		return
	}
	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	_, _ = io.WriteString(logger.out, text)
}

// Debugf writes a debug line when verbose output is on.
func (logger *Logger) Debugf(format string, args ...any) {
	if logger == nil || logger.debug == nil {
		return
	}
	logger.debug.Printf(format, args...)
}

func (logger *Logger) writeLabeled(w io.Writer, style lipgloss.Style, label, message string) {
	message = strings.TrimRight(message, "\n")
	if message == "" {
		return
	}
	if label != "" {
		styled := label + ":"
		if logger.opts.Color {
			styled = style.Render(styled)
		}
		message = styled + " " + message
	}
	if logger.opts.Width > 0 {
		message = wordwrap.String(message, logger.opts.Width)
	}
	_, _ = fmt.Fprintln(w, message)
}

// ExitError carries a process exit code alongside the error that caused it.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

func (e *ExitError) ExitCode() int {
	return e.Code
}

// ExitCode returns the exit code carried by err, or 1.
func ExitCode(err error) int {
	var coder interface{ ExitCode() int }
	if errors.As(err, &coder) {
		return coder.ExitCode()
	}
	return 1
}
