package console

import (
	"bytes"
	"errors"
	"fmt"
	"testing"
)

func TestSuccessAndError(t *testing.T) {
	var out, errOut bytes.Buffer
	logger := New(&out, &errOut, Options{})

	logger.Success("New module added: CS2103")
	logger.Error(errors.New("invalid command format\ndone m/MODULE s/STUDENT_ID t/TASK_ID"))
	logger.Info("")

	if got := out.String(); got != "ok: New module added: CS2103\n" {
		t.Fatalf("stdout = %q", got)
	}
	want := "error: invalid command format\ndone m/MODULE s/STUDENT_ID t/TASK_ID\n"
	if got := errOut.String(); got != want {
		t.Fatalf("stderr = %q, want %q", got, want)
	}
}

func TestWrapsToWidth(t *testing.T) {
	var out bytes.Buffer
	logger := New(&out, nil, Options{Width: 20})

	logger.Info("one two three four five six seven")

	want := "one two three four\nfive six seven\n"
	if got := out.String(); got != want {
		t.Fatalf("output = %q, want %q", got, want)
	}
}

func TestDebugfRequiresVerbose(t *testing.T) {
	var errOut bytes.Buffer
	New(nil, &errOut, Options{}).Debugf("hidden %d", 1)
	if errOut.Len() != 0 {
		t.Fatalf("expected no debug output, got %q", errOut.String())
	}

	New(nil, &errOut, Options{Verbose: true}).Debugf("loaded %d modules", 2)
	if got := errOut.String(); got != "debug: loaded 2 modules\n" {
		t.Fatalf("debug output = %q", got)
	}
}

func TestNilLoggerIsSafe(t *testing.T) {
	var logger *Logger
	logger.Success("x")
	logger.Error(errors.New("x"))
	logger.Debugf("x")
	if logger.Width() != 0 || logger.Color() {
		t.Fatal("nil logger should report zero options")
	}
}

func TestExitCode(t *testing.T) {
	if got := ExitCode(errors.New("plain")); got != 1 {
		t.Fatalf("plain error exit code = %d", got)
	}
	wrapped := fmt.Errorf("run: %w", &ExitError{Code: 3, Err: errors.New("bad")})
	if got := ExitCode(wrapped); got != 3 {
		t.Fatalf("wrapped exit code = %d", got)
	}
}
