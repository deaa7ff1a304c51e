package validation

import (
	"errors"
	"testing"
)

type backend string

const (
	backendJSON   backend = "json"
	backendSQLite backend = "sqlite"
)

func TestFormatValidValues(t *testing.T) {
	got := FormatValidValues([]backend{backendJSON, backendSQLite})
	want := "json, sqlite"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestFormatInvalidValueError(t *testing.T) {
	base := errors.New("invalid storage backend")
	err := FormatInvalidValueError(base, backend("csv"), []backend{backendJSON, backendSQLite})
	if !errors.Is(err, base) {
		t.Fatalf("expected error to wrap %v", base)
	}

	want := "invalid storage backend: \"csv\" (valid: json, sqlite)"
	if err.Error() != want {
		t.Fatalf("expected %q, got %q", want, err.Error())
	}
}
