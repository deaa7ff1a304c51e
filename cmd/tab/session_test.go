package main

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/amonks/tab/internal/console"
	"github.com/amonks/tab/model"
	"github.com/amonks/tab/roster"
)

var errDiskFull = errors.New("disk full")

type stubStore struct {
	saveErr error
	saves   int
}

func (s *stubStore) Load(context.Context) (*roster.Roster, error) {
	return roster.New(), nil
}

func (s *stubStore) Save(context.Context, roster.Snapshot) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.saves++
	return nil
}

func (s *stubStore) Close() error { return nil }

func newTestSession(store *stubStore) (*session, *bytes.Buffer) {
	var out bytes.Buffer
	logger := console.New(&out, nil, console.Options{})
	return &session{store: store, logger: logger}, &out
}

func TestRunOnceReportsAfterSave(t *testing.T) {
	store := &stubStore{}
	s, out := newTestSession(store)

	if _, err := s.runOnce(context.Background(), "addmod m/CS2103"); err != nil {
		t.Fatalf("runOnce failed: %v", err)
	}
	if store.saves != 1 {
		t.Fatalf("expected 1 save, got %d", store.saves)
	}
	if got := out.String(); got != "ok: New module added: CS2103\n" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestRunOnceSilentWhenSaveFails(t *testing.T) {
	s, out := newTestSession(&stubStore{saveErr: errDiskFull})

	_, err := s.runOnce(context.Background(), "addmod m/CS2103")
	if !errors.Is(err, errDiskFull) {
		t.Fatalf("expected errDiskFull, got %v", err)
	}
	if out.Len() != 0 {
		t.Fatalf("expected no feedback, got %q", out.String())
	}
}

func TestExecuteSilentWhenSaveFails(t *testing.T) {
	store := &stubStore{saveErr: errDiskFull}
	s, out := newTestSession(store)
	manager := model.New(nil)
	defer manager.Close()

	_, err := s.execute(context.Background(), manager, "addmod m/CS2103")
	if !errors.Is(err, errDiskFull) {
		t.Fatalf("expected errDiskFull, got %v", err)
	}
	if out.Len() != 0 {
		t.Fatalf("expected no feedback, got %q", out.String())
	}
	if !manager.Dirty() {
		t.Fatal("expected unsaved changes to stay pending")
	}

	store.saveErr = nil
	if _, err := s.execute(context.Background(), manager, "list"); err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	if store.saves != 1 {
		t.Fatalf("expected pending changes to be saved, got %d saves", store.saves)
	}
	if !strings.HasPrefix(out.String(), "ok: Listed all modules\n") {
		t.Fatalf("unexpected output %q", out.String())
	}
}
