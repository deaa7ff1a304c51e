package sqlite_test

import (
	"context"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/amonks/tab/internal/storage"
	"github.com/amonks/tab/internal/storage/sqlite"
	"github.com/amonks/tab/internal/testsupport"
	"github.com/amonks/tab/roster"
)

func openStore(t *testing.T, path string) *sqlite.Store {
	t.Helper()
	store, err := sqlite.Open(context.Background(), path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestOpenRequiresPath(t *testing.T) {
	if _, err := sqlite.Open(context.Background(), "  "); err == nil {
		t.Fatal("expected error for blank path")
	}
}

func TestLoadEmptyDatabase(t *testing.T) {
	store := openStore(t, filepath.Join(t.TempDir(), "roster.db"))

	r, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(r.Modules()) != 0 {
		t.Fatalf("expected empty roster, got %d modules", len(r.Modules()))
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "roster.db")
	original := testsupport.SampleRoster(t)

	store := openStore(t, path)
	if err := store.Save(ctx, original); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	reopened := openStore(t, path)
	loaded, err := reopened.Load(ctx)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !reflect.DeepEqual(storage.Records(loaded), storage.Records(original)) {
		t.Fatalf("loaded records differ:\ngot:  %+v\nwant: %+v", storage.Records(loaded), storage.Records(original))
	}
}

func TestSaveReplacesPreviousContents(t *testing.T) {
	ctx := context.Background()
	store := openStore(t, filepath.Join(t.TempDir(), "roster.db"))
	r := testsupport.SampleRoster(t)

	if err := store.Save(ctx, r); err != nil {
		t.Fatalf("first Save failed: %v", err)
	}

	if err := r.RemoveModule(mustModule(t, r, "CS2103")); err != nil {
		t.Fatalf("RemoveModule failed: %v", err)
	}
	if err := r.AddModule(roster.NewModule(roster.MustModuleName("CS1010"))); err != nil {
		t.Fatalf("AddModule failed: %v", err)
	}
	if err := store.Save(ctx, r); err != nil {
		t.Fatalf("second Save failed: %v", err)
	}

	loaded, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	var names []string
	for _, m := range loaded.Modules() {
		names = append(names, m.Name().String())
	}
	if want := []string{"CS2101", "CS1010"}; !reflect.DeepEqual(names, want) {
		t.Fatalf("module order = %v, want %v", names, want)
	}
}

func TestUpdateThroughStorage(t *testing.T) {
	ctx := context.Background()
	store := openStore(t, filepath.Join(t.TempDir(), "roster.db"))
	if err := store.Save(ctx, testsupport.SampleRoster(t)); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	cs2103 := roster.MustModuleName("CS2103")
	bob := roster.MustStudentID("A7654321A")
	t2 := roster.MustTaskID("T2")
	err := storage.Update(ctx, store, func(r *roster.Roster) error {
		return r.SetTaskDone(cs2103, bob, t2)
	})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	loaded, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !loaded.IsTaskDone(cs2103, bob, t2) {
		t.Fatal("expected T2 done for A7654321A")
	}
}

func mustModule(t *testing.T, r *roster.Roster, name string) *roster.Module {
	t.Helper()
	m, ok := r.Module(roster.MustModuleName(name))
	if !ok {
		t.Fatalf("module %s missing", name)
	}
	return m
}
