package model

import (
	"testing"

	"github.com/amonks/tab/roster"
)

func TestManagerDirtyTracking(t *testing.T) {
	m := New(nil)
	if m.Dirty() {
		t.Fatal("new manager should be clean")
	}

	if err := m.Roster().AddModule(roster.NewModule(roster.MustModuleName("CS2103"))); err != nil {
		t.Fatalf("AddModule failed: %v", err)
	}
	if !m.Dirty() {
		t.Fatal("expected dirty after a mutation")
	}

	m.MarkSaved()
	if m.Dirty() {
		t.Fatal("expected clean after MarkSaved")
	}

	if err := m.Roster().AddModule(roster.NewModule(roster.MustModuleName("CS2103"))); err == nil {
		t.Fatal("expected duplicate error")
	}
	if m.Dirty() {
		t.Fatal("failed mutation should not mark dirty")
	}

	m.Close()
	if err := m.Roster().AddModule(roster.NewModule(roster.MustModuleName("CS2101"))); err != nil {
		t.Fatalf("AddModule failed: %v", err)
	}
	if m.Dirty() {
		t.Fatal("closed manager should stop tracking")
	}
}

func TestManagerFilter(t *testing.T) {
	r := roster.New()
	for _, name := range []string{"CS2103", "CS2101"} {
		if err := r.AddModule(roster.NewModule(roster.MustModuleName(name))); err != nil {
			t.Fatalf("AddModule failed: %v", err)
		}
	}
	m := New(r)

	if got := len(m.FilteredModules()); got != 2 {
		t.Fatalf("expected 2 modules, got %d", got)
	}

	m.UpdateFilteredModules(roster.ModuleNameContainsKeywords([]string{"cs2101"}))
	filtered := m.FilteredModules()
	if len(filtered) != 1 || filtered[0].Name().String() != "CS2101" {
		t.Fatalf("unexpected filter result: %v", filtered)
	}

	if err := r.AddModule(roster.NewModule(roster.MustModuleName("CS2101T"))); err != nil {
		t.Fatalf("AddModule failed: %v", err)
	}
	if got := len(m.FilteredModules()); got != 1 {
		t.Fatalf("filter should apply to new modules, got %d", got)
	}

	m.UpdateFilteredModules(nil)
	if got := len(m.FilteredModules()); got != 3 {
		t.Fatalf("nil filter should select all, got %d", got)
	}
}
