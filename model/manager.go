// Package model holds the in-process state the command layer runs against:
// the roster, the module view selected by find and list, and whether there
// are changes that have not been saved yet.
package model

import (
	"github.com/amonks/tab/command"
	"github.com/amonks/tab/roster"
)

// Manager owns one roster for the lifetime of a session.
type Manager struct {
	roster      *roster.Roster
	filter      roster.ModulePredicate
	dirty       bool
	unsubscribe func()
}

var _ command.Model = (*Manager)(nil)

// New returns a manager over r. A nil r starts from an empty roster.
func New(r *roster.Roster) *Manager {
	if r == nil {
		r = roster.New()
	}
	m := &Manager{roster: r, filter: roster.AllModules}
	m.unsubscribe = r.Subscribe(func(roster.Change) {
		m.dirty = true
	})
	return m
}

// Roster returns the managed roster.
func (m *Manager) Roster() *roster.Roster {
	return m.roster
}

// FilteredModules returns the modules selected by the current filter.
func (m *Manager) FilteredModules() []*roster.Module {
	return m.roster.FilterModules(m.filter)
}

// UpdateFilteredModules replaces the filter. A nil pred selects every module.
func (m *Manager) UpdateFilteredModules(pred roster.ModulePredicate) {
	if pred == nil {
		pred = roster.AllModules
	}
	m.filter = pred
}

// Dirty reports whether the roster changed since it was loaded or last saved.
func (m *Manager) Dirty() bool {
	return m.dirty
}

// MarkSaved clears the dirty flag.
func (m *Manager) MarkSaved() {
	m.dirty = false
}

// Close stops tracking roster changes.
func (m *Manager) Close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
		m.unsubscribe = nil
	}
}
