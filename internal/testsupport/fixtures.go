package testsupport

import (
	"testing"

	"github.com/amonks/tab/roster"
)

// SampleRoster returns a roster with two modules:
//
//	CS2103: A1234567A (T1 done, T2), A7654321A (T1, T2)
//	CS2101: A1234567A (W1)
func SampleRoster(t testing.TB) *roster.Roster {
	t.Helper()

	r := roster.New()
	cs2103 := roster.MustModuleName("CS2103")
	cs2101 := roster.MustModuleName("CS2101")
	alice := roster.MustStudentID("A1234567A")
	bob := roster.MustStudentID("A7654321A")

	must := func(err error) {
		t.Helper()
		if err != nil {
			t.Fatalf("build sample roster: %v", err)
		}
	}

	must(r.AddModule(roster.NewModule(cs2103)))
	must(r.AddModule(roster.NewModule(cs2101)))
	must(r.AddStudent(cs2103, roster.NewStudent(alice, "Alice Tan", "alice@example.com")))
	must(r.AddStudent(cs2103, roster.NewStudent(bob, "Bob Lim", "")))
	must(r.AddStudent(cs2101, roster.NewStudent(alice, "Alice Tan", "alice@example.com")))
	must(r.AddTask(cs2103, roster.NewTask(roster.MustTaskID("T1"), "Tutorial 1")))
	must(r.AddTask(cs2103, roster.NewTask(roster.MustTaskID("T2"), "")))
	must(r.AddTask(cs2101, roster.NewTask(roster.MustTaskID("W1"), "Essay draft")))
	must(r.SetTaskDone(cs2103, alice, roster.MustTaskID("T1")))

	return r
}
