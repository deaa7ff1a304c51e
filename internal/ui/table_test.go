package ui

import (
	"strings"
	"testing"

	"github.com/amonks/tab/roster"
)

func TestFormatTableAlignsColumns(t *testing.T) {
	got := FormatTable([]string{"A", "LONGER"}, [][]string{{"wide cell", "x"}, {"y"}})

	want := "A          LONGER\n" +
		"wide cell  x\n" +
		"y\n"
	if got != want {
		t.Fatalf("unexpected table:\n%q\nwant:\n%q", got, want)
	}
}

func TestFormatTableIgnoresANSICodesInWidth(t *testing.T) {
	styled := "\x1b[1m\x1b[36mab\x1b[0m"

	got := FormatTable([]string{"COL", "NEXT"}, [][]string{{styled, "z"}})

	want := "COL  NEXT\n" + styled + "   z\n"
	if got != want {
		t.Fatalf("unexpected table:\n%q\nwant:\n%q", got, want)
	}
}

func TestTruncateTableCell(t *testing.T) {
	t.Run("normalizes line breaks", func(t *testing.T) {
		got := TruncateTableCell("Hello\nWorld\r\nAgain\tTab")
		if got != "Hello World Again Tab" {
			t.Fatalf("got %q", got)
		}
	})

	t.Run("keeps short values", func(t *testing.T) {
		value := strings.Repeat("a", tableCellMaxWidth-1) + "é"
		if got := TruncateTableCell(value); got != value {
			t.Fatalf("got %q", got)
		}
	})

	t.Run("truncates long values", func(t *testing.T) {
		got := TruncateTableCell(strings.Repeat("a", tableCellMaxWidth+10))
		if len(got) != tableCellMaxWidth {
			t.Fatalf("expected width %d, got %d (%q)", tableCellMaxWidth, len(got), got)
		}
		if !strings.HasSuffix(got, tableCellEllipsis) {
			t.Fatalf("expected ellipsis, got %q", got)
		}
	})
}

func TestFormatModules(t *testing.T) {
	r := roster.New()
	cs2103 := roster.MustModuleName("CS2103")
	alice := roster.MustStudentID("A1234567A")
	mustNoError(t, r.AddModule(roster.NewModule(cs2103)))
	mustNoError(t, r.AddModule(roster.NewModule(roster.MustModuleName("CS2101"))))
	mustNoError(t, r.AddStudent(cs2103, roster.NewStudent(alice, "Alice Tan", "")))
	mustNoError(t, r.AddTask(cs2103, roster.NewTask(roster.MustTaskID("T1"), "")))
	mustNoError(t, r.AddTask(cs2103, roster.NewTask(roster.MustTaskID("T2"), "")))
	mustNoError(t, r.SetTaskDone(cs2103, alice, roster.MustTaskID("T1")))

	got := FormatModules(r.Modules(), false)

	want := "MODULE  STUDENT    NAME       EMAIL  DONE  TASKS\n" +
		"CS2103  A1234567A  Alice Tan  -      1/2   [x]T1 [ ]T2\n" +
		"CS2101  -          -          -      -     -\n"
	if got != want {
		t.Fatalf("unexpected output:\n%s\nwant:\n%s", got, want)
	}

	if got := FormatModules(nil, false); got != "No modules.\n" {
		t.Fatalf("empty output = %q", got)
	}
}

func mustNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatal(err)
	}
}
