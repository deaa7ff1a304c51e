package ui

import (
	"os"

	"golang.org/x/term"
)

// ColorEnabled reports whether ANSI styling should be written to f.
// NO_COLOR and TERM=dumb disable it, as does a non-terminal f.
func ColorEnabled(f *os.File) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return f != nil && term.IsTerminal(int(f.Fd()))
}

// TerminalWidth returns the width of f, or fallback when f is not a terminal.
func TerminalWidth(f *os.File, fallback int) int {
	if f == nil || !term.IsTerminal(int(f.Fd())) {
		return fallback
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return fallback
	}
	return width
}
