// Package strings holds small text helpers shared by the parser, the model,
// and the terminal output.
package strings

import (
	"strings"

	"golang.org/x/text/cases"
)

// NormalizeWhitespace collapses runs of whitespace into single spaces.
func NormalizeWhitespace(value string) string {
	fields := strings.Fields(value)
	if len(fields) == 0 {
		return ""
	}
	return strings.Join(fields, " ")
}

// TrimTrailingNewlines removes trailing CR/LF characters.
func TrimTrailingNewlines(value string) string {
	return strings.TrimRight(value, "\r\n")
}

// SplitCommandWord splits an input line into its first word and the rest.
// The rest keeps its leading whitespace so prefix tokenizing can anchor on it.
func SplitCommandWord(line string) (word, rest string) {
	line = strings.TrimSpace(line)
	idx := strings.IndexFunc(line, isSpace)
	if idx == -1 {
		return line, ""
	}
	return line[:idx], line[idx:]
}

// ContainsWordFold reports whether sentence contains word as a whole
// whitespace-separated word, comparing with Unicode case folding.
// word must be a single non-empty word.
func ContainsWordFold(sentence, word string) bool {
	word = strings.TrimSpace(word)
	if word == "" || strings.IndexFunc(word, isSpace) != -1 {
		return false
	}

	fold := cases.Fold()
	target := fold.String(word)
	for _, candidate := range strings.Fields(sentence) {
		if fold.String(candidate) == target {
			return true
		}
	}
	return false
}

func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}
