package command

import (
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Prefix marks the start of an argument value, e.g. "m/" in "m/CS2103".
type Prefix string

const (
	PrefixModule      Prefix = "m/"
	PrefixStudent     Prefix = "s/"
	PrefixTask        Prefix = "t/"
	PrefixName        Prefix = "n/"
	PrefixEmail       Prefix = "e/"
	PrefixDescription Prefix = "d/"
)

func (p Prefix) String() string { return string(p) }

// ArgumentMultimap holds the values found for each prefix, plus the text
// before the first prefix.
type ArgumentMultimap struct {
	preamble string
	values   map[Prefix][]string
}

// Preamble returns the trimmed text before the first prefix.
func (a ArgumentMultimap) Preamble() string {
	return a.preamble
}

// Value returns the last value given for prefix.
func (a ArgumentMultimap) Value(prefix Prefix) (string, bool) {
	values := a.values[prefix]
	if len(values) == 0 {
		return "", false
	}
	return values[len(values)-1], true
}

// AllValues returns every value given for prefix, in input order.
func (a ArgumentMultimap) AllValues(prefix Prefix) []string {
	return slices.Clone(a.values[prefix])
}

// Has reports whether prefix appeared at least once.
func (a ArgumentMultimap) Has(prefix Prefix) bool {
	return len(a.values[prefix]) > 0
}

type prefixPosition struct {
	prefix Prefix
	start  int
}

// Tokenize splits args on the given prefixes. A prefix only counts when it
// starts the string or follows whitespace, so "n/Tan e/x" has two prefixes
// while "n/Tan/e/x" has one. Values run up to the next prefix and are trimmed.
func Tokenize(args string, prefixes ...Prefix) ArgumentMultimap {
	positions := findPrefixPositions(args, prefixes)
	slices.SortFunc(positions, func(a, b prefixPosition) int {
		return a.start - b.start
	})

	result := ArgumentMultimap{values: make(map[Prefix][]string)}
	if len(positions) == 0 {
		result.preamble = strings.TrimSpace(args)
		return result
	}

	result.preamble = strings.TrimSpace(args[:positions[0].start])
	for i, pos := range positions {
		end := len(args)
		if i+1 < len(positions) {
			end = positions[i+1].start
		}
		value := strings.TrimSpace(args[pos.start+len(pos.prefix) : end])
		result.values[pos.prefix] = append(result.values[pos.prefix], value)
	}
	return result
}

func findPrefixPositions(args string, prefixes []Prefix) []prefixPosition {
	var positions []prefixPosition
	for _, prefix := range prefixes {
		from := 0
		for {
			idx := strings.Index(args[from:], string(prefix))
			if idx == -1 {
				break
			}
			start := from + idx
			if followsWhitespace(args, start) {
				positions = append(positions, prefixPosition{prefix: prefix, start: start})
			}
			from = start + len(prefix)
		}
	}
	return positions
}

func followsWhitespace(s string, pos int) bool {
	if pos == 0 {
		return true
	}
	r, _ := utf8.DecodeLastRuneInString(s[:pos])
	return unicode.IsSpace(r)
}
