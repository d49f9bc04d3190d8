// Package textsplit splits loosely delimited, human-typed form fields into
// ordered item lists.
package textsplit

import "strings"

// Mode selects which characters separate items.
type Mode int

const (
	// ModeLines splits on line breaks only. Free-text fields use it so that
	// embedded commas survive.
	ModeLines Mode = iota
	// ModeDelimited additionally treats ';', ',' and '|' as separators.
	ModeDelimited
)

var delimiterReplacer = strings.NewReplacer(";", "\n", ",", "\n", "|", "\n")

// NormalizeNewlines turns literal two-character "\n" escapes into real
// newlines and folds CRLF and bare CR line endings to LF.
func NormalizeNewlines(raw string) string {
	s := strings.ReplaceAll(raw, `\n`, "\n")
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

// Tokenize returns the trimmed, non-empty items of raw in input order.
// Empty input yields a nil slice.
func Tokenize(raw string, mode Mode) []string {
	if raw == "" {
		return nil
	}
	s := NormalizeNewlines(raw)
	if mode == ModeDelimited {
		s = delimiterReplacer.Replace(s)
	}

	var out []string
	for _, line := range strings.Split(s, "\n") {
		if item := strings.TrimSpace(line); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// Lines is shorthand for Tokenize(raw, ModeLines).
func Lines(raw string) []string { return Tokenize(raw, ModeLines) }

// Delimited is shorthand for Tokenize(raw, ModeDelimited).
func Delimited(raw string) []string { return Tokenize(raw, ModeDelimited) }
