package gamefile

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// yamlSignificant are characters that can change how a plain YAML scalar is
// read, so any value containing one is double-quoted.
const yamlSignificant = ":[]{},#&*!|>'\"%@`\n\r\t"

var (
	plainKeywords = map[string]bool{
		"true": true, "false": true, "yes": true, "no": true, "on": true, "off": true,
		"y": true, "n": true, "null": true, "~": true,
		".inf": true, "-.inf": true, "+.inf": true, ".nan": true,
	}
	dateLike = regexp.MustCompile(`^\d{4}-\d{1,2}-\d{1,2}`)
)

// Quote renders s as a YAML scalar. Plain text is emitted unquoted; anything
// empty, padded, containing a YAML-significant or non-printable character, or
// that a YAML reader would resolve to a non-string is emitted as a JSON
// string, which is also a valid YAML double-quoted scalar. Invalid UTF-8 bytes
// come out as U+FFFD.
func Quote(s string) string {
	if !needsQuote(s) {
		return s
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return strconv.Quote(s)
	}
	return escapeUnprintable(strings.TrimSuffix(buf.String(), "\n"))
}

// escapeUnprintable escapes the runes encoding/json leaves raw that YAML
// rejects (DEL, C1 controls) or reads as line breaks (NEL).
func escapeUnprintable(quoted string) string {
	if !strings.ContainsFunc(quoted, isUnprintable) {
		return quoted
	}
	var b strings.Builder
	for _, r := range quoted {
		switch {
		case !isUnprintable(r):
			b.WriteRune(r)
		case r > 0xFFFF:
			fmt.Fprintf(&b, `\U%08X`, r)
		default:
			fmt.Fprintf(&b, `\u%04X`, r)
		}
	}
	return b.String()
}

func isUnprintable(r rune) bool {
	return r != ' ' && !unicode.IsPrint(r)
}

func needsQuote(s string) bool {
	if s == "" {
		return true
	}
	if !utf8.ValidString(s) || strings.ContainsFunc(s, isUnprintable) {
		return true
	}
	first, _ := utf8.DecodeRuneInString(s)
	last, _ := utf8.DecodeLastRuneInString(s)
	if unicode.IsSpace(first) || unicode.IsSpace(last) {
		return true
	}
	if strings.ContainsAny(s, yamlSignificant) {
		return true
	}
	switch first {
	case '-', '?', '~':
		return true
	}
	if plainKeywords[strings.ToLower(s)] {
		return true
	}
	return looksNumeric(s)
}

func looksNumeric(s string) bool {
	if _, err := strconv.ParseFloat(s, 64); err == nil {
		return true
	}
	if _, err := strconv.ParseInt(s, 0, 64); err == nil {
		return true
	}
	return dateLike.MatchString(s)
}
