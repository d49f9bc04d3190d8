// Package slug derives URL-safe identifiers from display labels.
//
// Slugs are deterministic: the same label always yields the same slug.
// Different labels may collide; callers de-duplicate.
package slug

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Table is an immutable, case-insensitive override table for labels whose
// slug cannot be derived mechanically (e.g. "100%" → "100-percent").
type Table struct {
	overrides map[string]string
}

// DefaultOverrides are the irregular run-type tokens seen on submissions.
var DefaultOverrides = map[string]string{
	"100%": "100-percent",
	"any%": "any-percent",
	"low%": "low-percent",
}

// Default is the table used by Slugify.
var Default = NewTable(DefaultOverrides)

// NewTable copies overrides into a new Table. Keys are matched after
// trimming and lower-casing; values are used verbatim and should themselves
// be valid slugs.
func NewTable(overrides map[string]string) Table {
	m := make(map[string]string, len(overrides))
	for k, v := range overrides {
		m[strings.ToLower(strings.TrimSpace(k))] = v
	}
	return Table{overrides: m}
}

// Override reports the override for label, if any.
func (t Table) Override(label string) (string, bool) {
	v, ok := t.overrides[strings.ToLower(strings.TrimSpace(label))]
	return v, ok
}

// Slugify maps label to its slug. An empty result means the label carries no
// usable characters and the entry should be dropped.
func (t Table) Slugify(label string) string {
	s := strings.TrimSpace(label)
	if s == "" {
		return ""
	}
	if v, ok := t.Override(s); ok {
		return v
	}

	s = strings.ToLower(s)
	s = quoteStripper.Replace(s)
	s = strings.ReplaceAll(s, "%", "-percent")
	if folded, _, err := transform.String(accentFolder(), s); err == nil {
		s = folded
	}

	var b strings.Builder
	b.Grow(len(s))
	pendingHyphen := false
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
			continue
		}
		pendingHyphen = true
	}
	return b.String()
}

// Slugify maps label to its slug using the Default table.
func Slugify(label string) string { return Default.Slugify(label) }

var quoteStripper = strings.NewReplacer(
	"'", "",
	"‘", "",
	"’", "",
	"ʼ", "",
	"`", "",
	"“", "",
	"”", "",
	`"`, "",
)

// transform.Transformer values carry state, so one is built per call.
func accentFolder() transform.Transformer {
	return transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
}
