package gamefile

import (
	"strings"

	"crc.gg/gamefile/canon"
	"crc.gg/gamefile/slug"
	"crc.gg/gamefile/textsplit"
)

// GlitchTable is immutable configuration for normalizing the free-text glitch
// category answer.
type GlitchTable struct {
	skip     []string
	synonyms map[string]Entry
	slugs    slug.Table
}

// DefaultGlitchSkipPatterns mark placeholder or negative answers. Matching is
// by substring of the lower-cased item.
var DefaultGlitchSkipPatterns = []string{
	"doesn't have",
	"does not have",
	"no meaningful",
	"not sure",
	"n/a",
	"none",
	"not applicable",
	"not relevant",
	"at this time",
	"no glitches",
	"no glitch",
}

var (
	glitchUnrestricted = Entry{Slug: "unrestricted", Label: "Unrestricted"}
	glitchNMG          = Entry{Slug: "nmg", Label: "No Major Glitches (NMG)"}
	glitchGlitchless   = Entry{Slug: "glitchless", Label: "Glitchless"}
)

// DefaultGlitchSynonyms maps lower-cased form answers to canonical rules.
var DefaultGlitchSynonyms = map[string]Entry{
	"unrestricted (all glitches allowed)": glitchUnrestricted,
	"unrestricted":                        glitchUnrestricted,
	"all glitches allowed":                glitchUnrestricted,
	"no major glitches (nmg)":             glitchNMG,
	"no major glitches":                   glitchNMG,
	"nmg":                                 glitchNMG,
	"glitchless":                          glitchGlitchless,
}

// DefaultGlitchSet is substituted when no glitch categories survive and the
// schema asks for defaults.
func DefaultGlitchSet() []Entry {
	return []Entry{glitchUnrestricted, glitchNMG, glitchGlitchless}
}

// NewGlitchTable copies skip patterns and synonyms into a new table. Synonym
// keys are matched after trimming and lower-casing.
func NewGlitchTable(skip []string, synonyms map[string]Entry, slugs slug.Table) GlitchTable {
	t := GlitchTable{
		skip:     make([]string, 0, len(skip)),
		synonyms: make(map[string]Entry, len(synonyms)),
		slugs:    slugs,
	}
	for _, p := range skip {
		if p = strings.ToLower(strings.TrimSpace(p)); p != "" {
			t.skip = append(t.skip, p)
		}
	}
	for k, v := range synonyms {
		t.synonyms[strings.ToLower(strings.TrimSpace(k))] = v
	}
	return t
}

// DefaultGlitchTable returns the table used by the current schema.
func DefaultGlitchTable() GlitchTable {
	return NewGlitchTable(DefaultGlitchSkipPatterns, DefaultGlitchSynonyms, slug.Default)
}

// Normalize splits raw on newlines, commas, semicolons and pipes, drops
// placeholder answers, maps known synonyms to their canonical rule and slugs
// everything else. The result is de-duplicated by slug and may be empty.
func (t GlitchTable) Normalize(raw string) []Entry {
	var out []Entry
	for _, item := range textsplit.Delimited(raw) {
		lower := strings.ToLower(item)
		if t.skipped(lower) {
			continue
		}
		if e, ok := t.synonyms[lower]; ok {
			out = append(out, e)
			continue
		}
		s := t.slugs.Slugify(item)
		if s == "" {
			continue
		}
		out = append(out, Entry{Slug: s, Label: item})
	}
	return canon.Dedupe(out, entrySlug)
}

func (t GlitchTable) skipped(lower string) bool {
	for _, p := range t.skip {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return false
}
