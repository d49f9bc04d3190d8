package gamefile

import (
	"strings"

	"crc.gg/gamefile/canon"
	"crc.gg/gamefile/slug"
	"crc.gg/gamefile/textsplit"
)

// ParseCommunityChallenges reads one challenge per line as "Name: description",
// "Name - description" or a bare name. ": " takes precedence; " - " only
// counts when the line does not itself start with a hyphen.
func ParseCommunityChallenges(raw string, slugs slug.Table) []Entry {
	var out []Entry
	for _, line := range textsplit.Lines(raw) {
		name, desc := splitChallenge(line)
		if name == "" {
			continue
		}
		s := slugs.Slugify(name)
		if s == "" {
			continue
		}
		out = append(out, Entry{Slug: s, Label: name, Description: desc})
	}
	return canon.Dedupe(out, entrySlug)
}

func splitChallenge(line string) (name, desc string) {
	if n, d, ok := strings.Cut(line, ": "); ok {
		return strings.TrimSpace(n), strings.TrimSpace(d)
	}
	if !strings.HasPrefix(line, "-") {
		if n, d, ok := strings.Cut(line, hierarchySep); ok {
			return strings.TrimSpace(n), strings.TrimSpace(d)
		}
	}
	return strings.TrimSpace(line), ""
}
