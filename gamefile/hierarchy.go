package gamefile

import (
	"strings"

	"crc.gg/gamefile/canon"
	"crc.gg/gamefile/slug"
	"crc.gg/gamefile/textsplit"
)

// hierarchySep separates a parent category from its child on one line.
const hierarchySep = " - "

// Hierarchy is the parsed form of a "Parent - Child" category list.
type Hierarchy struct {
	// Parents holds top-level labels in first-seen order.
	Parents []string
	// Children maps a parent label to its child labels in first-seen order.
	// Parents without children have no entry.
	Children map[string][]string
}

// ParseHierarchy reads one category per line. A line containing " - " is
// split on the first occurrence into parent and child; any further " - "
// stays part of the child label. Labels are de-duplicated by exact,
// case-sensitive equality.
func ParseHierarchy(raw string) Hierarchy {
	h := Hierarchy{Children: map[string][]string{}}
	for _, line := range textsplit.Lines(raw) {
		parent, child, found := cutHierarchy(line)
		if !found {
			h.Parents = append(h.Parents, line)
			continue
		}
		if parent == "" {
			continue
		}
		h.Parents = append(h.Parents, parent)
		if child != "" {
			h.Children[parent] = append(h.Children[parent], child)
		}
	}
	h.Parents = canon.DedupeStrings(h.Parents)
	for p, kids := range h.Children {
		h.Children[p] = canon.DedupeStrings(kids)
	}
	return h
}

// Categories slugs the hierarchy. Parents and children whose slug is empty
// are dropped; slug collisions keep the first label.
func (h Hierarchy) Categories(slugs slug.Table) []Category {
	out := make([]Category, 0, len(h.Parents))
	for _, p := range h.Parents {
		s := slugs.Slugify(p)
		if s == "" {
			continue
		}
		c := Category{Entry: Entry{Slug: s, Label: p}}
		if kids := entriesFromLabels(h.Children[p], slugs); len(kids) > 0 {
			c.Children = kids
		}
		out = append(out, c)
	}
	return canon.Dedupe(out, func(c Category) string { return c.Slug })
}

// cutHierarchy splits line on the first " - ". Lines arrive trimmed, so a
// leading "- child" has an empty parent and a trailing "Parent -" an empty
// child.
func cutHierarchy(line string) (parent, child string, found bool) {
	if line == "-" || strings.HasPrefix(line, "- ") {
		return "", strings.TrimSpace(line[1:]), true
	}
	if p, c, ok := strings.Cut(line, hierarchySep); ok {
		return strings.TrimSpace(p), strings.TrimSpace(c), true
	}
	if strings.HasSuffix(line, " -") {
		return strings.TrimSpace(strings.TrimSuffix(line, " -")), "", true
	}
	return "", "", false
}
