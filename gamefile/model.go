package gamefile

import (
	"crc.gg/gamefile/canon"
	"crc.gg/gamefile/slug"
)

// Entry is a slugged list item: a challenge, restriction, glitch rule,
// character option or community challenge.
type Entry struct {
	Slug        string `yaml:"slug"`
	Label       string `yaml:"label"`
	Description string `yaml:"description,omitempty"`
}

// Category is a run category with optional sub-categories.
type Category struct {
	Entry    `yaml:",inline"`
	Children []Entry `yaml:"children,omitempty"`
}

// CharacterColumn controls the optional character column on run tables.
type CharacterColumn struct {
	Enabled bool   `yaml:"enabled"`
	Label   string `yaml:"label"`
}

// Notes is moderation context rendered into a hidden comment block.
type Notes struct {
	Submitter          string
	CreditRequested    bool
	ModerationInterest bool
	CharacterOptions   []string
	GlitchDocs         []string
	Feedback           string
}

// Empty reports whether there is nothing to tell reviewers.
func (n Notes) Empty() bool {
	return n.Submitter == "" &&
		!n.CreditRequested &&
		!n.ModerationInterest &&
		len(n.CharacterOptions) == 0 &&
		len(n.GlitchDocs) == 0 &&
		n.Feedback == ""
}

// Document is a fully canonicalized game record, ready to render.
type Document struct {
	GameID      string
	FirstLetter string
	Name        string
	Aliases     []string
	Status      string
	Platforms   []string

	Categories          []Category
	Challenges          []Entry
	CommunityChallenges []Entry
	Restrictions        []Entry

	// Glitches is empty with GlitchesRelevant false when the submitter said
	// glitch categories do not apply and the schema emits the flag.
	Glitches         []Entry
	GlitchesRelevant bool

	TimingMethod    string
	CharacterColumn CharacterColumn
	Characters      []Entry

	Body  string
	Notes Notes
}

// CoverPath is the conventional cover image location for the game.
func (d *Document) CoverPath() string {
	return "/assets/img/games/" + d.FirstLetter + "/" + d.GameID + ".jpg"
}

// entriesFromLabels slugs each label, drops labels with an empty slug and
// de-duplicates by slug.
func entriesFromLabels(labels []string, slugs slug.Table) []Entry {
	out := make([]Entry, 0, len(labels))
	for _, l := range labels {
		s := slugs.Slugify(l)
		if s == "" {
			continue
		}
		out = append(out, Entry{Slug: s, Label: l})
	}
	return canon.Dedupe(out, entrySlug)
}

func entrySlug(e Entry) string { return e.Slug }
