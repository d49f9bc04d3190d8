package gamefile

import (
	"bytes"
	"strings"

	"github.com/adrg/frontmatter"
	"gopkg.in/yaml.v3"
)

// Record is a game file read back from its rendered form.
type Record struct {
	// Present holds every top-level front matter key found.
	Present map[string]bool

	GameID       string
	Name         string
	Aliases      []string
	Cover        string
	Status       string
	Platforms    []string
	Tabs         map[string]bool
	TimingMethod string
	RTATiming    bool

	Categories          []Category
	Challenges          []Entry
	ChallengeSlugs      []string
	CommunityChallenges []Entry
	Restrictions        []Entry
	Glitches            []Entry
	// GlitchesRelevant is true unless the file says otherwise.
	GlitchesRelevant bool

	CharacterColumn CharacterColumn
	Characters      []Entry

	Body     string
	HasNotes bool
}

func frontMatterFormat() *frontmatter.Format {
	return frontmatter.NewFormat(frontMatterDelim, frontMatterDelim, yaml.Unmarshal)
}

// Extract reads the front matter of a game file using schema's key names.
// Keys that are absent leave the corresponding field at its zero value; use
// Check to enforce presence.
func Extract(data []byte, schema Schema) (*Record, error) {
	fields := map[string]yaml.Node{}
	rest, err := frontmatter.MustParse(bytes.NewReader(data), &fields, frontMatterFormat())
	if err != nil {
		return nil, wrapError(KindCheck, "GAME-CHK-001", "missing or malformed front matter", err)
	}

	rec := &Record{Present: make(map[string]bool, len(fields)), GlitchesRelevant: true}
	for k := range fields {
		rec.Present[k] = true
	}

	k := schema.Keys
	targets := []struct {
		key string
		out any
	}{
		{k.GameID, &rec.GameID},
		{k.Name, &rec.Name},
		{k.Aliases, &rec.Aliases},
		{k.Cover, &rec.Cover},
		{k.Status, &rec.Status},
		{k.Platforms, &rec.Platforms},
		{k.Tabs, &rec.Tabs},
		{k.Categories, &rec.Categories},
		{k.Challenges, &rec.Challenges},
		{k.ChallengeSlugs, &rec.ChallengeSlugs},
		{k.CommunityChallenges, &rec.CommunityChallenges},
		{k.Restrictions, &rec.Restrictions},
		{k.Glitches, &rec.Glitches},
		{k.GlitchesRelevant, &rec.GlitchesRelevant},
		{k.TimingMethod, &rec.TimingMethod},
		{k.RTATiming, &rec.RTATiming},
		{k.CharacterColumn, &rec.CharacterColumn},
		{k.Characters, &rec.Characters},
	}
	for _, t := range targets {
		n, ok := fields[t.key]
		if !ok {
			continue
		}
		if err := n.Decode(t.out); err != nil {
			return nil, wrapError(KindCheck, "GAME-CHK-002", "cannot decode key "+t.key, err)
		}
	}

	body := string(rest)
	if i := strings.Index(body, notesOpen); i >= 0 {
		rec.HasNotes = true
		body = body[:i]
	}
	rec.Body = strings.TrimSpace(body)
	return rec, nil
}
