package gamefile

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	frontMatterDelim = "---"
	notesOpen        = "<!-- REVIEWER NOTES"
	notesClose       = "-->"
	emptyList        = "[]"
)

// Render serializes doc under schema: front matter in the schema's section
// order, then the body, then the reviewer notes comment when there is
// anything to note.
//
// Empty sequences are always emitted as "key: []" so that consumers can rely
// on key presence. The rendered front matter is decoded once more before
// returning; output that does not parse is reported as a KindRender error.
func Render(doc *Document, schema Schema) ([]byte, error) {
	if doc == nil {
		return nil, newError(KindInternal, "GAME-INTERNAL-001", "nil document")
	}
	if len(schema.Sections) == 0 {
		return nil, newError(KindInternal, "GAME-INTERNAL-002", "schema has no sections")
	}

	fm := &writer{}
	for i, sec := range schema.Sections {
		if i > 0 {
			fm.blank()
		}
		if err := renderSection(fm, sec, doc, schema); err != nil {
			return nil, err
		}
	}

	var probe map[string]any
	if err := yaml.Unmarshal([]byte(fm.String()), &probe); err != nil {
		return nil, wrapError(KindRender, "GAME-RENDER-001", "rendered front matter does not parse", err)
	}

	w := &writer{}
	w.line(0, frontMatterDelim)
	w.b.WriteString(fm.String())
	w.line(0, frontMatterDelim)
	w.blank()
	if body := strings.TrimSpace(doc.Body); body != "" {
		w.line(0, body)
	}
	renderNotes(w, doc.Notes)
	return []byte(w.String()), nil
}

func renderSection(w *writer, sec Section, doc *Document, schema Schema) error {
	k := schema.Keys
	switch sec {
	case SectionIdentity:
		w.scalar(0, k.Layout, Quote(schema.Layout))
		w.scalar(0, k.GameID, Quote(doc.GameID))
		w.scalar(0, k.Reviewers, emptyList)
	case SectionName:
		w.scalar(0, k.Name, Quote(doc.Name))
		w.list(k.Aliases, doc.Aliases)
	case SectionCover:
		w.scalar(0, k.Cover, Quote(doc.CoverPath()))
		w.scalar(0, k.CoverPosition, Quote(schema.CoverPosition))
	case SectionStatus:
		w.scalar(0, k.Status, Quote(doc.Status))
	case SectionGenres:
		w.scalar(0, k.Genres, emptyList)
	case SectionPlatforms:
		w.list(k.Platforms, doc.Platforms)
	case SectionTabs:
		w.line(0, k.Tabs+":")
		for _, t := range schema.Tabs {
			w.scalar(1, t.Name, strconv.FormatBool(t.Enabled))
		}
	case SectionCategories:
		w.categories(k.Categories, doc.Categories)
	case SectionChallenges:
		w.entries(k.Challenges, doc.Challenges, false)
		slugs := make([]string, 0, len(doc.Challenges))
		for _, c := range doc.Challenges {
			slugs = append(slugs, c.Slug)
		}
		w.list(k.ChallengeSlugs, slugs)
	case SectionCommunity:
		w.entries(k.CommunityChallenges, doc.CommunityChallenges, true)
	case SectionRestrictions:
		w.entries(k.Restrictions, doc.Restrictions, false)
	case SectionGlitches:
		if len(doc.Glitches) == 0 && !doc.GlitchesRelevant {
			w.scalar(0, k.GlitchesRelevant, "false")
			break
		}
		w.entries(k.Glitches, doc.Glitches, false)
	case SectionTiming:
		w.scalar(0, k.TimingMethod, Quote(doc.TimingMethod))
		w.scalar(0, k.RTATiming, strconv.FormatBool(isRTA(doc.TimingMethod)))
	case SectionCharacters:
		w.line(0, k.CharacterColumn+":")
		w.scalar(1, "enabled", strconv.FormatBool(doc.CharacterColumn.Enabled))
		w.scalar(1, "label", Quote(doc.CharacterColumn.Label))
		if doc.CharacterColumn.Enabled && len(doc.Characters) > 0 {
			w.entries(k.Characters, doc.Characters, false)
		}
	default:
		return newError(KindInternal, "GAME-INTERNAL-003", fmt.Sprintf("unknown section %q", sec))
	}
	return nil
}

func isRTA(timing string) bool {
	return strings.Contains(strings.ToUpper(timing), "RTA")
}

func renderNotes(w *writer, n Notes) {
	if n.Empty() {
		return
	}
	var groups [][]string
	var head []string
	if n.Submitter != "" {
		head = append(head, "Submitted by: "+n.Submitter)
	}
	if n.CreditRequested {
		head = append(head, "Credit requested: Yes")
	}
	if n.ModerationInterest {
		head = append(head, "Moderation interest: Yes")
	}
	groups = append(groups, head)
	groups = append(groups, bulleted("Character options:", n.CharacterOptions))
	groups = append(groups, bulleted("Glitch documentation:", n.GlitchDocs))
	if fb := strings.TrimSpace(n.Feedback); fb != "" {
		groups = append(groups, []string{"Submitter feedback:", fb})
	}

	w.blank()
	w.line(0, notesOpen)
	for _, g := range groups {
		if len(g) == 0 {
			continue
		}
		w.blank()
		for _, l := range g {
			w.line(0, escapeComment(l))
		}
	}
	w.blank()
	w.line(0, notesClose)
}

func bulleted(title string, items []string) []string {
	if len(items) == 0 {
		return nil
	}
	out := []string{title}
	for _, it := range items {
		out = append(out, "  - "+it)
	}
	return out
}

// escapeComment keeps free text from closing the HTML comment early.
func escapeComment(s string) string {
	return strings.ReplaceAll(s, "-->", "- ->")
}

type writer struct {
	b strings.Builder
}

func (w *writer) String() string { return w.b.String() }

func (w *writer) line(indent int, s string) {
	for i := 0; i < indent; i++ {
		w.b.WriteString("  ")
	}
	w.b.WriteString(s)
	w.b.WriteByte('\n')
}

func (w *writer) blank() { w.b.WriteByte('\n') }

func (w *writer) scalar(indent int, key, value string) {
	w.line(indent, key+": "+value)
}

func (w *writer) list(key string, items []string) {
	if len(items) == 0 {
		w.scalar(0, key, emptyList)
		return
	}
	w.line(0, key+":")
	for _, it := range items {
		w.line(1, "- "+Quote(it))
	}
}

func (w *writer) entries(key string, items []Entry, withDescription bool) {
	if len(items) == 0 {
		w.scalar(0, key, emptyList)
		return
	}
	w.line(0, key+":")
	for _, e := range items {
		w.entry(1, e, withDescription)
	}
}

func (w *writer) entry(indent int, e Entry, withDescription bool) {
	w.line(indent, "- slug: "+Quote(e.Slug))
	w.scalar(indent+1, "label", Quote(e.Label))
	if withDescription {
		w.scalar(indent+1, "description", Quote(e.Description))
	}
}

func (w *writer) categories(key string, cats []Category) {
	if len(cats) == 0 {
		w.scalar(0, key, emptyList)
		return
	}
	w.line(0, key+":")
	for _, c := range cats {
		w.entry(1, c.Entry, false)
		if len(c.Children) == 0 {
			continue
		}
		w.line(2, "children:")
		for _, ch := range c.Children {
			w.entry(3, ch, false)
		}
	}
}
