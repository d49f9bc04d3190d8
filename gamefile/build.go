package gamefile

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"crc.gg/gamefile/canon"
	"crc.gg/gamefile/textsplit"
)

// idPattern matches kebab-case identifiers: lowercase letters, digits and
// single inner hyphens.
var idPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// IsID reports whether s is a valid kebab-case identifier.
func IsID(s string) bool { return idPattern.MatchString(s) }

// Input is one game submission after boundary conversion: flags are already
// booleans and the details payload is decoded.
type Input struct {
	Name string
	// ID is derived from Name when empty.
	ID string
	// FirstLetter selects the cover directory; defaults to the first
	// character of ID.
	FirstLetter string

	// Categories is newline-delimited; "Parent - Child" lines nest.
	Categories string
	// Challenges is delimited by newlines, commas, semicolons or pipes.
	Challenges string

	CharacterEnabled bool
	CharacterLabel   string

	Submitter       string
	CreditRequested bool

	Details Details
}

type inputRule struct {
	id    string
	apply func(*Input) error
}

func inputRulesV1() []inputRule {
	return []inputRule{
		{
			id: "GAME-IN-001",
			apply: func(in *Input) error {
				if in.Name == "" {
					return newError(KindInput, "GAME-IN-001", "game name is empty")
				}
				return nil
			},
		},
		{
			id: "GAME-IN-002",
			apply: func(in *Input) error {
				if in.ID == "" {
					return newError(KindInput, "GAME-IN-002", "game id is empty and cannot be derived from the name")
				}
				return nil
			},
		},
		{
			id: "GAME-IN-005",
			apply: func(in *Input) error {
				if !IsID(in.ID) {
					return newError(KindInput, "GAME-IN-005", "game id must be lowercase kebab-case: "+in.ID)
				}
				return nil
			},
		},
		{
			id: "GAME-IN-003",
			apply: func(in *Input) error {
				if len(textsplit.Lines(in.Categories)) == 0 {
					return newError(KindInput, "GAME-IN-003", "categories are empty")
				}
				return nil
			},
		},
	}
}

// Normalize trims the scalar fields, derives the id and first letter, and
// checks the required fields. It returns the first violated rule.
func (in Input) Normalize(schema Schema) (Input, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.ID = strings.TrimSpace(in.ID)
	in.FirstLetter = strings.TrimSpace(in.FirstLetter)
	in.CharacterLabel = strings.TrimSpace(in.CharacterLabel)
	in.Submitter = strings.TrimSpace(in.Submitter)
	if in.ID == "" {
		in.ID = schema.Slugs.Slugify(in.Name)
	}
	if in.FirstLetter == "" && in.ID != "" {
		r, _ := utf8.DecodeRuneInString(in.ID)
		in.FirstLetter = string(r)
	}
	if in.CharacterLabel == "" {
		in.CharacterLabel = schema.DefaultCharacterLabel
	}
	if in.Details == nil {
		in.Details = Details{}
	}

	for _, r := range inputRulesV1() {
		if r.apply == nil {
			return in, newError(KindInternal, "GAME-INTERNAL-010", "nil input rule")
		}
		if err := r.apply(&in); err != nil {
			return in, err
		}
	}
	return in, nil
}

// Build canonicalizes a submission into a Document under schema.
func Build(in Input, schema Schema) (*Document, error) {
	in, err := in.Normalize(schema)
	if err != nil {
		return nil, err
	}
	d := in.Details

	submitter := in.Submitter
	if h := strings.TrimSpace(d.String("discord_handle", submitter)); h != "" {
		submitter = h
	}
	status := "Pending review"
	if submitter != "" {
		status = "Pending review - submitted by " + submitter
	}

	timing := strings.TrimSpace(d.String("timing_primary", ""))
	if timing == "" {
		timing = schema.DefaultTiming
	}

	glitches := schema.Glitch.Normalize(d.String("glitch_category_structure", ""))
	relevant := true
	if len(glitches) == 0 {
		switch schema.EmptyGlitchPolicy {
		case EmptyGlitchRelevantFlag:
			relevant = false
		default:
			glitches = DefaultGlitchSet()
		}
	}

	characterOptions := canon.DedupeStrings(textsplit.Lines(d.String("character_options", "")))

	body := strings.TrimSpace(textsplit.NormalizeNewlines(d.String("description", "")))
	if body == "" && schema.DefaultBody != nil {
		body = schema.DefaultBody(in.Name)
	}

	doc := &Document{
		GameID:      in.ID,
		FirstLetter: in.FirstLetter,
		Name:        in.Name,
		Aliases:     canon.DedupeStrings(textsplit.Lines(d.String("name_aliases", ""))),
		Status:      status,
		Platforms:   canon.DedupeStrings(textsplit.Lines(d.String("platforms", ""))),

		Categories:          ParseHierarchy(in.Categories).Categories(schema.Slugs),
		Challenges:          entriesFromLabels(textsplit.Delimited(in.Challenges), schema.Slugs),
		CommunityChallenges: ParseCommunityChallenges(d.String("community_challenges", ""), schema.Slugs),
		Restrictions:        entriesFromLabels(textsplit.Lines(d.String("restrictions", "")), schema.Slugs),

		Glitches:         glitches,
		GlitchesRelevant: relevant,

		TimingMethod: timing,
		CharacterColumn: CharacterColumn{
			Enabled: in.CharacterEnabled,
			Label:   in.CharacterLabel,
		},
		Body: body,
		Notes: Notes{
			Submitter:          submitter,
			CreditRequested:    in.CreditRequested || d.Bool("wants_credit"),
			ModerationInterest: d.Bool("wants_moderate"),
			CharacterOptions:   characterOptions,
			GlitchDocs:         textsplit.Lines(d.String("glitches_doc", "")),
			Feedback:           strings.TrimSpace(textsplit.NormalizeNewlines(d.String("feedback", ""))),
		},
	}
	if in.CharacterEnabled {
		doc.Characters = entriesFromLabels(characterOptions, schema.Slugs)
	}
	return doc, nil
}

// Generate builds and renders a submission in one step.
func Generate(in Input, schema Schema) ([]byte, *Document, error) {
	doc, err := Build(in, schema)
	if err != nil {
		return nil, nil, err
	}
	out, err := Render(doc, schema)
	if err != nil {
		return nil, doc, err
	}
	return out, doc, nil
}
