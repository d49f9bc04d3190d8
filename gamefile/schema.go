package gamefile

import "crc.gg/gamefile/slug"

// EmptyGlitchPolicy decides what a schema emits when no glitch category
// survives normalization.
type EmptyGlitchPolicy int

const (
	// EmptyGlitchDefaultSet substitutes Unrestricted / NMG / Glitchless.
	EmptyGlitchDefaultSet EmptyGlitchPolicy = iota
	// EmptyGlitchRelevantFlag omits the glitch list and emits a false
	// "relevant" flag instead.
	EmptyGlitchRelevantFlag
)

// Section names one block of front matter. A schema renders its sections in
// the order it lists them.
type Section string

const (
	SectionIdentity     Section = "identity"
	SectionName         Section = "name"
	SectionCover        Section = "cover"
	SectionStatus       Section = "status"
	SectionGenres       Section = "genres"
	SectionPlatforms    Section = "platforms"
	SectionTabs         Section = "tabs"
	SectionCategories   Section = "categories"
	SectionChallenges   Section = "challenges"
	SectionCommunity    Section = "community"
	SectionRestrictions Section = "restrictions"
	SectionGlitches     Section = "glitches"
	SectionTiming       Section = "timing"
	SectionCharacters   Section = "characters"
)

// Keys are the canonical front matter key names. Renderers downstream depend
// on the exact spelling.
type Keys struct {
	Layout              string
	GameID              string
	Reviewers           string
	Name                string
	Aliases             string
	Cover               string
	CoverPosition       string
	Status              string
	Genres              string
	Platforms           string
	Tabs                string
	Categories          string
	Challenges          string
	ChallengeSlugs      string
	CommunityChallenges string
	Restrictions        string
	Glitches            string
	GlitchesRelevant    string
	TimingMethod        string
	RTATiming           string
	CharacterColumn     string
	Characters          string
}

// Tab is one entry of the default tab map.
type Tab struct {
	Name    string
	Enabled bool
}

// Schema is one version of the game file layout: key names, section order
// and defaulting policy, plus the lookup tables the pipeline uses.
type Schema struct {
	Version               string
	Layout                string
	Keys                  Keys
	Sections              []Section
	Tabs                  []Tab
	EmptyGlitchPolicy     EmptyGlitchPolicy
	DefaultTiming         string
	DefaultCharacterLabel string
	CoverPosition         string

	Slugs  slug.Table
	Glitch GlitchTable
	// DefaultBody produces the body text when the submission has no
	// description.
	DefaultBody func(name string) string
}

// CurrentSchemaVersion identifies the layout produced by CurrentSchema.
const CurrentSchemaVersion = "8"

// CurrentSchema returns a fresh copy of the current layout.
//
// Version 7 emitted glitches_relevant: false when no glitch category
// survived; version 8 substitutes the default three-entry set so that every
// game offers the standard glitch filters.
func CurrentSchema() Schema {
	return Schema{
		Version: CurrentSchemaVersion,
		Layout:  "game",
		Keys: Keys{
			Layout:              "layout",
			GameID:              "game_id",
			Reviewers:           "reviewers",
			Name:                "name",
			Aliases:             "name_aliases",
			Cover:               "cover",
			CoverPosition:       "cover_position",
			Status:              "status",
			Genres:              "genres",
			Platforms:           "platforms",
			Tabs:                "tabs",
			Categories:          "categories_data",
			Challenges:          "challenges_data",
			ChallengeSlugs:      "challenges",
			CommunityChallenges: "community_challenges",
			Restrictions:        "restrictions_data",
			Glitches:            "glitches_data",
			GlitchesRelevant:    "glitches_relevant",
			TimingMethod:        "timing_method",
			RTATiming:           "rta_timing",
			CharacterColumn:     "character_column",
			Characters:          "characters_data",
		},
		Sections: []Section{
			SectionIdentity,
			SectionName,
			SectionCover,
			SectionStatus,
			SectionGenres,
			SectionPlatforms,
			SectionTabs,
			SectionCategories,
			SectionChallenges,
			SectionCommunity,
			SectionRestrictions,
			SectionGlitches,
			SectionTiming,
			SectionCharacters,
		},
		Tabs: []Tab{
			{Name: "overview", Enabled: true},
			{Name: "runs", Enabled: true},
			{Name: "history", Enabled: true},
			{Name: "resources", Enabled: true},
			{Name: "forum", Enabled: true},
			{Name: "extra_1", Enabled: false},
			{Name: "extra_2", Enabled: false},
		},
		EmptyGlitchPolicy:     EmptyGlitchDefaultSet,
		DefaultTiming:         "RTA (Real Time Attack)",
		DefaultCharacterLabel: "Character",
		CoverPosition:         "center",
		Slugs:                 slug.Default,
		Glitch:                DefaultGlitchTable(),
		DefaultBody:           defaultBody,
	}
}

func defaultBody(name string) string { return name + " challenge runs." }
