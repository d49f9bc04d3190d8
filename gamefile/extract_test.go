package gamefile

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func richInput() Input {
	in := exampleInput()
	in.Categories = "Any%\nMovement - No Dash\nMovement - No Jump - Ever\nTrue Ending"
	in.Challenges = "Pacifist; No Damage | 1942"
	in.CharacterEnabled = true
	in.Submitter = "someone"
	in.Details = LoadDetails(`{
		"name_aliases": "Ex: The Game\n#1 Game",
		"platforms": "pc",
		"restrictions": "No Items",
		"glitch_category_structure": "NMG, Wrong Warp",
		"character_options": "Mario\nLuigi",
		"community_challenges": "Blind: eyes closed\nYes - literally the word yes"
	}`)
	return in
}

func TestExtract_RoundTrip(t *testing.T) {
	schema := CurrentSchema()
	out, doc, err := Generate(richInput(), schema)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	rec, err := Extract(out, schema)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}

	opts := cmpopts.EquateEmpty()
	checks := []struct {
		name      string
		want, got any
	}{
		{"game_id", doc.GameID, rec.GameID},
		{"name", doc.Name, rec.Name},
		{"aliases", doc.Aliases, rec.Aliases},
		{"cover", doc.CoverPath(), rec.Cover},
		{"status", doc.Status, rec.Status},
		{"platforms", doc.Platforms, rec.Platforms},
		{"categories", doc.Categories, rec.Categories},
		{"challenges", doc.Challenges, rec.Challenges},
		{"community", doc.CommunityChallenges, rec.CommunityChallenges},
		{"restrictions", doc.Restrictions, rec.Restrictions},
		{"glitches", doc.Glitches, rec.Glitches},
		{"timing", doc.TimingMethod, rec.TimingMethod},
		{"character column", doc.CharacterColumn, rec.CharacterColumn},
		{"characters", doc.Characters, rec.Characters},
		{"body", doc.Body, rec.Body},
	}
	for _, c := range checks {
		if diff := cmp.Diff(c.want, c.got, opts); diff != "" {
			t.Fatalf("%s (-rendered +extracted):\n%s", c.name, diff)
		}
	}
	if diff := cmp.Diff([]string{"pacifist", "no-damage", "1942"}, rec.ChallengeSlugs); diff != "" {
		t.Fatalf("challenge slugs (-want +got):\n%s", diff)
	}
	if !rec.GlitchesRelevant || rec.RTATiming != true || !rec.HasNotes {
		t.Fatalf("flags: relevant=%v rta=%v notes=%v", rec.GlitchesRelevant, rec.RTATiming, rec.HasNotes)
	}
	if !rec.Tabs["overview"] || rec.Tabs["extra_1"] {
		t.Fatalf("tabs = %v", rec.Tabs)
	}
}

func TestExtract_NoFrontMatter(t *testing.T) {
	_, err := Extract([]byte("just a body\n"), CurrentSchema())
	if !IsKind(err, KindCheck) || RuleID(err) != "GAME-CHK-001" {
		t.Fatalf("expected GAME-CHK-001, got %v", err)
	}
}

func TestCheck_GeneratedFileIsClean(t *testing.T) {
	schema := CurrentSchema()
	for _, in := range []Input{exampleInput(), richInput()} {
		out, _, err := Generate(in, schema)
		if err != nil {
			t.Fatalf("Generate: %v", err)
		}
		rec, err := Extract(out, schema)
		if err != nil {
			t.Fatalf("Extract: %v", err)
		}
		if errs := Check(rec, schema); len(errs) != 0 {
			t.Fatalf("unexpected violations: %v", errs)
		}
	}
}

func TestCheck_Violations(t *testing.T) {
	src := strings.Join([]string{
		"---",
		"layout: game",
		"game_id: Bad_ID",
		"name: \"\"",
		"categories_data:",
		"  - slug: any-percent",
		"    label: \"Any%\"",
		"  - slug: any-percent",
		"    label: \"ANY%\"",
		"challenges_data:",
		"  - slug: Not A Slug",
		"    label: x",
		"challenges: []",
		"character_column:",
		"  enabled: false",
		"  label: Character",
		"characters_data:",
		"  - slug: mario",
		"    label: Mario",
		"---",
		"",
	}, "\n")
	schema := CurrentSchema()
	rec, err := Extract([]byte(src), schema)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	var got []string
	for _, e := range Check(rec, schema) {
		got = append(got, RuleID(e))
	}
	want := []string{"GAME-CHK-010", "GAME-CHK-011", "GAME-CHK-012", "GAME-CHK-013", "GAME-CHK-014", "GAME-CHK-015", "GAME-CHK-016"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("rule ids (-want +got):\n%s", diff)
	}
}

func TestGenerate_UnprintableLabelsStillRender(t *testing.T) {
	labels := []string{"Any\x07Run", "Bad\xffByte", "Line\u2028Sep", "Zero\x00Char", "Next\u0085Line"}
	schema := CurrentSchema()
	for _, label := range labels {
		in := exampleInput()
		in.Categories = label
		out, doc, err := Generate(in, schema)
		if err != nil {
			t.Fatalf("Generate(%q): %v", label, err)
		}
		rec, err := Extract(out, schema)
		if err != nil {
			t.Fatalf("Extract(%q): %v", label, err)
		}
		if len(doc.Categories) != 1 || len(rec.Categories) != 1 {
			t.Fatalf("%q: categories rendered=%d extracted=%d", label, len(doc.Categories), len(rec.Categories))
		}
		if got, want := rec.Categories[0].Label, strings.ToValidUTF8(label, "\uFFFD"); got != want {
			t.Fatalf("label = %q, want %q", got, want)
		}
		if got := rec.Categories[0].Slug; got != doc.Categories[0].Slug || !IsID(got) {
			t.Fatalf("%q: slug rendered=%q extracted=%q", label, doc.Categories[0].Slug, got)
		}
	}
}
