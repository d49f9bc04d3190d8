package gamefile

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"crc.gg/gamefile/slug"
)

func TestGlitchTable_Normalize(t *testing.T) {
	got := DefaultGlitchTable().Normalize("Unrestricted, NMG, Does not have glitches, Sequence Breaks")
	want := []Entry{
		{Slug: "unrestricted", Label: "Unrestricted"},
		{Slug: "nmg", Label: "No Major Glitches (NMG)"},
		{Slug: "sequence-breaks", Label: "Sequence Breaks"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Normalize (-want +got):\n%s", diff)
	}
}

func TestGlitchTable_SynonymsCollapse(t *testing.T) {
	got := DefaultGlitchTable().Normalize("No Major Glitches (NMG)\nnmg|NO MAJOR GLITCHES;Glitchless")
	want := []Entry{
		{Slug: "nmg", Label: "No Major Glitches (NMG)"},
		{Slug: "glitchless", Label: "Glitchless"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Normalize (-want +got):\n%s", diff)
	}
}

func TestGlitchTable_PlaceholdersOnly(t *testing.T) {
	inputs := []string{
		"",
		"N/A",
		"None",
		"Not sure",
		"This game doesn't have meaningful glitches",
		"No glitches at this time",
		"Not applicable; none",
	}
	for _, in := range inputs {
		if got := DefaultGlitchTable().Normalize(in); len(got) != 0 {
			t.Fatalf("Normalize(%q) = %v, want empty", in, got)
		}
	}
}

func TestGlitchTable_SubstringMatch(t *testing.T) {
	// "none" matches inside longer words too; the skip list is substring based.
	got := DefaultGlitchTable().Normalize("Nonexistent Clip, Wrong Warp")
	want := []Entry{{Slug: "wrong-warp", Label: "Wrong Warp"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Normalize (-want +got):\n%s", diff)
	}
}

func TestGlitchTable_Custom(t *testing.T) {
	tbl := NewGlitchTable(
		[]string{" SKIP "},
		map[string]Entry{"OOB": {Slug: "out-of-bounds", Label: "Out of Bounds"}},
		slug.NewTable(nil),
	)
	got := tbl.Normalize("oob, please skip me, none")
	want := []Entry{
		{Slug: "out-of-bounds", Label: "Out of Bounds"},
		{Slug: "none", Label: "none"},
	}
	if diff := cmp.Diff(want, got, cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("Normalize (-want +got):\n%s", diff)
	}
}

func TestDefaultGlitchSet(t *testing.T) {
	a := DefaultGlitchSet()
	a[0].Label = "mutated"
	if DefaultGlitchSet()[0].Label != "Unrestricted" {
		t.Fatalf("DefaultGlitchSet must return a fresh slice")
	}
}
