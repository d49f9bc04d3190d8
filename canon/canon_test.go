package canon

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDedupeStrings(t *testing.T) {
	got := DedupeStrings([]string{"A", "B", "A", "C"})
	if diff := cmp.Diff([]string{"A", "B", "C"}, got); diff != "" {
		t.Fatalf("DedupeStrings (-want +got):\n%s", diff)
	}
}

func TestDedupe_ByKeyFirstWins(t *testing.T) {
	type pair struct{ slug, label string }
	in := []pair{
		{"nmg", "NMG"},
		{"unrestricted", "Unrestricted"},
		{"nmg", "No Major Glitches"},
	}
	got := Dedupe(in, func(p pair) string { return p.slug })
	want := []pair{{"nmg", "NMG"}, {"unrestricted", "Unrestricted"}}
	if diff := cmp.Diff(want, got, cmp.AllowUnexported(pair{})); diff != "" {
		t.Fatalf("Dedupe (-want +got):\n%s", diff)
	}
}

func TestDedupe_CaseInsensitiveKey(t *testing.T) {
	got := Dedupe([]string{"Blind", "blind", "BLIND", "Solo"}, strings.ToLower)
	if diff := cmp.Diff([]string{"Blind", "Solo"}, got); diff != "" {
		t.Fatalf("Dedupe (-want +got):\n%s", diff)
	}
}

func TestDedupe_DoesNotMutateInput(t *testing.T) {
	in := []string{"x", "x", "y"}
	_ = DedupeStrings(in)
	if diff := cmp.Diff([]string{"x", "x", "y"}, in); diff != "" {
		t.Fatalf("input mutated (-want +got):\n%s", diff)
	}
}

func TestDedupe_Empty(t *testing.T) {
	if got := DedupeStrings(nil); got != nil {
		t.Fatalf("expected nil, got %v", got)
	}
}
