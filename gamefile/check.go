package gamefile

import "fmt"

// CheckRule is an explicit, named rule over an extracted game file.
//
// ID must be stable across versions. Apply must be deterministic and side-effect free.
type CheckRule struct {
	ID    string
	Apply func(*Record) error
}

func (r CheckRule) apply(rec *Record) error {
	if r.Apply == nil {
		return newError(KindInternal, "GAME-INTERNAL-020", "nil check rule Apply")
	}
	return r.Apply(rec)
}

// Check runs every rule of CheckRules(schema) in order and returns all
// violations.
func Check(rec *Record, schema Schema) []error {
	var out []error
	for _, r := range CheckRules(schema) {
		if err := r.apply(rec); err != nil {
			out = append(out, err)
		}
	}
	return out
}

// CheckRules returns the canonical key rules for schema, in evaluation order.
func CheckRules(schema Schema) []CheckRule {
	k := schema.Keys
	return []CheckRule{
		{ID: "GAME-CHK-010", Apply: func(r *Record) error {
			if !IsID(r.GameID) {
				return newError(KindCheck, "GAME-CHK-010", fmt.Sprintf("%s must be kebab-case, got %q", k.GameID, r.GameID))
			}
			return nil
		}},
		{ID: "GAME-CHK-011", Apply: func(r *Record) error {
			if r.Name == "" {
				return newError(KindCheck, "GAME-CHK-011", k.Name+" is empty")
			}
			return nil
		}},
		{ID: "GAME-CHK-012", Apply: func(r *Record) error {
			required := []string{
				k.Layout, k.GameID, k.Reviewers, k.Name, k.Aliases, k.Cover, k.Status,
				k.Genres, k.Platforms, k.Tabs, k.Categories, k.Challenges,
				k.CommunityChallenges, k.Restrictions, k.TimingMethod, k.CharacterColumn,
			}
			for _, key := range required {
				if !r.Present[key] {
					return newError(KindCheck, "GAME-CHK-012", "missing key: "+key)
				}
			}
			if !r.Present[k.Glitches] && !r.Present[k.GlitchesRelevant] {
				return newError(KindCheck, "GAME-CHK-012", fmt.Sprintf("missing key: %s or %s", k.Glitches, k.GlitchesRelevant))
			}
			return nil
		}},
		{ID: "GAME-CHK-013", Apply: func(r *Record) error {
			for _, l := range entryLists(r, k) {
				for _, e := range l.entries {
					if !IsID(e.Slug) {
						return newError(KindCheck, "GAME-CHK-013", fmt.Sprintf("%s: invalid slug %q", l.key, e.Slug))
					}
				}
			}
			return nil
		}},
		{ID: "GAME-CHK-014", Apply: func(r *Record) error {
			for _, l := range entryLists(r, k) {
				seen := map[string]bool{}
				for _, e := range l.entries {
					if seen[e.Slug] {
						return newError(KindCheck, "GAME-CHK-014", fmt.Sprintf("%s: duplicate slug %q", l.key, e.Slug))
					}
					seen[e.Slug] = true
				}
			}
			return nil
		}},
		{ID: "GAME-CHK-015", Apply: func(r *Record) error {
			if !r.Present[k.ChallengeSlugs] {
				return nil
			}
			if len(r.ChallengeSlugs) != len(r.Challenges) {
				return newError(KindCheck, "GAME-CHK-015", fmt.Sprintf("%s does not match %s", k.ChallengeSlugs, k.Challenges))
			}
			for i, c := range r.Challenges {
				if r.ChallengeSlugs[i] != c.Slug {
					return newError(KindCheck, "GAME-CHK-015", fmt.Sprintf("%s does not match %s", k.ChallengeSlugs, k.Challenges))
				}
			}
			return nil
		}},
		{ID: "GAME-CHK-016", Apply: func(r *Record) error {
			if len(r.Characters) > 0 && !r.CharacterColumn.Enabled {
				return newError(KindCheck, "GAME-CHK-016", k.Characters+" present while the character column is disabled")
			}
			return nil
		}},
	}
}

type entryList struct {
	key     string
	entries []Entry
}

// entryLists returns every slugged list of r in document order. Children are
// listed per parent so duplicates are judged within a parent.
func entryLists(r *Record, k Keys) []entryList {
	parents := make([]Entry, 0, len(r.Categories))
	for _, c := range r.Categories {
		parents = append(parents, c.Entry)
	}
	lists := []entryList{{k.Categories, parents}}
	for _, c := range r.Categories {
		if len(c.Children) > 0 {
			lists = append(lists, entryList{k.Categories + "." + c.Slug + ".children", c.Children})
		}
	}
	return append(lists,
		entryList{k.Challenges, r.Challenges},
		entryList{k.CommunityChallenges, r.CommunityChallenges},
		entryList{k.Restrictions, r.Restrictions},
		entryList{k.Glitches, r.Glitches},
		entryList{k.Characters, r.Characters},
	)
}
