// Package canon de-duplicates ordered sequences.
package canon

// Dedupe returns items with every element whose key was already seen removed.
// The first occurrence of each key wins and relative order is preserved.
// The input slice is not modified.
func Dedupe[T any](items []T, key func(T) string) []T {
	if len(items) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(items))
	out := make([]T, 0, len(items))
	for _, it := range items {
		k := key(it)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, it)
	}
	return out
}

// DedupeStrings de-duplicates by exact string equality.
func DedupeStrings(items []string) []string {
	return Dedupe(items, func(s string) string { return s })
}
