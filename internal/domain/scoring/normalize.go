package scoring

import "strings"

// NormalizeSkill trims surrounding whitespace and lower-cases a skill
// token. The mapping is locale-independent so identical inputs produce
// identical outputs on every runtime.
func NormalizeSkill(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// NormalizeSkills returns the normalized, non-empty subsequence of xs,
// preserving input order. Duplicates are kept; downstream matching is
// set-membership against the other side, so deduplication here would
// change nothing and hide the caller's data.
func NormalizeSkills(xs []string) []string {
	out := make([]string, 0, len(xs))
	for _, x := range xs {
		if normalized := NormalizeSkill(x); normalized != "" {
			out = append(out, normalized)
		}
	}
	return out
}
