// Package scoring computes match scores for applications and grades
// submitted answers. Every function is pure and total: identical inputs
// yield identical outputs, degenerate inputs (empty slices, missing
// answers, blank strings) follow the documented rules instead of
// producing errors, and no input is retained after the call returns.
package scoring

import "math"

// Scoring constants. The weighting and pass threshold are fixed; they
// are not per-assessment configuration.
const (
	skillWeight      = 0.7
	experienceWeight = 0.3

	// PassThreshold is the minimum submission score that counts as passed.
	PassThreshold = 60

	maxScore = 100
)

// round rounds half away from zero. math.Round implements exactly that
// rule; named here so the rounding behavior is pinned rather than
// implied (banker's rounding would change boundary scores).
func round(x float64) int {
	return int(math.Round(x))
}

// clamp bounds a score to [0,100].
func clamp(score int) int {
	if score < 0 {
		return 0
	}
	if score > maxScore {
		return maxScore
	}
	return score
}
