// Package analytics aggregates an assessment's applications and
// submissions into a distribution, a top-candidate ranking and a
// summary report. Like the scoring package it is pure: inputs are
// borrowed for the call, outputs are freshly built values.
package analytics

import "github.com/iitg/jobassessment/internal/domain/model"

// bucketRanges are the fixed histogram labels, in emission order.
var bucketRanges = [5]string{"0-20", "21-40", "41-60", "61-80", "81-100"}

// Distribution buckets submission scores into the five fixed ranges.
// Bounds are inclusive on the upper edge, so a score of 20 lands in the
// first bucket. All five entries are emitted even when empty.
func Distribution(scores []int) []model.DistributionBucket {
	var counts [5]int
	for _, score := range scores {
		switch {
		case score <= 20:
			counts[0]++
		case score <= 40:
			counts[1]++
		case score <= 60:
			counts[2]++
		case score <= 80:
			counts[3]++
		default:
			counts[4]++
		}
	}

	buckets := make([]model.DistributionBucket, len(bucketRanges))
	for i, label := range bucketRanges {
		buckets[i] = model.DistributionBucket{Range: label, Count: counts[i]}
	}
	return buckets
}
