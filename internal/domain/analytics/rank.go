package analytics

import (
	"sort"

	"github.com/iitg/jobassessment/internal/domain/model"
)

// Placeholder display values used when a submission has no matching
// application on record.
const (
	placeholderName  = "Candidate"
	placeholderEmail = "-"
)

// maxTopCandidates caps the ranking length.
const maxTopCandidates = 5

// TopCandidates ranks the top submissions by score, joined with the
// candidate's display info from the matching application. The sort is
// stable, so equal scores keep the order submissions were supplied in;
// ranks start at 1. A submission without an application gets
// placeholder display values so the ranking stays total when the two
// sets drift.
func TopCandidates(submissions []model.Submission, applications []model.Application) []model.TopCandidate {
	sorted := make([]model.Submission, len(submissions))
	copy(sorted, submissions)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Score > sorted[j].Score
	})

	if len(sorted) > maxTopCandidates {
		sorted = sorted[:maxTopCandidates]
	}

	// First application per candidate wins the join.
	byCandidate := make(map[string]*model.Application, len(applications))
	for i := range applications {
		if _, ok := byCandidate[applications[i].CandidateID]; !ok {
			byCandidate[applications[i].CandidateID] = &applications[i]
		}
	}

	entries := make([]model.TopCandidate, 0, len(sorted))
	for i, submission := range sorted {
		name, email := placeholderName, placeholderEmail
		if application, ok := byCandidate[submission.CandidateID]; ok {
			name, email = application.Name, application.Email
		}
		entries = append(entries, model.TopCandidate{
			Rank:        i + 1,
			CandidateID: submission.CandidateID,
			Name:        name,
			Email:       email,
			Score:       submission.Score,
		})
	}
	return entries
}
