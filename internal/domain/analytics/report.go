package analytics

import (
	"math"

	"github.com/iitg/jobassessment/internal/domain/model"
)

// Assemble composes the full analytics report for an assessment from
// its applications and submissions. With no submissions the numeric
// fields are 0 and the distribution is five empty buckets.
func Assemble(assessmentID, title string, applications []model.Application, submissions []model.Submission) model.AnalyticsReport {
	scores := make([]int, len(submissions))
	for i, submission := range submissions {
		scores[i] = submission.Score
	}

	averageScore := 0
	topScore := 0
	if len(scores) > 0 {
		sum := 0
		for _, score := range scores {
			sum += score
			if score > topScore {
				topScore = score
			}
		}
		averageScore = int(math.Round(float64(sum) / float64(len(scores))))
	}

	return model.AnalyticsReport{
		AssessmentID:    assessmentID,
		Title:           title,
		TotalCandidates: len(applications),
		AverageScore:    averageScore,
		TopScore:        topScore,
		CompletionRate:  0, // reserved, see model.AnalyticsReport
		Distribution:    Distribution(scores),
		TopCandidates:   TopCandidates(submissions, applications),
	}
}
