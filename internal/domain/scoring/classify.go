package scoring

import "github.com/iitg/jobassessment/internal/domain/model"

// ClassifyApplication maps a match score and an assessment's threshold
// to an application outcome. Equality shortlists.
func ClassifyApplication(matchScore, minMatchScore int) model.ApplicationStatus {
	if matchScore >= minMatchScore {
		return model.ApplicationShortlisted
	}
	return model.ApplicationRejected
}

// ClassifySubmission maps a submission score to a result. Equality with
// the threshold passes.
func ClassifySubmission(score int) model.SubmissionResult {
	if score >= PassThreshold {
		return model.SubmissionPassed
	}
	return model.SubmissionFailed
}
