package model

import (
	"fmt"
	"strings"
)

// Status enumerations. The canonical wire form of every token is lower
// case; parsing is case-insensitive so mixed-case boundary spellings
// never leak past this package.

// AssessmentStatus is the lifecycle state of an assessment.
type AssessmentStatus string

const (
	AssessmentActive   AssessmentStatus = "active"
	AssessmentDraft    AssessmentStatus = "draft"
	AssessmentArchived AssessmentStatus = "archived"
)

// ApplicationStatus is the outcome of match scoring an application.
type ApplicationStatus string

const (
	ApplicationShortlisted ApplicationStatus = "shortlisted"
	ApplicationRejected    ApplicationStatus = "rejected"
)

// SubmissionResult is the outcome of grading a submission.
type SubmissionResult string

const (
	SubmissionPassed SubmissionResult = "passed"
	SubmissionFailed SubmissionResult = "failed"
)

func (s AssessmentStatus) String() string  { return string(s) }
func (s ApplicationStatus) String() string { return string(s) }
func (s SubmissionResult) String() string  { return string(s) }

// ParseAssessmentStatus maps a status token to its variant.
func ParseAssessmentStatus(s string) (AssessmentStatus, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "active":
		return AssessmentActive, nil
	case "draft":
		return AssessmentDraft, nil
	case "archived":
		return AssessmentArchived, nil
	default:
		return "", fmt.Errorf("unknown assessment status: %q", s)
	}
}

// ParseApplicationStatus maps a status token to its variant.
func ParseApplicationStatus(s string) (ApplicationStatus, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "shortlisted":
		return ApplicationShortlisted, nil
	case "rejected":
		return ApplicationRejected, nil
	default:
		return "", fmt.Errorf("unknown application status: %q", s)
	}
}

// ParseSubmissionResult maps a result token to its variant.
func ParseSubmissionResult(s string) (SubmissionResult, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "passed":
		return SubmissionPassed, nil
	case "failed":
		return SubmissionFailed, nil
	default:
		return "", fmt.Errorf("unknown submission result: %q", s)
	}
}
