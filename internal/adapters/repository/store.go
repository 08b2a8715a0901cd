// Package repository defines the entity store interface and errors.
package repository

import (
	"context"

	"github.com/iitg/jobassessment/internal/domain/model"
)

// Store provides access to assessments, applications, submissions and
// completion marks. Implementations must be safe for concurrent use.
type Store interface {
	// CreateAssessment persists a new assessment, assigning its id and
	// creation time, and returns the stored record.
	CreateAssessment(ctx context.Context, assessment model.Assessment) (model.Assessment, error)

	// GetAssessment returns an assessment by id.
	// Returns ErrNotFound if the id is unknown.
	GetAssessment(ctx context.Context, id string) (model.Assessment, error)

	// ListAssessments returns all assessments in creation order.
	ListAssessments(ctx context.Context) ([]model.Assessment, error)

	// SaveAssessment replaces an existing assessment.
	// Returns ErrNotFound if the id is unknown.
	SaveAssessment(ctx context.Context, assessment model.Assessment) error

	// SetAvgScore updates the cached average submission score.
	SetAvgScore(ctx context.Context, assessmentID string, avgScore int) error

	// UpsertApplication inserts or replaces the application for
	// (assessment, candidate) and returns the stored record. A new
	// application gets an id and creation time; a replacement keeps both.
	UpsertApplication(ctx context.Context, application model.Application) (model.Application, error)

	// GetApplication returns the application for (assessment, candidate).
	GetApplication(ctx context.Context, assessmentID, candidateID string) (model.Application, error)

	// ListApplications returns an assessment's applications in arrival order.
	ListApplications(ctx context.Context, assessmentID string) ([]model.Application, error)

	// UpsertSubmission inserts or replaces the submission for
	// (assessment, candidate) and returns the stored record.
	UpsertSubmission(ctx context.Context, submission model.Submission) (model.Submission, error)

	// GetSubmission returns the submission for (assessment, candidate).
	GetSubmission(ctx context.Context, assessmentID, candidateID string) (model.Submission, error)

	// ListSubmissions returns an assessment's submissions in arrival order.
	ListSubmissions(ctx context.Context, assessmentID string) ([]model.Submission, error)

	// MarkAssessmentCompleted idempotently records that a candidate
	// finished an assessment.
	MarkAssessmentCompleted(ctx context.Context, assessmentID, candidateID string) error

	// AssessmentCompleted reports whether a candidate finished an assessment.
	AssessmentCompleted(ctx context.Context, assessmentID, candidateID string) (bool, error)

	// MarkInterviewCompleted idempotently records that a candidate
	// finished the interview stage.
	MarkInterviewCompleted(ctx context.Context, assessmentID, candidateID string) error

	// InterviewCompleted reports whether a candidate finished the interview stage.
	InterviewCompleted(ctx context.Context, assessmentID, candidateID string) (bool, error)

	// Counts returns the number of stored assessments, applications and
	// submissions, for monitoring.
	Counts(ctx context.Context) (assessments, applications, submissions int)
}
