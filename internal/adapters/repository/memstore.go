// Package repository defines the entity store interface and errors.
package repository

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/iitg/jobassessment/internal/domain/model"
)

// MemStore is the in-memory Store implementation. All entity values are
// copied on the way in and out so callers never share slices with the
// store.
type MemStore struct {
	mu sync.RWMutex

	assessments     map[string]model.Assessment
	assessmentOrder []string

	// applications and submissions are kept per assessment in arrival
	// order; (assessment, candidate) is the upsert key.
	applications map[string][]model.Application
	submissions  map[string][]model.Submission

	assessmentCompletions map[string]map[string]struct{}
	interviewCompletions  map[string]map[string]struct{}

	newID func() string
	now   func() time.Time
}

// NewMemStore creates an empty in-memory store with configuration options.
func NewMemStore(opts ...Option) *MemStore {
	s := &MemStore{
		assessments:           make(map[string]model.Assessment),
		applications:          make(map[string][]model.Application),
		submissions:           make(map[string][]model.Submission),
		assessmentCompletions: make(map[string]map[string]struct{}),
		interviewCompletions:  make(map[string]map[string]struct{}),
		newID:                 uuid.NewString,
		now:                   time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// clampAssessment bounds thresholds and counts so stored assessments
// always satisfy the scoring core's input invariants.
func clampAssessment(a *model.Assessment) {
	if a.MinMatchScore < 0 {
		a.MinMatchScore = 0
	}
	if a.MinMatchScore > 100 {
		a.MinMatchScore = 100
	}
	if a.MinExperience < 0 {
		a.MinExperience = 0
	}
	if a.Duration < 0 {
		a.Duration = 0
	}
	if a.QuestionCount < 0 {
		a.QuestionCount = 0
	}
	if c := a.QuestionConfig; c != nil {
		for _, count := range []*int{
			&c.MCQCount, &c.MCQTimeMinutes,
			&c.DescriptiveCount, &c.DescriptiveTimeMinutes,
			&c.DSACount, &c.DSATimeMinutes,
		} {
			if *count < 0 {
				*count = 0
			}
		}
	}
}

func copyAssessment(a model.Assessment) model.Assessment {
	out := a
	out.RequiredSkills = append([]string(nil), a.RequiredSkills...)
	if a.QuestionConfig != nil {
		config := *a.QuestionConfig
		out.QuestionConfig = &config
	}
	return out
}

func copyApplication(a model.Application) model.Application {
	out := a
	out.Skills = append([]string(nil), a.Skills...)
	return out
}

func copySubmission(s model.Submission) model.Submission {
	out := s
	out.Questions = append([]model.Question(nil), s.Questions...)
	if s.Answers != nil {
		out.Answers = make(map[string]string, len(s.Answers))
		for k, v := range s.Answers {
			out.Answers[k] = v
		}
	}
	return out
}

// CreateAssessment persists a new assessment.
func (s *MemStore) CreateAssessment(_ context.Context, assessment model.Assessment) (model.Assessment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	assessment = copyAssessment(assessment)
	assessment.ID = s.newID()
	assessment.CreatedAt = s.now()
	clampAssessment(&assessment)

	s.assessments[assessment.ID] = assessment
	s.assessmentOrder = append(s.assessmentOrder, assessment.ID)

	return copyAssessment(assessment), nil
}

// GetAssessment returns an assessment by id.
func (s *MemStore) GetAssessment(_ context.Context, id string) (model.Assessment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	assessment, ok := s.assessments[id]
	if !ok {
		return model.Assessment{}, ErrNotFound
	}
	return copyAssessment(assessment), nil
}

// ListAssessments returns all assessments in creation order.
func (s *MemStore) ListAssessments(_ context.Context) ([]model.Assessment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Assessment, 0, len(s.assessmentOrder))
	for _, id := range s.assessmentOrder {
		out = append(out, copyAssessment(s.assessments[id]))
	}
	return out, nil
}

// SaveAssessment replaces an existing assessment.
func (s *MemStore) SaveAssessment(_ context.Context, assessment model.Assessment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.assessments[assessment.ID]
	if !ok {
		return ErrNotFound
	}

	assessment = copyAssessment(assessment)
	assessment.CreatedAt = existing.CreatedAt
	clampAssessment(&assessment)
	s.assessments[assessment.ID] = assessment
	return nil
}

// SetAvgScore updates the cached average submission score.
func (s *MemStore) SetAvgScore(_ context.Context, assessmentID string, avgScore int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	assessment, ok := s.assessments[assessmentID]
	if !ok {
		return ErrNotFound
	}
	assessment.AvgScore = avgScore
	s.assessments[assessmentID] = assessment
	return nil
}

// UpsertApplication inserts or replaces the application for (assessment, candidate).
func (s *MemStore) UpsertApplication(_ context.Context, application model.Application) (model.Application, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	application = copyApplication(application)

	rows := s.applications[application.AssessmentID]
	for i := range rows {
		if rows[i].CandidateID == application.CandidateID {
			application.ID = rows[i].ID
			application.CreatedAt = rows[i].CreatedAt
			rows[i] = application
			return copyApplication(application), nil
		}
	}

	application.ID = s.newID()
	application.CreatedAt = s.now()
	s.applications[application.AssessmentID] = append(rows, application)
	return copyApplication(application), nil
}

// GetApplication returns the application for (assessment, candidate).
func (s *MemStore) GetApplication(_ context.Context, assessmentID, candidateID string) (model.Application, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, application := range s.applications[assessmentID] {
		if application.CandidateID == candidateID {
			return copyApplication(application), nil
		}
	}
	return model.Application{}, ErrNotFound
}

// ListApplications returns an assessment's applications in arrival order.
func (s *MemStore) ListApplications(_ context.Context, assessmentID string) ([]model.Application, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows := s.applications[assessmentID]
	out := make([]model.Application, 0, len(rows))
	for _, application := range rows {
		out = append(out, copyApplication(application))
	}
	return out, nil
}

// UpsertSubmission inserts or replaces the submission for (assessment, candidate).
func (s *MemStore) UpsertSubmission(_ context.Context, submission model.Submission) (model.Submission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	submission = copySubmission(submission)
	submission.SubmittedAt = s.now()

	rows := s.submissions[submission.AssessmentID]
	for i := range rows {
		if rows[i].CandidateID == submission.CandidateID {
			rows[i] = submission
			return copySubmission(submission), nil
		}
	}

	s.submissions[submission.AssessmentID] = append(rows, submission)
	return copySubmission(submission), nil
}

// GetSubmission returns the submission for (assessment, candidate).
func (s *MemStore) GetSubmission(_ context.Context, assessmentID, candidateID string) (model.Submission, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, submission := range s.submissions[assessmentID] {
		if submission.CandidateID == candidateID {
			return copySubmission(submission), nil
		}
	}
	return model.Submission{}, ErrNotFound
}

// ListSubmissions returns an assessment's submissions in arrival order.
func (s *MemStore) ListSubmissions(_ context.Context, assessmentID string) ([]model.Submission, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows := s.submissions[assessmentID]
	out := make([]model.Submission, 0, len(rows))
	for _, submission := range rows {
		out = append(out, copySubmission(submission))
	}
	return out, nil
}

func mark(marks map[string]map[string]struct{}, assessmentID, candidateID string) {
	if marks[assessmentID] == nil {
		marks[assessmentID] = make(map[string]struct{})
	}
	marks[assessmentID][candidateID] = struct{}{}
}

func marked(marks map[string]map[string]struct{}, assessmentID, candidateID string) bool {
	_, ok := marks[assessmentID][candidateID]
	return ok
}

// MarkAssessmentCompleted idempotently records assessment completion.
func (s *MemStore) MarkAssessmentCompleted(_ context.Context, assessmentID, candidateID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.assessments[assessmentID]; !ok {
		return ErrNotFound
	}
	mark(s.assessmentCompletions, assessmentID, candidateID)
	return nil
}

// AssessmentCompleted reports whether a candidate finished an assessment.
func (s *MemStore) AssessmentCompleted(_ context.Context, assessmentID, candidateID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return marked(s.assessmentCompletions, assessmentID, candidateID), nil
}

// MarkInterviewCompleted idempotently records interview completion.
func (s *MemStore) MarkInterviewCompleted(_ context.Context, assessmentID, candidateID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.assessments[assessmentID]; !ok {
		return ErrNotFound
	}
	mark(s.interviewCompletions, assessmentID, candidateID)
	return nil
}

// InterviewCompleted reports whether a candidate finished the interview stage.
func (s *MemStore) InterviewCompleted(_ context.Context, assessmentID, candidateID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return marked(s.interviewCompletions, assessmentID, candidateID), nil
}

// Counts returns stored entity totals.
func (s *MemStore) Counts(_ context.Context) (assessments, applications, submissions int) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	assessments = len(s.assessments)
	for _, rows := range s.applications {
		applications += len(rows)
	}
	for _, rows := range s.submissions {
		submissions += len(rows)
	}
	return assessments, applications, submissions
}
