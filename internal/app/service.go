// Package service wires the store, scoring core and refresh workers
// together and implements the dependencies required by the HTTP API.
package service

import (
	"context"
	"runtime"
	"sync"

	refreshqueue "github.com/iitg/jobassessment/internal/adapters/mq/queue"
	workerpool "github.com/iitg/jobassessment/internal/adapters/mq/worker"
	repository "github.com/iitg/jobassessment/internal/adapters/repository"
	"github.com/iitg/jobassessment/internal/domain/analytics"
	"github.com/iitg/jobassessment/internal/domain/dedupe"
	"github.com/iitg/jobassessment/internal/domain/model"
	"github.com/iitg/jobassessment/internal/domain/questiongen"
	"github.com/iitg/jobassessment/internal/domain/scoring"
	"github.com/iitg/jobassessment/pkg/logger"
	"github.com/iitg/jobassessment/pkg/metrics"
)

// Service implements the assessment API on top of the store, the
// scoring core and the background refresh pool.
type Service struct {
	mu sync.RWMutex

	// Core components
	store     repository.Store
	deduper   dedupe.Deduper
	queue     refreshqueue.Queue
	generator *questiongen.Generator
	pool      *workerpool.Pool

	// Configuration
	workerCount int
	queueSize   int
	dedupeSize  int
	genOpts     []questiongen.Option

	// State
	started bool

	// Logging
	logger logger.Logger
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		workerCount: runtime.NumCPU() * 2,
		queueSize:   10000,
		dedupeSize:  50000,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start initializes the store, generator and refresh workers.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	if s.logger == nil {
		s.logger = logger.Get().Named("service")
	}

	s.store = repository.NewMemStore()
	s.deduper = dedupe.NewInMemoryDeduper(
		dedupe.WithMaxSize(s.dedupeSize),
	)
	s.queue = refreshqueue.NewInMemoryQueue(
		refreshqueue.WithCapacity(s.queueSize),
	)
	s.generator = questiongen.New(s.genOpts...)

	s.pool = workerpool.NewPool(s.workerCount, s.queue, s.store, s.deduper)
	s.pool.Start(ctx)

	s.started = true
	s.logger.Info(ctx, "assessment service started",
		logger.Int("workers", s.workerCount),
		logger.Int("queueSize", s.queueSize),
		logger.Int("dedupeSize", s.dedupeSize),
	)

	return nil
}

// Stop gracefully shuts down the refresh pool and queue.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}

	ctx := context.Background()
	s.logger.Info(ctx, "stopping assessment service...")

	if s.pool != nil {
		_ = s.pool.Shutdown(ctx)
	}

	s.started = false
	s.logger.Info(ctx, "assessment service stopped")
}

// CreateAssessment stores a new assessment. Incoming status defaults to
// active and the cached average starts at zero.
func (s *Service) CreateAssessment(ctx context.Context, assessment model.Assessment) (model.Assessment, error) {
	if assessment.Status == "" {
		assessment.Status = model.AssessmentActive
	}
	assessment.AvgScore = 0

	created, err := s.store.CreateAssessment(ctx, assessment)
	if err != nil {
		return model.Assessment{}, err
	}

	s.updateTotals(ctx)
	return created, nil
}

// ListAssessments returns all assessments in creation order.
func (s *Service) ListAssessments(ctx context.Context) ([]model.Assessment, error) {
	return s.store.ListAssessments(ctx)
}

// GetAssessment returns one assessment by id.
func (s *Service) GetAssessment(ctx context.Context, id string) (model.Assessment, error) {
	return s.store.GetAssessment(ctx, id)
}

// UpdateAssessment applies a partial update and returns the stored record.
func (s *Service) UpdateAssessment(ctx context.Context, id string, patch model.AssessmentPatch) (model.Assessment, error) {
	assessment, err := s.store.GetAssessment(ctx, id)
	if err != nil {
		return model.Assessment{}, err
	}

	if patch.Title != nil {
		assessment.Title = *patch.Title
	}
	if patch.Role != nil {
		assessment.Role = *patch.Role
	}
	if patch.Company != nil {
		assessment.Company = *patch.Company
	}
	if patch.Description != nil {
		assessment.Description = *patch.Description
	}
	if patch.Status != nil {
		assessment.Status = *patch.Status
	}
	if patch.Duration != nil {
		assessment.Duration = *patch.Duration
	}
	if patch.QuestionCount != nil {
		assessment.QuestionCount = *patch.QuestionCount
	}
	if patch.RequiredSkills != nil {
		assessment.RequiredSkills = *patch.RequiredSkills
	}
	if patch.MinExperience != nil {
		assessment.MinExperience = *patch.MinExperience
	}
	if patch.MinMatchScore != nil {
		assessment.MinMatchScore = *patch.MinMatchScore
	}
	if patch.IncludeInterview != nil {
		assessment.IncludeInterview = *patch.IncludeInterview
	}
	if patch.QuestionConfig != nil {
		assessment.QuestionConfig = patch.QuestionConfig
	}

	if err := s.store.SaveAssessment(ctx, assessment); err != nil {
		return model.Assessment{}, err
	}
	return s.store.GetAssessment(ctx, id)
}

// Apply match-scores an application against the assessment's
// requirements, classifies it and stores it. A repeated application by
// the same candidate replaces the previous one.
func (s *Service) Apply(ctx context.Context, application model.Application) (model.Application, error) {
	assessment, err := s.store.GetAssessment(ctx, application.AssessmentID)
	if err != nil {
		return model.Application{}, err
	}

	result := scoring.ScoreApplication(scoring.MatchInput{
		RequiredSkills:  assessment.RequiredSkills,
		MinExperience:   assessment.MinExperience,
		MinMatchScore:   assessment.MinMatchScore,
		CandidateSkills: application.Skills,
		ExperienceYears: application.ExperienceYears,
	})
	application.Score = result.Score
	application.Status = result.Outcome

	stored, err := s.store.UpsertApplication(ctx, application)
	if err != nil {
		return model.Application{}, err
	}

	metrics.RecordApplicationScored(string(result.Outcome))
	s.enqueueRefresh(ctx, application.AssessmentID)
	s.updateTotals(ctx)
	return stored, nil
}

// ListApplications returns an assessment's applications in arrival order.
func (s *Service) ListApplications(ctx context.Context, assessmentID string) ([]model.Application, error) {
	if _, err := s.store.GetAssessment(ctx, assessmentID); err != nil {
		return nil, err
	}
	return s.store.ListApplications(ctx, assessmentID)
}

// GetApplication returns the application for (assessment, candidate).
func (s *Service) GetApplication(ctx context.Context, assessmentID, candidateID string) (model.Application, error) {
	return s.store.GetApplication(ctx, assessmentID, candidateID)
}

// Submit grades a submission's MCQ answers, classifies the score,
// stores the attempt and marks the assessment completed for the
// candidate. The latest attempt replaces any earlier one.
func (s *Service) Submit(ctx context.Context, submission model.Submission) (model.Submission, error) {
	if _, err := s.store.GetAssessment(ctx, submission.AssessmentID); err != nil {
		return model.Submission{}, err
	}

	grade := scoring.ScoreSubmission(submission.Questions, submission.Answers)
	submission.Score = grade.Score
	submission.Result = grade.Result

	stored, err := s.store.UpsertSubmission(ctx, submission)
	if err != nil {
		return model.Submission{}, err
	}
	if err := s.store.MarkAssessmentCompleted(ctx, submission.AssessmentID, submission.CandidateID); err != nil {
		return model.Submission{}, err
	}

	metrics.RecordSubmissionGraded(string(grade.Result))
	s.enqueueRefresh(ctx, submission.AssessmentID)
	s.updateTotals(ctx)
	return stored, nil
}

// ListSubmissions returns an assessment's submissions in arrival order.
func (s *Service) ListSubmissions(ctx context.Context, assessmentID string) ([]model.Submission, error) {
	if _, err := s.store.GetAssessment(ctx, assessmentID); err != nil {
		return nil, err
	}
	return s.store.ListSubmissions(ctx, assessmentID)
}

// GetSubmission returns the submission for (assessment, candidate).
func (s *Service) GetSubmission(ctx context.Context, assessmentID, candidateID string) (model.Submission, error) {
	return s.store.GetSubmission(ctx, assessmentID, candidateID)
}

// Analytics assembles the analytics report for an assessment from its
// stored applications and submissions.
func (s *Service) Analytics(ctx context.Context, assessmentID string) (model.AnalyticsReport, error) {
	assessment, err := s.store.GetAssessment(ctx, assessmentID)
	if err != nil {
		return model.AnalyticsReport{}, err
	}
	applications, err := s.store.ListApplications(ctx, assessmentID)
	if err != nil {
		return model.AnalyticsReport{}, err
	}
	submissions, err := s.store.ListSubmissions(ctx, assessmentID)
	if err != nil {
		return model.AnalyticsReport{}, err
	}

	metrics.RecordAnalyticsBuilt()
	return analytics.Assemble(assessment.ID, assessment.Title, applications, submissions), nil
}

// Questions returns the generated question set for an assessment.
func (s *Service) Questions(ctx context.Context, assessmentID string) ([]model.Question, error) {
	assessment, err := s.store.GetAssessment(ctx, assessmentID)
	if err != nil {
		return nil, err
	}
	return s.generator.Generate(assessment.QuestionConfig), nil
}

// MarkAssessmentCompleted records that a candidate finished an assessment.
func (s *Service) MarkAssessmentCompleted(ctx context.Context, assessmentID, candidateID string) error {
	return s.store.MarkAssessmentCompleted(ctx, assessmentID, candidateID)
}

// AssessmentCompleted reports whether a candidate finished an assessment.
func (s *Service) AssessmentCompleted(ctx context.Context, assessmentID, candidateID string) (bool, error) {
	return s.store.AssessmentCompleted(ctx, assessmentID, candidateID)
}

// MarkInterviewCompleted records that a candidate finished the interview stage.
func (s *Service) MarkInterviewCompleted(ctx context.Context, assessmentID, candidateID string) error {
	return s.store.MarkInterviewCompleted(ctx, assessmentID, candidateID)
}

// InterviewCompleted reports whether a candidate finished the interview stage.
func (s *Service) InterviewCompleted(ctx context.Context, assessmentID, candidateID string) (bool, error) {
	return s.store.InterviewCompleted(ctx, assessmentID, candidateID)
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := map[string]interface{}{
		"started":     s.started,
		"workerCount": s.workerCount,
		"queueSize":   s.queueSize,
		"dedupeSize":  s.dedupeSize,
	}

	if s.started {
		ctx := context.Background()
		assessments, applications, submissions := s.store.Counts(ctx)
		stats["queueLength"] = s.queue.Len(ctx)
		stats["pendingRefreshes"] = s.deduper.Size()
		stats["totalAssessments"] = assessments
		stats["totalApplications"] = applications
		stats["totalSubmissions"] = submissions
	}

	return stats
}

// enqueueRefresh queues an aggregate refresh for the assessment unless
// one is already pending. A full queue drops the refresh; the cached
// average is advisory and analytics recomputes from the raw rows.
func (s *Service) enqueueRefresh(ctx context.Context, assessmentID string) {
	if s.deduper.SeenAndRecord(ctx, assessmentID) {
		metrics.RecordRefreshCoalesced()
		return
	}

	if ok := s.queue.Enqueue(ctx, refreshqueue.Event{AssessmentID: assessmentID}); !ok {
		s.deduper.Unrecord(ctx, assessmentID)
		s.logger.Warn(ctx, "refresh queue full, dropping refresh",
			logger.String("assessmentID", assessmentID),
		)
	}
}

// updateTotals pushes entity counts to the metrics gauges.
func (s *Service) updateTotals(ctx context.Context) {
	assessments, applications, submissions := s.store.Counts(ctx)
	metrics.UpdateTotalAssessments(assessments)
	metrics.UpdateTotalApplications(applications)
	metrics.UpdateTotalSubmissions(submissions)
}
