package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/iitg/jobassessment/pkg/logger"
)

// idResponse is the create-assessment response.
type idResponse struct {
	ID string `json:"id"`
}

// analyticsReport mirrors the analytics endpoint response.
type analyticsReport struct {
	TotalCandidates int `json:"totalCandidates"`
	AverageScore    int `json:"averageScore"`
	TopScore        int `json:"topScore"`
	CompletionRate  int `json:"completionRate"`
	Distribution    []struct {
		Range string `json:"range"`
		Count int    `json:"count"`
	} `json:"scoreDistribution"`
	TopCandidates []struct {
		Rank        int    `json:"rank"`
		CandidateID string `json:"candidateId"`
		Name        string `json:"name"`
		Score       int    `json:"score"`
	} `json:"topCandidates"`
}

// Run executes a seeding run against the configured service.
func Run(ctx context.Context, config Config) (*Stats, error) {
	log := logger.Get().Named("seed")
	stats := &Stats{StartTime: time.Now()}

	client := NewHTTPClient(config.BaseURL, config.Timeout)
	gen := NewGenerator(config.Seed)

	// Step 1: make sure the service is up before generating anything.
	if err := client.Health(ctx); err != nil {
		return stats, fmt.Errorf("service not reachable at %s: %w", config.BaseURL, err)
	}
	log.Info(ctx, "service is healthy", logger.String("base_url", config.BaseURL))

	// Step 2: create assessments and drive candidates through each one.
	for i := 0; i < config.Assessments; i++ {
		if err := ctx.Err(); err != nil {
			return stats, err
		}

		assessment := gen.Assessment(i)

		var created idResponse
		if err := client.PostJSON(ctx, "/api/assessments", assessment, &created); err != nil {
			return stats, fmt.Errorf("create assessment %d: %w", i+1, err)
		}
		stats.AssessmentsCreated++

		if config.Verbose {
			log.Debug(ctx, "created assessment",
				logger.String("assessment_id", created.ID),
				logger.String("title", assessment.Title),
			)
		}

		if err := seedAssessment(ctx, client, gen, config, created.ID, assessment, stats, log); err != nil {
			return stats, err
		}
	}

	stats.EndTime = time.Now()
	stats.Duration = stats.EndTime.Sub(stats.StartTime)

	log.Info(ctx, "seeding complete",
		logger.Int("assessments", stats.AssessmentsCreated),
		logger.Int("applications", stats.ApplicationsSubmitted),
		logger.Int("submissions", stats.SubmissionsGraded),
		logger.Int("reports", stats.ReportsFetched),
		logger.Any("duration", stats.Duration),
	)

	return stats, nil
}

// seedAssessment applies candidates, submits answers and fetches the
// analytics report for a single assessment.
func seedAssessment(ctx context.Context, client *HTTPClient, gen *Generator, config Config, assessmentID string, assessment assessmentRequest, stats *Stats, log logger.Logger) error {
	base := "/api/assessments/" + assessmentID

	candidates := make([]applicationRequest, 0, config.Candidates)
	for j := 0; j < config.Candidates; j++ {
		candidate := gen.Candidate(j, assessment.RequiredSkills)
		if err := client.PostJSON(ctx, base+"/applications", candidate, nil); err != nil {
			return fmt.Errorf("apply candidate %s: %w", candidate.CandidateID, err)
		}
		candidates = append(candidates, candidate)
		stats.ApplicationsSubmitted++
	}

	// Answer the generated question set with per-candidate accuracy so
	// scores land in different distribution buckets.
	var questions []map[string]any
	if err := client.GetJSON(ctx, base+"/questions", &questions); err != nil {
		return fmt.Errorf("fetch questions for %s: %w", assessmentID, err)
	}

	for j, candidate := range candidates {
		correctRate := float64(j+1) / float64(len(candidates)+1)
		submission := map[string]any{
			"candidateId": candidate.CandidateID,
			"questions":   questions,
			"answers":     gen.Answers(questions, correctRate),
		}
		if err := client.PostJSON(ctx, base+"/submissions", submission, nil); err != nil {
			return fmt.Errorf("submit for candidate %s: %w", candidate.CandidateID, err)
		}
		stats.SubmissionsGraded++
	}

	var report analyticsReport
	if err := client.GetJSON(ctx, base+"/analytics", &report); err != nil {
		return fmt.Errorf("fetch analytics for %s: %w", assessmentID, err)
	}
	stats.ReportsFetched++

	log.Info(ctx, "analytics report",
		logger.String("assessment_id", assessmentID),
		logger.String("title", assessment.Title),
		logger.Int("total_candidates", report.TotalCandidates),
		logger.Int("average_score", report.AverageScore),
		logger.Int("top_score", report.TopScore),
		logger.Int("top_candidates", len(report.TopCandidates)),
	)

	if config.Verbose {
		for _, bucket := range report.Distribution {
			log.Debug(ctx, "score bucket",
				logger.String("range", bucket.Range),
				logger.Int("count", bucket.Count),
			)
		}
		for _, top := range report.TopCandidates {
			log.Debug(ctx, "top candidate",
				logger.Int("rank", top.Rank),
				logger.String("name", top.Name),
				logger.Int("score", top.Score),
			)
		}
	}

	return nil
}
