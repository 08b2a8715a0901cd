// Package seed generates demo assessments, applications and submissions
// against a running service and prints the resulting analytics.
package seed

import "time"

// Config holds configuration for a seeding run.
type Config struct {
	BaseURL     string        // Base URL of the service
	Assessments int           // Number of assessments to create
	Candidates  int           // Number of candidates per assessment
	Timeout     time.Duration // HTTP request timeout
	Seed        int64         // PRNG seed for reproducible data
	Verbose     bool          // Enable verbose logging
}

// Stats holds seeding statistics.
type Stats struct {
	AssessmentsCreated    int
	ApplicationsSubmitted int
	SubmissionsGraded     int
	ReportsFetched        int
	StartTime             time.Time
	EndTime               time.Time
	Duration              time.Duration
}
