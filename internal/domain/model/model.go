// Package model contains domain entities passed between layers.
package model

import "time"

// QuestionConfig describes how many questions of each category an
// assessment asks and how long each category runs.
type QuestionConfig struct {
	MCQCount               int
	MCQTimeMinutes         int
	DescriptiveCount       int
	DescriptiveTimeMinutes int
	DSACount               int
	DSATimeMinutes         int
}

// Assessment is a role-specific test definition with eligibility thresholds.
type Assessment struct {
	ID               string
	Title            string
	Role             string
	Company          string
	Description      string
	Status           AssessmentStatus
	Duration         int // overall duration in minutes
	QuestionCount    int
	RequiredSkills   []string
	MinExperience    int // years
	MinMatchScore    int // [0,100]
	IncludeInterview bool
	QuestionConfig   *QuestionConfig
	AvgScore         int // cached mean submission score, refreshed asynchronously
	CreatedAt        time.Time
}

// Application is a candidate's declared intent to take an assessment,
// carrying the profile data used for match scoring.
type Application struct {
	ID              string
	AssessmentID    string
	CandidateID     string
	Name            string
	Email           string
	ExperienceYears int
	Skills          []string
	ResumeSummary   string
	ResumeFileName  string
	Status          ApplicationStatus
	Score           int // match score [0,100]
	CreatedAt       time.Time
}

// TestCase is a sample input/output pair attached to coding questions.
type TestCase struct {
	Input  string
	Output string
}

// Question is a single assessment question. CorrectAnswer is only
// meaningful for MCQ questions.
type Question struct {
	ID            string
	Type          string // mcq, subjective or coding
	Text          string
	Options       []string
	CorrectAnswer string
	TestCases     []TestCase
}

// Submission is a candidate's answered attempt of an assessment.
// Answers maps question id to the answer as a string; the transport
// layer stringifies non-string answer payloads before they reach here.
type Submission struct {
	AssessmentID string
	CandidateID  string
	Questions    []Question
	Answers      map[string]string
	Score        int // [0,100]
	Result       SubmissionResult
	SubmittedAt  time.Time
}

// AssessmentPatch carries a partial assessment update. Nil fields are
// left unchanged.
type AssessmentPatch struct {
	Title            *string
	Role             *string
	Company          *string
	Description      *string
	Status           *AssessmentStatus
	Duration         *int
	QuestionCount    *int
	RequiredSkills   *[]string
	MinExperience    *int
	MinMatchScore    *int
	IncludeInterview *bool
	QuestionConfig   *QuestionConfig
}

// DistributionBucket is one fixed range of the submission score histogram.
type DistributionBucket struct {
	Range string
	Count int
}

// TopCandidate is one ranked entry of an analytics report.
type TopCandidate struct {
	Rank        int
	CandidateID string
	Name        string
	Email       string
	Score       int
}

// AnalyticsReport aggregates an assessment's applications and submissions.
type AnalyticsReport struct {
	AssessmentID    string
	Title           string
	TotalCandidates int
	AverageScore    int
	TopScore        int
	// CompletionRate is reserved in the response shape; it is not
	// computed yet and is always 0.
	CompletionRate int
	Distribution   []DistributionBucket
	TopCandidates  []TopCandidate
}
