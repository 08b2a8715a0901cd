// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/iitg/jobassessment/internal/domain/model"
)

// validate checks request DTO constraints before they reach the service.
var validate = validator.New(validator.WithRequiredStructEnabled()) //nolint:gochecknoglobals // shared validator instance

// questionConfigPayload mirrors the question configuration wire shape.
type questionConfigPayload struct {
	MCQCount               int `json:"mcqCount"`
	MCQTimeMinutes         int `json:"mcqTimeMinutes"`
	DescriptiveCount       int `json:"descriptiveCount"`
	DescriptiveTimeMinutes int `json:"descriptiveTimeMinutes"`
	DSACount               int `json:"dsaCount"`
	DSATimeMinutes         int `json:"dsaTimeMinutes"`
}

func (p *questionConfigPayload) toModel() *model.QuestionConfig {
	if p == nil {
		return nil
	}
	return &model.QuestionConfig{
		MCQCount:               p.MCQCount,
		MCQTimeMinutes:         p.MCQTimeMinutes,
		DescriptiveCount:       p.DescriptiveCount,
		DescriptiveTimeMinutes: p.DescriptiveTimeMinutes,
		DSACount:               p.DSACount,
		DSATimeMinutes:         p.DSATimeMinutes,
	}
}

type createAssessmentRequest struct {
	Title            string                 `json:"title" validate:"required"`
	Role             string                 `json:"role"`
	Company          string                 `json:"company"`
	Description      string                 `json:"description"`
	Duration         int                    `json:"duration" validate:"gte=0"`
	Questions        int                    `json:"questions" validate:"gte=0"`
	RequiredSkills   []string               `json:"requiredSkills"`
	MinExperience    *int                   `json:"minExperience"`
	MinMatchScore    *int                   `json:"minMatchScore"`
	IncludeInterview *bool                  `json:"includeInterview"`
	QuestionConfig   *questionConfigPayload `json:"questionConfig"`
}

type createAssessmentResponse struct {
	ID string `json:"id"`
}

type updateAssessmentRequest struct {
	Title            *string                `json:"title"`
	Role             *string                `json:"role"`
	Company          *string                `json:"company"`
	Description      *string                `json:"description"`
	Status           *string                `json:"status"`
	Duration         *int                   `json:"duration"`
	Questions        *int                   `json:"questions"`
	RequiredSkills   *[]string              `json:"requiredSkills"`
	MinExperience    *int                   `json:"minExperience"`
	MinMatchScore    *int                   `json:"minMatchScore"`
	IncludeInterview *bool                  `json:"includeInterview"`
	QuestionConfig   *questionConfigPayload `json:"questionConfig"`
}

type assessmentListItem struct {
	ID               string `json:"id"`
	Title            string `json:"title"`
	Role             string `json:"role"`
	Company          string `json:"company"`
	Status           string `json:"status"`
	Duration         int    `json:"duration"`
	Questions        int    `json:"questions"`
	IncludeInterview bool   `json:"includeInterview"`
	CreatedAt        string `json:"createdAt"`
}

type assessmentDetails struct {
	ID               string   `json:"id"`
	Title            string   `json:"title"`
	Role             string   `json:"role"`
	Company          string   `json:"company"`
	Description      string   `json:"description"`
	Status           string   `json:"status"`
	Duration         int      `json:"duration"`
	RequiredSkills   []string `json:"requiredSkills"`
	MinExperience    int      `json:"minExperience"`
	MinMatchScore    int      `json:"minMatchScore"`
	IncludeInterview bool     `json:"includeInterview"`
	AvgScore         int      `json:"avgScore"`
	CreatedAt        string   `json:"createdAt"`
}

type applyRequest struct {
	CandidateID     string   `json:"candidateId" validate:"required"`
	Name            string   `json:"name"`
	Email           string   `json:"email"`
	ExperienceYears *int     `json:"experienceYears"`
	Skills          []string `json:"skills"`
	ResumeSummary   string   `json:"resumeSummary"`
	ResumeFileName  string   `json:"resumeFileName"`
}

type applicationResponse struct {
	ID              string   `json:"id"`
	AssessmentID    string   `json:"assessmentId"`
	CandidateID     string   `json:"candidateId"`
	Name            string   `json:"name"`
	Email           string   `json:"email"`
	ExperienceYears int      `json:"experienceYears"`
	Skills          []string `json:"skills"`
	ResumeSummary   string   `json:"resumeSummary"`
	ResumeFileName  string   `json:"resumeFileName"`
	Status          string   `json:"status"`
	Score           int      `json:"score"`
	CreatedAt       string   `json:"createdAt"`
}

// submitRequest carries questions and answers as loose JSON; values are
// stringified before they reach the scorer.
type submitRequest struct {
	CandidateID string           `json:"candidateId" validate:"required"`
	Questions   []map[string]any `json:"questions"`
	Answers     map[string]any   `json:"answers"`
}

type testCasePayload struct {
	Input  string `json:"input"`
	Output string `json:"output"`
}

type questionPayload struct {
	ID            string            `json:"id"`
	Type          string            `json:"type"`
	Text          string            `json:"text"`
	Options       []string          `json:"options,omitempty"`
	CorrectAnswer string            `json:"correctAnswer,omitempty"`
	TestCases     []testCasePayload `json:"testCases,omitempty"`
}

type submissionResponse struct {
	AssessmentID string            `json:"assessmentId"`
	CandidateID  string            `json:"candidateId"`
	Questions    []questionPayload `json:"questions"`
	Answers      map[string]string `json:"answers"`
	Score        int               `json:"score"`
	Result       string            `json:"result"`
	SubmittedAt  string            `json:"submittedAt"`
}

type distributionEntry struct {
	Range string `json:"range"`
	Count int    `json:"count"`
}

type topCandidateEntry struct {
	Rank        int    `json:"rank"`
	CandidateID string `json:"candidateId"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Score       int    `json:"score"`
}

type analyticsResponse struct {
	AssessmentID    string              `json:"assessmentId"`
	Title           string              `json:"title"`
	TotalCandidates int                 `json:"totalCandidates"`
	AverageScore    int                 `json:"averageScore"`
	TopScore        int                 `json:"topScore"`
	CompletionRate  int                 `json:"completionRate"`
	Distribution    []distributionEntry `json:"scoreDistribution"`
	TopCandidates   []topCandidateEntry `json:"topCandidates"`
}

type completionRequest struct {
	CandidateID string `json:"candidateId" validate:"required"`
}

// stringify flattens a loose JSON value to the string form the scorer
// compares against. Nil becomes the empty string, not "nil".
func stringify(v any) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}

func toAssessmentListItem(a model.Assessment) assessmentListItem {
	return assessmentListItem{
		ID:               a.ID,
		Title:            a.Title,
		Role:             a.Role,
		Company:          a.Company,
		Status:           a.Status.String(),
		Duration:         a.Duration,
		Questions:        a.QuestionCount,
		IncludeInterview: a.IncludeInterview,
		CreatedAt:        formatTime(a.CreatedAt),
	}
}

func toAssessmentDetails(a model.Assessment) assessmentDetails {
	skills := a.RequiredSkills
	if skills == nil {
		skills = []string{}
	}
	return assessmentDetails{
		ID:               a.ID,
		Title:            a.Title,
		Role:             a.Role,
		Company:          a.Company,
		Description:      a.Description,
		Status:           a.Status.String(),
		Duration:         a.Duration,
		RequiredSkills:   skills,
		MinExperience:    a.MinExperience,
		MinMatchScore:    a.MinMatchScore,
		IncludeInterview: a.IncludeInterview,
		AvgScore:         a.AvgScore,
		CreatedAt:        formatTime(a.CreatedAt),
	}
}

func toApplicationResponse(a model.Application) applicationResponse {
	skills := a.Skills
	if skills == nil {
		skills = []string{}
	}
	return applicationResponse{
		ID:              a.ID,
		AssessmentID:    a.AssessmentID,
		CandidateID:     a.CandidateID,
		Name:            a.Name,
		Email:           a.Email,
		ExperienceYears: a.ExperienceYears,
		Skills:          skills,
		ResumeSummary:   a.ResumeSummary,
		ResumeFileName:  a.ResumeFileName,
		Status:          a.Status.String(),
		Score:           a.Score,
		CreatedAt:       formatTime(a.CreatedAt),
	}
}

func toQuestionPayload(q model.Question) questionPayload {
	payload := questionPayload{
		ID:            q.ID,
		Type:          q.Type,
		Text:          q.Text,
		Options:       q.Options,
		CorrectAnswer: q.CorrectAnswer,
	}
	for _, tc := range q.TestCases {
		payload.TestCases = append(payload.TestCases, testCasePayload{Input: tc.Input, Output: tc.Output})
	}
	return payload
}

func toSubmissionResponse(s model.Submission) submissionResponse {
	questions := make([]questionPayload, 0, len(s.Questions))
	for _, q := range s.Questions {
		questions = append(questions, toQuestionPayload(q))
	}
	answers := s.Answers
	if answers == nil {
		answers = map[string]string{}
	}
	return submissionResponse{
		AssessmentID: s.AssessmentID,
		CandidateID:  s.CandidateID,
		Questions:    questions,
		Answers:      answers,
		Score:        s.Score,
		Result:       s.Result.String(),
		SubmittedAt:  formatTime(s.SubmittedAt),
	}
}

func toAnalyticsResponse(r model.AnalyticsReport) analyticsResponse {
	distribution := make([]distributionEntry, 0, len(r.Distribution))
	for _, bucket := range r.Distribution {
		distribution = append(distribution, distributionEntry{Range: bucket.Range, Count: bucket.Count})
	}
	topCandidates := make([]topCandidateEntry, 0, len(r.TopCandidates))
	for _, c := range r.TopCandidates {
		topCandidates = append(topCandidates, topCandidateEntry{
			Rank:        c.Rank,
			CandidateID: c.CandidateID,
			Name:        c.Name,
			Email:       c.Email,
			Score:       c.Score,
		})
	}
	return analyticsResponse{
		AssessmentID:    r.AssessmentID,
		Title:           r.Title,
		TotalCandidates: r.TotalCandidates,
		AverageScore:    r.AverageScore,
		TopScore:        r.TopScore,
		CompletionRate:  r.CompletionRate,
		Distribution:    distribution,
		TopCandidates:   topCandidates,
	}
}

// toSubmissionQuestions lifts loose question maps into model questions,
// stringifying every field the scorer reads.
func toSubmissionQuestions(raw []map[string]any) []model.Question {
	questions := make([]model.Question, 0, len(raw))
	for _, m := range raw {
		q := model.Question{
			ID:            stringify(m["id"]),
			Type:          stringify(m["type"]),
			Text:          stringify(m["text"]),
			CorrectAnswer: stringify(m["correctAnswer"]),
		}
		if opts, ok := m["options"].([]any); ok {
			for _, opt := range opts {
				q.Options = append(q.Options, stringify(opt))
			}
		}
		questions = append(questions, q)
	}
	return questions
}

// toSubmissionAnswers stringifies a loose answers map.
func toSubmissionAnswers(raw map[string]any) map[string]string {
	answers := make(map[string]string, len(raw))
	for id, v := range raw {
		answers[id] = stringify(v)
	}
	return answers
}
