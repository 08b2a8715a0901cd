package scoring

import "github.com/iitg/jobassessment/internal/domain/model"

// MatchInput carries the flat values needed to match a candidate
// profile against an assessment's requirements.
type MatchInput struct {
	RequiredSkills  []string
	MinExperience   int // years; <= 0 means no requirement
	MinMatchScore   int // shortlisting threshold [0,100]
	CandidateSkills []string
	ExperienceYears int
}

// MatchResult is the outcome of match scoring an application.
type MatchResult struct {
	Score   int // [0,100]
	Outcome model.ApplicationStatus
}

// ScoreApplication computes an application's 0-100 match score and
// classifies it against the assessment's shortlisting threshold.
//
// Skills contribute 70% of the score, experience 30%. An assessment
// with no required skills counts as a full skill match, and a
// min-experience of zero counts as a full experience match; a candidate
// exceeding the experience requirement saturates at 100.
func ScoreApplication(in MatchInput) MatchResult {
	score := MatchScore(in.RequiredSkills, in.CandidateSkills, in.MinExperience, in.ExperienceYears)
	return MatchResult{
		Score:   score,
		Outcome: ClassifyApplication(score, in.MinMatchScore),
	}
}

// MatchScore computes the raw 0-100 match score from required skills,
// candidate skills and the experience requirement. Inputs need not be
// normalized; blanks are dropped and comparison is case-insensitive.
func MatchScore(requiredSkills, candidateSkills []string, minExperience, experienceYears int) int {
	candidate := make(map[string]struct{}, len(candidateSkills))
	for _, skill := range NormalizeSkills(candidateSkills) {
		candidate[skill] = struct{}{}
	}

	// Distinct required skills; a list of blanks is an empty requirement.
	required := make(map[string]struct{}, len(requiredSkills))
	for _, skill := range NormalizeSkills(requiredSkills) {
		required[skill] = struct{}{}
	}

	matched := 0
	for skill := range required {
		if _, ok := candidate[skill]; ok {
			matched++
		}
	}

	skillMatchScore := 100.0
	if len(required) > 0 {
		skillMatchScore = float64(matched) / float64(len(required)) * 100.0
	}

	experienceScore := 100.0
	if minExperience > 0 {
		experienceScore = float64(experienceYears) / float64(minExperience) * 100.0
		if experienceScore > 100.0 {
			experienceScore = 100.0
		}
	}

	return clamp(round(skillMatchScore*skillWeight + experienceScore*experienceWeight))
}
