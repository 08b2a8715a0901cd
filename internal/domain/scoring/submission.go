package scoring

import (
	"strings"

	"github.com/iitg/jobassessment/internal/domain/model"
)

// SubmissionGrade is the outcome of grading a submission.
type SubmissionGrade struct {
	Score  int // [0,100]
	Result model.SubmissionResult
}

// ScoreSubmission grades the MCQ answers of a submission and classifies
// the score against the fixed pass threshold.
func ScoreSubmission(questions []model.Question, answers map[string]string) SubmissionGrade {
	score := SubmissionScore(questions, answers)
	return SubmissionGrade{
		Score:  score,
		Result: ClassifySubmission(score),
	}
}

// SubmissionScore computes the 0-100 MCQ score of a submission.
//
// Only questions of type "mcq" (case-insensitive) are graded;
// descriptive and coding questions need grading outside this package,
// so they are excluded from the denominator entirely. A submission with
// no MCQ questions scores 0. An answer counts as correct only when the
// question carries a correct answer, the candidate answered, and the
// two compare equal ignoring case. A missing answer is incorrect, never
// unknown.
//
// The question list is a sequence, not a set: when duplicate ids occur,
// every occurrence counts toward the denominator while the expected
// answer is looked up last-occurrence-wins.
func SubmissionScore(questions []model.Question, answers map[string]string) int {
	mcq := make([]model.Question, 0, len(questions))
	for _, q := range questions {
		if strings.EqualFold(q.Type, "mcq") {
			mcq = append(mcq, q)
		}
	}
	if len(mcq) == 0 {
		return 0
	}

	// Last occurrence wins for the expected-value lookup.
	expected := make(map[string]string, len(mcq))
	for _, q := range mcq {
		expected[q.ID] = q.CorrectAnswer
	}

	correct := 0
	for _, q := range mcq {
		want := expected[q.ID]
		if want == "" {
			continue
		}
		given, answered := answers[q.ID]
		if answered && strings.EqualFold(want, given) {
			correct++
		}
	}

	return clamp(round(float64(correct) / float64(len(mcq)) * 100.0))
}
