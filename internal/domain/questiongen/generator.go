// Package questiongen produces placeholder question sets for an
// assessment. Real question sourcing lives outside this service; the
// generator only honors the assessment's question configuration.
package questiongen

import (
	"strconv"

	"github.com/iitg/jobassessment/internal/domain/model"
)

// Default question counts used when an assessment has no question
// configuration.
const (
	defaultMCQCount         = 5
	defaultDescriptiveCount = 3
	defaultDSACount         = 2
)

// Generator builds question sets from an assessment's question config.
type Generator struct {
	mcqCount         int
	descriptiveCount int
	dsaCount         int
}

// New creates a generator with configuration options.
func New(opts ...Option) *Generator {
	g := &Generator{
		mcqCount:         defaultMCQCount,
		descriptiveCount: defaultDescriptiveCount,
		dsaCount:         defaultDSACount,
	}

	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Generate returns the question set for the given config. A nil config
// falls back to the generator defaults; question ids are sequential
// strings starting at "1".
func (g *Generator) Generate(config *model.QuestionConfig) []model.Question {
	mcqCount, descriptiveCount, dsaCount := g.mcqCount, g.descriptiveCount, g.dsaCount
	if config != nil {
		mcqCount, descriptiveCount, dsaCount = config.MCQCount, config.DescriptiveCount, config.DSACount
	}

	questions := make([]model.Question, 0, mcqCount+descriptiveCount+dsaCount)
	next := 1

	for i := 0; i < mcqCount; i++ {
		id := strconv.Itoa(next)
		next++
		questions = append(questions, model.Question{
			ID:            id,
			Type:          "mcq",
			Text:          "Sample MCQ question " + id,
			Options:       []string{"Option A", "Option B", "Option C", "Option D"},
			CorrectAnswer: "Option A",
		})
	}

	for i := 0; i < descriptiveCount; i++ {
		id := strconv.Itoa(next)
		next++
		questions = append(questions, model.Question{
			ID:   id,
			Type: "subjective",
			Text: "Sample descriptive question " + id,
		})
	}

	for i := 0; i < dsaCount; i++ {
		id := strconv.Itoa(next)
		next++
		questions = append(questions, model.Question{
			ID:        id,
			Type:      "coding",
			Text:      "Sample coding question " + id,
			TestCases: []model.TestCase{{Input: "input", Output: "output"}},
		})
	}

	return questions
}
