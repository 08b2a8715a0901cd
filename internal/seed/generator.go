package seed

import (
	"fmt"
	"math/rand"
)

// Demo data pools.
var (
	roles = []string{
		"Backend Engineer",
		"Frontend Engineer",
		"Data Engineer",
		"Platform Engineer",
		"Mobile Engineer",
	}
	companies = []string{"Acme", "Globex", "Initech", "Umbrella", "Stark Industries"}
	skillPool = []string{"go", "sql", "docker", "kubernetes", "react", "python", "kafka", "aws"}
	names     = []string{"Alice", "Bob", "Carol", "Dave", "Erin", "Frank", "Grace", "Heidi"}
)

// Requirement bounds for generated assessments.
const (
	minRequiredSkills = 2
	maxRequiredSkills = 4
	maxMinExperience  = 5
	minMatchScoreLow  = 40
	minMatchScoreHigh = 80
)

// Generator produces reproducible demo entities.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator creates a generator seeded for reproducible runs.
func NewGenerator(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// assessmentRequest is the create-assessment payload.
type assessmentRequest struct {
	Title          string   `json:"title"`
	Role           string   `json:"role"`
	Company        string   `json:"company"`
	Description    string   `json:"description"`
	Duration       int      `json:"duration"`
	Questions      int      `json:"questions"`
	RequiredSkills []string `json:"requiredSkills"`
	MinExperience  int      `json:"minExperience"`
	MinMatchScore  int      `json:"minMatchScore"`
}

// applicationRequest is the apply payload.
type applicationRequest struct {
	CandidateID     string   `json:"candidateId"`
	Name            string   `json:"name"`
	Email           string   `json:"email"`
	ExperienceYears int      `json:"experienceYears"`
	Skills          []string `json:"skills"`
}

// Assessment builds the i-th demo assessment.
func (g *Generator) Assessment(i int) assessmentRequest {
	role := roles[g.rng.Intn(len(roles))]
	company := companies[g.rng.Intn(len(companies))]

	skillCount := minRequiredSkills + g.rng.Intn(maxRequiredSkills-minRequiredSkills+1)
	skills := g.pickSkills(skillCount)

	return assessmentRequest{
		Title:          fmt.Sprintf("%s Assessment %d", role, i+1),
		Role:           role,
		Company:        company,
		Description:    fmt.Sprintf("Hiring round for %s at %s", role, company),
		Duration:       60,
		Questions:      10,
		RequiredSkills: skills,
		MinExperience:  g.rng.Intn(maxMinExperience + 1),
		MinMatchScore:  minMatchScoreLow + g.rng.Intn(minMatchScoreHigh-minMatchScoreLow+1),
	}
}

// Candidate builds the i-th demo candidate for an assessment. Candidate
// skills overlap the required set to a random degree so match scores
// spread across the range.
func (g *Generator) Candidate(i int, requiredSkills []string) applicationRequest {
	name := names[g.rng.Intn(len(names))]
	candidateID := fmt.Sprintf("candidate-%d-%d", i+1, g.rng.Intn(100000))

	// Keep a random prefix of the requirements, then pad with noise.
	kept := g.rng.Intn(len(requiredSkills) + 1)
	skills := append([]string(nil), requiredSkills[:kept]...)
	skills = append(skills, g.pickSkills(g.rng.Intn(3))...)

	return applicationRequest{
		CandidateID:     candidateID,
		Name:            fmt.Sprintf("%s %d", name, i+1),
		Email:           fmt.Sprintf("%s%d@example.com", name, i+1),
		ExperienceYears: g.rng.Intn(9),
		Skills:          skills,
	}
}

// Answers answers the given question set, answering each MCQ correctly
// with the given probability.
func (g *Generator) Answers(questions []map[string]any, correctRate float64) map[string]any {
	answers := make(map[string]any, len(questions))
	for _, q := range questions {
		id, _ := q["id"].(string)
		if id == "" {
			continue
		}
		if t, _ := q["type"].(string); t != "mcq" {
			answers[id] = "free-form answer"
			continue
		}

		correct, _ := q["correctAnswer"].(string)
		if g.rng.Float64() < correctRate {
			answers[id] = correct
			continue
		}
		answers[id] = "Option X"
	}
	return answers
}

func (g *Generator) pickSkills(n int) []string {
	perm := g.rng.Perm(len(skillPool))
	if n > len(perm) {
		n = len(perm)
	}
	skills := make([]string, 0, n)
	for _, idx := range perm[:n] {
		skills = append(skills, skillPool[idx])
	}
	return skills
}
