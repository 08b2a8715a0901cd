// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"

	"github.com/iitg/jobassessment/internal/domain/model"
)

// QuestionDependencies defines the interface for question generation.
type QuestionDependencies interface {
	Questions(ctx context.Context, assessmentID string) ([]model.Question, error)
}

// QuestionHandler handles generated question set requests.
type QuestionHandler struct {
	deps QuestionDependencies
}

// NewQuestionHandler creates a new question handler.
func NewQuestionHandler(deps QuestionDependencies) *QuestionHandler {
	return &QuestionHandler{deps: deps}
}

// HandleList handles GET /api/assessments/{assessmentID}/questions requests.
func (h *QuestionHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_questions"
	assessmentID, ok := parseAssessmentID(w, r, op)
	if !ok {
		return
	}
	questions, err := h.deps.Questions(r.Context(), assessmentID)
	if err != nil {
		writeStoreError(w, op, err)
		return
	}

	items := make([]questionPayload, 0, len(questions))
	for _, q := range questions {
		items = append(items, toQuestionPayload(q))
	}
	writeJSON(w, http.StatusOK, items)
}
