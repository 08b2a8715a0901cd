// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"
)

// CompletionDependencies defines the interface for completion tracking.
type CompletionDependencies interface {
	MarkAssessmentCompleted(ctx context.Context, assessmentID, candidateID string) error
	AssessmentCompleted(ctx context.Context, assessmentID, candidateID string) (bool, error)
	MarkInterviewCompleted(ctx context.Context, assessmentID, candidateID string) error
	InterviewCompleted(ctx context.Context, assessmentID, candidateID string) (bool, error)
}

// CompletionHandler handles assessment and interview completion requests.
type CompletionHandler struct {
	deps CompletionDependencies
}

// NewCompletionHandler creates a new completion handler.
func NewCompletionHandler(deps CompletionDependencies) *CompletionHandler {
	return &CompletionHandler{deps: deps}
}

// HandleGetAssessment handles GET /api/assessments/{assessmentID}/completions/{candidateID} requests.
func (h *CompletionHandler) HandleGetAssessment(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_completion"
	assessmentID, ok := parseAssessmentID(w, r, op)
	if !ok {
		return
	}
	completed, err := h.deps.AssessmentCompleted(r.Context(), assessmentID, r.PathValue("candidateID"))
	if err != nil {
		writeStoreError(w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, completedResponse{Completed: completed})
}

// HandleMarkAssessment handles POST /api/assessments/{assessmentID}/completions requests.
func (h *CompletionHandler) HandleMarkAssessment(w http.ResponseWriter, r *http.Request) {
	const op = "api.mark_completion"
	assessmentID, ok := parseAssessmentID(w, r, op)
	if !ok {
		return
	}
	candidateID, ok := h.decodeCandidate(w, r, op)
	if !ok {
		return
	}
	if err := h.deps.MarkAssessmentCompleted(r.Context(), assessmentID, candidateID); err != nil {
		writeStoreError(w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, completedResponse{Completed: true})
}

// HandleGetInterview handles GET /api/assessments/{assessmentID}/interview-completions/{candidateID} requests.
func (h *CompletionHandler) HandleGetInterview(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_interview_completion"
	assessmentID, ok := parseAssessmentID(w, r, op)
	if !ok {
		return
	}
	completed, err := h.deps.InterviewCompleted(r.Context(), assessmentID, r.PathValue("candidateID"))
	if err != nil {
		writeStoreError(w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, completedResponse{Completed: completed})
}

// HandleMarkInterview handles POST /api/assessments/{assessmentID}/interview-completions requests.
func (h *CompletionHandler) HandleMarkInterview(w http.ResponseWriter, r *http.Request) {
	const op = "api.mark_interview_completion"
	assessmentID, ok := parseAssessmentID(w, r, op)
	if !ok {
		return
	}
	candidateID, ok := h.decodeCandidate(w, r, op)
	if !ok {
		return
	}
	if err := h.deps.MarkInterviewCompleted(r.Context(), assessmentID, candidateID); err != nil {
		writeStoreError(w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, completedResponse{Completed: true})
}

func (h *CompletionHandler) decodeCandidate(w http.ResponseWriter, r *http.Request, op string) (string, bool) {
	var req completionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return "", false
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return "", false
	}
	return req.CandidateID, true
}
