// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/iitg/jobassessment/internal/domain/model"
)

// SubmissionDependencies defines the interface for submission operations.
type SubmissionDependencies interface {
	Submit(ctx context.Context, submission model.Submission) (model.Submission, error)
	ListSubmissions(ctx context.Context, assessmentID string) ([]model.Submission, error)
	GetSubmission(ctx context.Context, assessmentID, candidateID string) (model.Submission, error)
}

// SubmissionHandler handles submission requests.
type SubmissionHandler struct {
	deps SubmissionDependencies
}

// NewSubmissionHandler creates a new submission handler.
func NewSubmissionHandler(deps SubmissionDependencies) *SubmissionHandler {
	return &SubmissionHandler{deps: deps}
}

// HandleList handles GET /api/assessments/{assessmentID}/submissions requests.
func (h *SubmissionHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	const op = "api.list_submissions"
	assessmentID, ok := parseAssessmentID(w, r, op)
	if !ok {
		return
	}
	submissions, err := h.deps.ListSubmissions(r.Context(), assessmentID)
	if err != nil {
		writeStoreError(w, op, err)
		return
	}

	items := make([]submissionResponse, 0, len(submissions))
	for _, s := range submissions {
		items = append(items, toSubmissionResponse(s))
	}
	writeJSON(w, http.StatusOK, items)
}

// HandleGet handles GET /api/assessments/{assessmentID}/submissions/{candidateID} requests.
func (h *SubmissionHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_submission"
	assessmentID, ok := parseAssessmentID(w, r, op)
	if !ok {
		return
	}
	submission, err := h.deps.GetSubmission(r.Context(), assessmentID, r.PathValue("candidateID"))
	if err != nil {
		writeStoreError(w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, toSubmissionResponse(submission))
}

// HandleSubmit handles POST /api/assessments/{assessmentID}/submissions
// requests. Question and answer payloads may be heterogeneous JSON;
// values are stringified before grading.
func (h *SubmissionHandler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	const op = "api.submit"
	assessmentID, ok := parseAssessmentID(w, r, op)
	if !ok {
		return
	}
	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}

	submission := model.Submission{
		AssessmentID: assessmentID,
		CandidateID:  req.CandidateID,
		Questions:    toSubmissionQuestions(req.Questions),
		Answers:      toSubmissionAnswers(req.Answers),
	}

	stored, err := h.deps.Submit(r.Context(), submission)
	if err != nil {
		writeStoreError(w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, toSubmissionResponse(stored))
}
