// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/iitg/jobassessment/internal/domain/model"
)

// ApplicationDependencies defines the interface for application operations.
type ApplicationDependencies interface {
	Apply(ctx context.Context, application model.Application) (model.Application, error)
	ListApplications(ctx context.Context, assessmentID string) ([]model.Application, error)
	GetApplication(ctx context.Context, assessmentID, candidateID string) (model.Application, error)
}

// ApplicationHandler handles candidate application requests.
type ApplicationHandler struct {
	deps ApplicationDependencies
}

// NewApplicationHandler creates a new application handler.
func NewApplicationHandler(deps ApplicationDependencies) *ApplicationHandler {
	return &ApplicationHandler{deps: deps}
}

// HandleList handles GET /api/assessments/{assessmentID}/applications requests.
func (h *ApplicationHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	const op = "api.list_applications"
	assessmentID, ok := parseAssessmentID(w, r, op)
	if !ok {
		return
	}
	applications, err := h.deps.ListApplications(r.Context(), assessmentID)
	if err != nil {
		writeStoreError(w, op, err)
		return
	}

	items := make([]applicationResponse, 0, len(applications))
	for _, a := range applications {
		items = append(items, toApplicationResponse(a))
	}
	writeJSON(w, http.StatusOK, items)
}

// HandleGet handles GET /api/assessments/{assessmentID}/applications/{candidateID} requests.
func (h *ApplicationHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_application"
	assessmentID, ok := parseAssessmentID(w, r, op)
	if !ok {
		return
	}
	application, err := h.deps.GetApplication(r.Context(), assessmentID, r.PathValue("candidateID"))
	if err != nil {
		writeStoreError(w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, toApplicationResponse(application))
}

// HandleApply handles POST /api/assessments/{assessmentID}/applications
// requests: the application is match-scored, classified and stored.
func (h *ApplicationHandler) HandleApply(w http.ResponseWriter, r *http.Request) {
	const op = "api.apply"
	assessmentID, ok := parseAssessmentID(w, r, op)
	if !ok {
		return
	}
	var req applyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}

	application := model.Application{
		AssessmentID:   assessmentID,
		CandidateID:    req.CandidateID,
		Name:           req.Name,
		Email:          req.Email,
		Skills:         req.Skills,
		ResumeSummary:  req.ResumeSummary,
		ResumeFileName: req.ResumeFileName,
	}
	if req.ExperienceYears != nil {
		application.ExperienceYears = *req.ExperienceYears
	}

	stored, err := h.deps.Apply(r.Context(), application)
	if err != nil {
		writeStoreError(w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, toApplicationResponse(stored))
}
