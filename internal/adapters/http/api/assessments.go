// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/iitg/jobassessment/internal/domain/model"
)

// AssessmentDependencies defines the interface for assessment operations.
type AssessmentDependencies interface {
	CreateAssessment(ctx context.Context, assessment model.Assessment) (model.Assessment, error)
	ListAssessments(ctx context.Context) ([]model.Assessment, error)
	GetAssessment(ctx context.Context, id string) (model.Assessment, error)
	UpdateAssessment(ctx context.Context, id string, patch model.AssessmentPatch) (model.Assessment, error)
}

// AssessmentHandler handles assessment CRUD requests.
type AssessmentHandler struct {
	deps AssessmentDependencies
}

// NewAssessmentHandler creates a new assessment handler.
func NewAssessmentHandler(deps AssessmentDependencies) *AssessmentHandler {
	return &AssessmentHandler{deps: deps}
}

// HandleList handles GET /api/assessments requests.
func (h *AssessmentHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	const op = "api.list_assessments"
	assessments, err := h.deps.ListAssessments(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}

	items := make([]assessmentListItem, 0, len(assessments))
	for _, a := range assessments {
		items = append(items, toAssessmentListItem(a))
	}
	writeJSON(w, http.StatusOK, items)
}

// HandleCreate handles POST /api/assessments requests. New assessments
// start active with a zero cached average.
func (h *AssessmentHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	const op = "api.create_assessment"
	var req createAssessmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}

	assessment := model.Assessment{
		Title:            req.Title,
		Role:             req.Role,
		Company:          req.Company,
		Description:      req.Description,
		Status:           model.AssessmentActive,
		Duration:         req.Duration,
		QuestionCount:    req.Questions,
		RequiredSkills:   req.RequiredSkills,
		IncludeInterview: true,
		QuestionConfig:   req.QuestionConfig.toModel(),
	}
	if req.MinExperience != nil {
		assessment.MinExperience = *req.MinExperience
	}
	if req.MinMatchScore != nil {
		assessment.MinMatchScore = *req.MinMatchScore
	}
	if req.IncludeInterview != nil {
		assessment.IncludeInterview = *req.IncludeInterview
	}

	created, err := h.deps.CreateAssessment(r.Context(), assessment)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, createAssessmentResponse{ID: created.ID})
}

// HandleGet handles GET /api/assessments/{assessmentID} requests.
func (h *AssessmentHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_assessment"
	id, ok := parseAssessmentID(w, r, op)
	if !ok {
		return
	}
	assessment, err := h.deps.GetAssessment(r.Context(), id)
	if err != nil {
		writeStoreError(w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, toAssessmentDetails(assessment))
}

// HandleUpdate handles PATCH /api/assessments/{assessmentID} requests.
// Absent fields are left unchanged.
func (h *AssessmentHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	const op = "api.update_assessment"
	id, ok := parseAssessmentID(w, r, op)
	if !ok {
		return
	}
	var req updateAssessmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}

	status, err := patchStatus(req.Status)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_status", WrapKind(op, ErrBadRequest, err))
		return
	}

	patch := model.AssessmentPatch{
		Title:            req.Title,
		Role:             req.Role,
		Company:          req.Company,
		Description:      req.Description,
		Status:           status,
		Duration:         req.Duration,
		QuestionCount:    req.Questions,
		RequiredSkills:   req.RequiredSkills,
		MinExperience:    req.MinExperience,
		MinMatchScore:    req.MinMatchScore,
		IncludeInterview: req.IncludeInterview,
		QuestionConfig:   req.QuestionConfig.toModel(),
	}

	updated, err := h.deps.UpdateAssessment(r.Context(), id, patch)
	if err != nil {
		writeStoreError(w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, toAssessmentDetails(updated))
}
