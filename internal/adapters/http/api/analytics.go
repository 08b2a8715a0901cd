// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"

	"github.com/iitg/jobassessment/internal/domain/model"
)

// AnalyticsDependencies defines the interface for analytics operations.
type AnalyticsDependencies interface {
	Analytics(ctx context.Context, assessmentID string) (model.AnalyticsReport, error)
}

// AnalyticsHandler handles analytics report requests.
type AnalyticsHandler struct {
	deps AnalyticsDependencies
}

// NewAnalyticsHandler creates a new analytics handler.
func NewAnalyticsHandler(deps AnalyticsDependencies) *AnalyticsHandler {
	return &AnalyticsHandler{deps: deps}
}

// HandleGet handles GET /api/assessments/{assessmentID}/analytics requests.
func (h *AnalyticsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_analytics"
	assessmentID, ok := parseAssessmentID(w, r, op)
	if !ok {
		return
	}
	report, err := h.deps.Analytics(r.Context(), assessmentID)
	if err != nil {
		writeStoreError(w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, toAnalyticsResponse(report))
}
