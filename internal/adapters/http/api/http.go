// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/iitg/jobassessment/internal/domain/model"
)

// Dependencies required by HTTP handlers. Using an interface bundle
// keeps the handler layer loosely coupled to the service implementation.
type Dependencies interface {
	AssessmentDependencies
	ApplicationDependencies
	SubmissionDependencies
	AnalyticsDependencies
	QuestionDependencies
	CompletionDependencies
}

// Server wires HTTP routes for the assessment API.
type Server struct {
	healthHandler      *HealthHandler
	statsHandler       *StatsHandler
	assessmentHandler  *AssessmentHandler
	applicationHandler *ApplicationHandler
	submissionHandler  *SubmissionHandler
	analyticsHandler   *AnalyticsHandler
	questionHandler    *QuestionHandler
	completionHandler  *CompletionHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider) *Server {
	return &Server{
		healthHandler:      NewHealthHandler(),
		statsHandler:       NewStatsHandler(statsProvider),
		assessmentHandler:  NewAssessmentHandler(deps),
		applicationHandler: NewApplicationHandler(deps),
		submissionHandler:  NewSubmissionHandler(deps),
		analyticsHandler:   NewAnalyticsHandler(deps),
		questionHandler:    NewQuestionHandler(deps),
		completionHandler:  NewCompletionHandler(deps),
	}
}

// Register attaches all HTTP routes to mux. Route patterns rely on the
// method and wildcard matching of net/http's ServeMux.
func (s *Server) Register(_ context.Context, mux *http.ServeMux) {
	mux.HandleFunc("GET /healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("GET /health", MetricsMiddleware(s.healthHandler.HandleLiveness, "health"))
	mux.HandleFunc("GET /stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("GET /{$}", s.healthHandler.HandleRoot)

	mux.HandleFunc("GET /api/assessments", MetricsMiddleware(s.assessmentHandler.HandleList, "assessments"))
	mux.HandleFunc("POST /api/assessments", MetricsMiddleware(s.assessmentHandler.HandleCreate, "assessments"))
	mux.HandleFunc("GET /api/assessments/{assessmentID}", MetricsMiddleware(s.assessmentHandler.HandleGet, "assessment"))
	mux.HandleFunc("PATCH /api/assessments/{assessmentID}", MetricsMiddleware(s.assessmentHandler.HandleUpdate, "assessment"))

	mux.HandleFunc("GET /api/assessments/{assessmentID}/applications", MetricsMiddleware(s.applicationHandler.HandleList, "applications"))
	mux.HandleFunc("POST /api/assessments/{assessmentID}/applications", MetricsMiddleware(s.applicationHandler.HandleApply, "applications"))
	mux.HandleFunc("GET /api/assessments/{assessmentID}/applications/{candidateID}", MetricsMiddleware(s.applicationHandler.HandleGet, "application"))

	mux.HandleFunc("GET /api/assessments/{assessmentID}/submissions", MetricsMiddleware(s.submissionHandler.HandleList, "submissions"))
	mux.HandleFunc("POST /api/assessments/{assessmentID}/submissions", MetricsMiddleware(s.submissionHandler.HandleSubmit, "submissions"))
	mux.HandleFunc("GET /api/assessments/{assessmentID}/submissions/{candidateID}", MetricsMiddleware(s.submissionHandler.HandleGet, "submission"))

	mux.HandleFunc("GET /api/assessments/{assessmentID}/analytics", MetricsMiddleware(s.analyticsHandler.HandleGet, "analytics"))
	mux.HandleFunc("GET /api/assessments/{assessmentID}/questions", MetricsMiddleware(s.questionHandler.HandleList, "questions"))

	mux.HandleFunc("GET /api/assessments/{assessmentID}/completions/{candidateID}", MetricsMiddleware(s.completionHandler.HandleGetAssessment, "completions"))
	mux.HandleFunc("POST /api/assessments/{assessmentID}/completions", MetricsMiddleware(s.completionHandler.HandleMarkAssessment, "completions"))
	mux.HandleFunc("GET /api/assessments/{assessmentID}/interview-completions/{candidateID}", MetricsMiddleware(s.completionHandler.HandleGetInterview, "interview_completions"))
	mux.HandleFunc("POST /api/assessments/{assessmentID}/interview-completions", MetricsMiddleware(s.completionHandler.HandleMarkInterview, "interview_completions"))
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// writeStoreError translates a service error into the matching HTTP
// response: unknown entities map to 404, everything else to 500.
func writeStoreError(w http.ResponseWriter, op string, err error) {
	if isNotFound(err) {
		writeError(w, http.StatusNotFound, "not_found", WrapKind(op, ErrNotFound, err))
		return
	}
	writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
}

// completedResponse is the body of completion lookups and marks.
type completedResponse struct {
	Completed bool `json:"completed"`
}

// parseAssessmentID validates the assessment id path variable before it
// reaches the service. Assessment ids are store-assigned UUIDs, so
// anything else is malformed rather than merely unknown. Writes a 400
// and returns false on a bad id.
func parseAssessmentID(w http.ResponseWriter, r *http.Request, op string) (string, bool) {
	id := r.PathValue("assessmentID")
	if _, err := uuid.Parse(id); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request",
			WrapKind(op, ErrBadRequest, fmt.Errorf("invalid assessment id %q", id)))
		return "", false
	}
	return id, true
}

// patchStatus parses an optional status token for PATCH requests.
func patchStatus(raw *string) (*model.AssessmentStatus, error) {
	if raw == nil {
		return nil, nil
	}
	status, err := model.ParseAssessmentStatus(*raw)
	if err != nil {
		return nil, err
	}
	return &status, nil
}
