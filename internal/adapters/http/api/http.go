// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/mergington/activities/internal/domain/model"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	// Activities returns a snapshot of the registry keyed by name.
	Activities(ctx context.Context) map[string]model.Activity

	// Signup enrolls email in the named activity.
	Signup(ctx context.Context, activity, email string) error

	// Unregister removes email from the named activity.
	Unregister(ctx context.Context, activity, email string) error
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler       *HealthHandler
	statsHandler        *StatsHandler
	activitiesHandler   *ActivitiesHandler
	registrationHandler *RegistrationHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider) *Server {
	return &Server{
		healthHandler:       NewHealthHandler(),
		statsHandler:        NewStatsHandler(statsProvider),
		activitiesHandler:   NewActivitiesHandler(deps),
		registrationHandler: NewRegistrationHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(_ context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/activities", RequestID(MetricsMiddleware(s.activitiesHandler.HandleList, "activities")))
	mux.HandleFunc("/activities/", RequestID(MetricsMiddleware(s.registrationHandler.HandleRegistration, "registration")))
}

// messageResponse mirrors the confirmation shape for mutating endpoints.
type messageResponse struct {
	Message string `json:"message"`
}

// detailResponse mirrors the error shape: {"detail": "..."}.
type detailResponse struct {
	Detail string `json:"detail"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, detailResponse{Detail: detail})
}
