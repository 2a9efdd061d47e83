// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"

	"github.com/mergington/activities/internal/domain/model"
)

// ListDependencies defines the interface for listing activities.
type ListDependencies interface {
	Activities(ctx context.Context) map[string]model.Activity
}

// ActivitiesHandler handles registry listing requests.
type ActivitiesHandler struct {
	deps ListDependencies
}

// NewActivitiesHandler creates a new activities handler.
func NewActivitiesHandler(deps ListDependencies) *ActivitiesHandler {
	return &ActivitiesHandler{deps: deps}
}

// HandleList handles GET /activities requests. The response is a JSON
// object keyed by activity name; each record carries description, schedule,
// max_participants, and the participant roster.
func (h *ActivitiesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, h.deps.Activities(r.Context()))
}
