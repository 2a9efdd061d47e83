// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	repository "github.com/mergington/activities/internal/adapters/repository"
)

// Registration actions accepted under /activities/{name}/.
const (
	actionSignup     = "signup"
	actionUnregister = "unregister"
)

// RegistrationDependencies defines the interface for roster mutations.
type RegistrationDependencies interface {
	Signup(ctx context.Context, activity, email string) error
	Unregister(ctx context.Context, activity, email string) error
}

// RegistrationHandler handles signup and unregister requests.
type RegistrationHandler struct {
	deps RegistrationDependencies
}

// NewRegistrationHandler creates a new registration handler.
func NewRegistrationHandler(deps RegistrationDependencies) *RegistrationHandler {
	return &RegistrationHandler{deps: deps}
}

// HandleRegistration handles
//
//	POST /activities/{name}/signup?email=...
//	POST /activities/{name}/unregister?email=...
//
// The activity name is the path segment between /activities/ and the action;
// ServeMux hands it to us already percent-decoded, so names with spaces
// ("Tennis Club") arrive intact.
func (h *RegistrationHandler) HandleRegistration(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}

	name, action, ok := splitRegistrationPath(r.URL.Path)
	if !ok {
		http.NotFound(w, r)
		return
	}

	email := strings.TrimSpace(r.URL.Query().Get("email"))
	if email == "" {
		writeDetail(w, http.StatusBadRequest, detailEmailRequired)
		return
	}

	switch action {
	case actionSignup:
		h.signup(w, r, name, email)
	case actionUnregister:
		h.unregister(w, r, name, email)
	default:
		http.NotFound(w, r)
	}
}

func (h *RegistrationHandler) signup(w http.ResponseWriter, r *http.Request, name, email string) {
	if err := h.deps.Signup(r.Context(), name, email); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			writeDetail(w, http.StatusNotFound, detailActivityNotFound)
		case errors.Is(err, repository.ErrAlreadySignedUp):
			writeDetail(w, http.StatusBadRequest, detailAlreadySignedUp)
		default:
			writeDetail(w, http.StatusInternalServerError, err.Error())
		}
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{
		Message: fmt.Sprintf("Signed up %s for %s", email, name),
	})
}

func (h *RegistrationHandler) unregister(w http.ResponseWriter, r *http.Request, name, email string) {
	if err := h.deps.Unregister(r.Context(), name, email); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			writeDetail(w, http.StatusNotFound, detailActivityNotFound)
		case errors.Is(err, repository.ErrNotSignedUp):
			writeDetail(w, http.StatusBadRequest, detailNotSignedUp)
		default:
			writeDetail(w, http.StatusInternalServerError, err.Error())
		}
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{
		Message: fmt.Sprintf("Unregistered %s from %s", email, name),
	})
}

// splitRegistrationPath extracts the activity name and action from a path
// shaped like /activities/{name}/{action}. The name must be non-empty and
// must not span multiple segments.
func splitRegistrationPath(path string) (name, action string, ok bool) {
	rest := strings.TrimPrefix(path, "/activities/")
	idx := strings.LastIndex(rest, "/")
	if idx <= 0 || idx == len(rest)-1 {
		return "", "", false
	}
	name, action = rest[:idx], rest[idx+1:]
	if strings.Contains(name, "/") {
		return "", "", false
	}
	return name, action, true
}
