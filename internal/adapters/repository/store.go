// Package repository defines the activity registry interface and errors.
package repository

import (
	"context"

	"github.com/mergington/activities/internal/domain/model"
)

// Store provides read/write access to the activity registry.
type Store interface {
	// List returns a snapshot of every activity keyed by name.
	List(ctx context.Context) map[string]model.Activity

	// Get returns the activity registered under name.
	// Returns ErrNotFound if the name is unknown.
	Get(ctx context.Context, name string) (model.Activity, error)

	// Signup appends email to the roster for name, preserving insertion order.
	// Returns ErrNotFound for an unknown activity and ErrAlreadySignedUp when
	// the email is already on the roster.
	Signup(ctx context.Context, name, email string) error

	// Unregister removes email from the roster for name.
	// Returns ErrNotFound for an unknown activity and ErrNotSignedUp when the
	// email is not on the roster.
	Unregister(ctx context.Context, name, email string) error

	// Count returns the number of activities tracked in the registry.
	Count(ctx context.Context) int

	// ParticipantCount returns the total roster size across all activities.
	ParticipantCount(ctx context.Context) int
}
