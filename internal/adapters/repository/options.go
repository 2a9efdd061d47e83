// Package repository defines the activity registry interface and errors.
package repository

import "github.com/mergington/activities/internal/domain/model"

// Option applies a configuration option to the MapStore.
type Option func(*MapStore)

// WithSeed replaces the default registry seed with the given activities.
func WithSeed(seed map[string]model.Activity) Option {
	return func(s *MapStore) {
		s.seed = seed
	}
}

// WithSeedFile loads the registry seed from a YAML file. Takes precedence
// over WithSeed when both are set.
func WithSeedFile(path string) Option {
	return func(s *MapStore) {
		s.seedFile = path
	}
}
