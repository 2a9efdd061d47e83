// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"errors"
	"sync"

	repository "github.com/mergington/activities/internal/adapters/repository"
	"github.com/mergington/activities/internal/domain/model"
	"github.com/mergington/activities/pkg/logger"
	"github.com/mergington/activities/pkg/metrics"
)

// Service owns the activity registry and exposes the three operations the
// HTTP API needs: list, signup, unregister.
type Service struct {
	mu sync.RWMutex

	registry repository.Store
	seedFile string

	started bool

	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithSeedFile makes Start seed the registry from a YAML file instead of
// the built-in roster.
func WithSeedFile(path string) Option {
	return func(s *Service) {
		s.seedFile = path
	}
}

// WithRegistry injects a pre-built registry store. Start skips construction
// when one is set.
func WithRegistry(store repository.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.registry = store
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start seeds the registry and marks the service ready.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}
	if s.logger == nil {
		s.logger = logger.Get()
	}

	if s.registry == nil {
		var opts []repository.Option
		if s.seedFile != "" {
			opts = append(opts, repository.WithSeedFile(s.seedFile))
			s.logger.Info(ctx, "seeding registry from file", logger.String("seed_file", s.seedFile))
		}
		store, err := repository.NewMapStore(ctx, opts...)
		if err != nil {
			return err
		}
		s.registry = store
	}

	s.started = true
	s.logger.Info(ctx, "activities service started",
		logger.Int("activities", s.registry.Count(ctx)),
		logger.Int("participants", s.registry.ParticipantCount(ctx)),
	)
	return nil
}

// Stop marks the service stopped. The registry is in-memory only, so there
// is nothing to flush; state is discarded with the process.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.started = false
}

// Activities returns a snapshot of the full registry keyed by name.
func (s *Service) Activities(ctx context.Context) map[string]model.Activity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.registry.List(ctx)
}

// Signup enrolls email in the named activity.
func (s *Service) Signup(ctx context.Context, activity, email string) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if err := s.registry.Signup(ctx, activity, email); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			metrics.RecordRejection("not_found")
		case errors.Is(err, repository.ErrAlreadySignedUp):
			metrics.RecordRejection("duplicate")
		}
		return err
	}

	s.logger.Info(ctx, "signed up",
		logger.String("activity", activity),
		logger.String("email", email),
	)
	return nil
}

// Unregister removes email from the named activity.
func (s *Service) Unregister(ctx context.Context, activity, email string) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if err := s.registry.Unregister(ctx, activity, email); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			metrics.RecordRejection("not_found")
		case errors.Is(err, repository.ErrNotSignedUp):
			metrics.RecordRejection("not_signed_up")
		}
		return err
	}

	s.logger.Info(ctx, "unregistered",
		logger.String("activity", activity),
		logger.String("email", email),
	)
	return nil
}

// GetStats returns service counters for the stats endpoint.
func (s *Service) GetStats() model.RegistryStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := model.RegistryStats{Started: s.started}
	if s.registry != nil {
		ctx := context.Background()
		stats.Activities = s.registry.Count(ctx)
		stats.Participants = s.registry.ParticipantCount(ctx)
	}
	return stats
}
