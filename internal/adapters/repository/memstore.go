package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/mergington/activities/internal/domain/model"
	"github.com/mergington/activities/pkg/metrics"
)

// Map-backed, in-memory Store implementation.
//
// The registry is a name-keyed map guarded by a RWMutex. The source system
// mutated an unguarded module-level dict; the lock is the explicit concurrency
// requirement that design left unstated. Roster slices keep insertion order,
// and every read hands out clones so callers never alias live state.

// MapStore holds the activity registry for the process lifetime.
type MapStore struct {
	mu         sync.RWMutex
	activities map[string]*model.Activity

	seed     map[string]model.Activity
	seedFile string
}

// NewMapStore creates a registry seeded from, in order of preference: the
// seed file option, the seed map option, or the built-in default roster.
func NewMapStore(ctx context.Context, opts ...Option) (*MapStore, error) {
	s := &MapStore{}
	for _, opt := range opts {
		opt(s)
	}

	seed := s.seed
	if s.seedFile != "" {
		loaded, err := loadSeedFile(s.seedFile)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoadSeed, err)
		}
		seed = loaded
	}
	if seed == nil {
		seed = DefaultSeed()
	}

	s.activities = make(map[string]*model.Activity, len(seed))
	for name, act := range seed {
		cp := act.Clone()
		s.activities[name] = &cp
	}

	metrics.UpdateActivityCount(len(s.activities))
	metrics.UpdateParticipantCount(s.ParticipantCount(ctx))
	return s, nil
}

// List returns a snapshot of every activity keyed by name.
func (s *MapStore) List(_ context.Context) map[string]model.Activity {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]model.Activity, len(s.activities))
	for name, act := range s.activities {
		out[name] = act.Clone()
	}
	return out
}

// Get returns the activity registered under name.
func (s *MapStore) Get(_ context.Context, name string) (model.Activity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	act, ok := s.activities[name]
	if !ok {
		return model.Activity{}, ErrNotFound
	}
	return act.Clone(), nil
}

// Signup appends email to the roster for name.
//
// The max_participants cap is intentionally not checked here; the source
// system never enforced it and the registry keeps that behavior.
func (s *MapStore) Signup(ctx context.Context, name, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	act, ok := s.activities[name]
	if !ok {
		return ErrNotFound
	}
	if act.HasParticipant(email) {
		return ErrAlreadySignedUp
	}
	act.Participants = append(act.Participants, email)

	metrics.RecordSignup()
	metrics.UpdateParticipantCount(s.participantCountLocked())
	return nil
}

// Unregister removes email from the roster for name, keeping the order of
// the remaining participants.
func (s *MapStore) Unregister(ctx context.Context, name, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	act, ok := s.activities[name]
	if !ok {
		return ErrNotFound
	}
	idx := -1
	for i, p := range act.Participants {
		if p == email {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrNotSignedUp
	}
	act.Participants = append(act.Participants[:idx], act.Participants[idx+1:]...)

	metrics.RecordUnregister()
	metrics.UpdateParticipantCount(s.participantCountLocked())
	return nil
}

// Count returns the number of activities tracked in the registry.
func (s *MapStore) Count(_ context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.activities)
}

// ParticipantCount returns the total roster size across all activities.
func (s *MapStore) ParticipantCount(_ context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.participantCountLocked()
}

func (s *MapStore) participantCountLocked() int {
	total := 0
	for _, act := range s.activities {
		total += len(act.Participants)
	}
	return total
}

// loadSeedFile reads a YAML registry seed of the form:
//
//	activities:
//	  Chess Club:
//	    description: ...
//	    schedule: ...
//	    max_participants: 12
//	    participants: [a@mergington.edu]
func loadSeedFile(path string) (map[string]model.Activity, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, err
	}

	var out struct {
		Activities map[string]model.Activity `koanf:"activities"`
	}
	if err := k.UnmarshalWithConf("", &out, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, err
	}
	if len(out.Activities) == 0 {
		return nil, fmt.Errorf("no activities in %s", path)
	}
	return out.Activities, nil
}
