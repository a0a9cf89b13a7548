// Package store owns the canonical profile value and its persisted slot.
package store

import (
	"context"
	"errors"
	"io"
	"sync"

	"github.com/alexisbeaulieu97/linkforce/internal/logger"
	"github.com/alexisbeaulieu97/linkforce/internal/profile"
)

// Store holds the current profile. Readers get copies; every change goes
// through Replace or Apply.
type Store struct {
	slot Slot
	log  *logger.Logger

	mu      sync.RWMutex
	current profile.UserProfile

	// saveMu keeps persisted writes in the order the values were accepted.
	saveMu sync.Mutex
}

// New creates a store over slot. The current value starts at the defaults
// until Load is called.
func New(slot Slot, log *logger.Logger) *Store {
	if log == nil {
		log = logger.Nop()
	}
	return &Store{
		slot:    slot,
		log:     log.WithFields(map[string]any{"slot": slot.Describe()}),
		current: profile.Default(),
	}
}

// Load reads the slot and makes the merged result current. It never fails:
// an empty slot yields the defaults and unreadable data is logged and
// recovered field by field.
func (s *Store) Load(ctx context.Context) profile.UserProfile {
	loaded := profile.Default()

	data, err := s.slot.Read(ctx)
	switch {
	case errors.Is(err, ErrSlotEmpty):
		s.log.Debug("no saved profile, using defaults")
	case err != nil:
		s.log.Warn(err, "saved profile unavailable, using defaults")
	default:
		merged, decodeErr := profile.Decode(data)
		if decodeErr != nil {
			s.log.Warn(decodeErr, "saved profile partially recovered")
		}
		loaded = merged
	}

	return s.Replace(loaded)
}

// Save persists p, replacing any prior snapshot. Failures are logged and
// never returned; the in-memory value stays authoritative.
func (s *Store) Save(ctx context.Context, p profile.UserProfile) {
	s.saveMu.Lock()
	defer s.saveMu.Unlock()
	s.persist(ctx, p)
}

func (s *Store) persist(ctx context.Context, p profile.UserProfile) {
	data, err := profile.Encode(p)
	if err != nil {
		s.log.Error(err, "failed to encode profile")
		return
	}
	if err := s.slot.Write(ctx, data); err != nil {
		s.log.Error(err, "failed to save profile")
		return
	}
	s.log.Debug("profile saved")
}

// Replace swaps the in-memory value and returns a copy of it.
func (s *Store) Replace(p profile.UserProfile) profile.UserProfile {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = p.Clone()
	return s.current.Clone()
}

// Current returns a copy of the in-memory value.
func (s *Store) Current() profile.UserProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.Clone()
}

// Apply runs edit against the current value, makes the result current and
// saves it.
func (s *Store) Apply(ctx context.Context, edit profile.Edit) profile.UserProfile {
	s.saveMu.Lock()
	defer s.saveMu.Unlock()

	s.mu.Lock()
	next := edit(s.current.Clone()).Clone()
	s.current = next
	s.mu.Unlock()

	s.persist(ctx, next)
	return next.Clone()
}

// Reset discards the saved profile and returns to the defaults.
func (s *Store) Reset(ctx context.Context) profile.UserProfile {
	s.saveMu.Lock()
	defer s.saveMu.Unlock()

	if err := s.slot.Clear(ctx); err != nil {
		s.log.Error(err, "failed to clear saved profile")
	}
	return s.Replace(profile.Default())
}

// Close releases the slot when it holds resources.
func (s *Store) Close() error {
	if closer, ok := s.slot.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}
