package storage

import (
	"errors"
	"sync"
	"time"

	"github.com/hammoud/theory-exam/internal/domain/entities"
)

var ErrAttemptNotFound = errors.New("attempt not found")

type attemptEntry struct {
	attempt   entities.Attempt
	touchedAt time.Time
}

// AttemptStorage keeps one in-memory attempt per owner key
// (a Telegram chat or a browser session).
type AttemptStorage struct {
	mu       sync.RWMutex
	attempts map[string]*attemptEntry
	now      func() time.Time
}

// NewAttemptStorage creates a new AttemptStorage.
func NewAttemptStorage() *AttemptStorage {
	return &AttemptStorage{
		attempts: make(map[string]*attemptEntry),
		now:      time.Now,
	}
}

// Store replaces whatever attempt the key owned with a.
func (s *AttemptStorage) Store(key string, a entities.Attempt) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.attempts[key] = &attemptEntry{attempt: a, touchedAt: s.now()}
}

// Get retrieves the attempt owned by key. Reading counts as activity, so an
// attempt that is only being viewed is not swept as idle.
func (s *AttemptStorage) Get(key string) (entities.Attempt, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.attempts[key]
	if !ok {
		return entities.Attempt{}, false
	}
	e.touchedAt = s.now()
	return e.attempt, true
}

// Update applies one transition to the attempt owned by key while holding the
// lock, so concurrent actions on the same attempt are serialised. When fn fails
// the stored attempt is left untouched and returned together with the error.
func (s *AttemptStorage) Update(
	key string,
	fn func(entities.Attempt) (entities.Attempt, error),
) (entities.Attempt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.attempts[key]
	if !ok {
		return entities.Attempt{}, ErrAttemptNotFound
	}

	next, err := fn(e.attempt)
	if err != nil {
		return e.attempt, err
	}

	e.attempt = next
	e.touchedAt = s.now()
	return next, nil
}

// Delete removes the attempt owned by key.
func (s *AttemptStorage) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.attempts, key)
}

// SweepIdle removes attempts last touched before cutoff and returns their count.
func (s *AttemptStorage) SweepIdle(cutoff time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for key, e := range s.attempts {
		if e.touchedAt.Before(cutoff) {
			delete(s.attempts, key)
			removed++
		}
	}
	return removed
}

// Len returns the number of stored attempts.
func (s *AttemptStorage) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.attempts)
}
