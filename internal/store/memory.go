// apps/go-server/internal/store/memory.go
//
// In-memory implementation of the session Store.
// Game sessions (ladder puzzles, hangman games) live here while they are
// being played; finished games are recorded in SQLite by the HTTP layer.
//
// Characteristics:
//   - Generic over the session type; keyed by Session.SessionID().
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - Update runs its callback under the write lock, so guesses against one
//     session are applied strictly one at a time.
//   - State is lost when the process restarts.

package store

import (
	"context"
	"errors"
	"sync"
)

// ErrNotFound is returned for unknown session IDs.
var ErrNotFound = errors.New("not found")

// Session is anything addressable by a stable ID.
type Session interface {
	SessionID() string
}

// Store defines the persistence interface for game sessions.
type Store[T Session] interface {
	// Save persists or replaces a session.
	Save(ctx context.Context, s T) error

	// Get retrieves a session by ID.
	Get(ctx context.Context, id string) (T, error)

	// Update applies fn to the stored session while holding the write lock.
	// fn's error is returned unchanged.
	Update(ctx context.Context, id string, fn func(T) error) error

	// Delete discards a session. Missing IDs are not an error.
	Delete(ctx context.Context, id string) error

	// Len reports how many sessions are held.
	Len() int
}

// memory is an in-memory map-based Store implementation.
type memory[T Session] struct {
	mu       sync.RWMutex
	sessions map[string]T
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore[T Session]() Store[T] {
	return &memory[T]{sessions: make(map[string]T)}
}

func (m *memory[T]) Save(ctx context.Context, s T) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.SessionID()] = s
	return nil
}

func (m *memory[T]) Get(ctx context.Context, id string) (T, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if s, ok := m.sessions[id]; ok {
		return s, nil
	}
	var zero T
	return zero, ErrNotFound
}

func (m *memory[T]) Update(ctx context.Context, id string, fn func(T) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	if !ok {
		return ErrNotFound
	}
	return fn(s)
}

func (m *memory[T]) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
	return nil
}

func (m *memory[T]) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
