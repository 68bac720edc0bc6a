// internal/store/memory.go
//
// In-memory session store for live games. A session binds a running
// puzzle.Game to its owner (authenticated user or anonymous cookie ID).
// Live games hold a pending-clear timer, so they are process-local by
// nature; only finished scores and personal bests are durable.

package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/mlowery2/blockpuzzle/internal/puzzle"
)

// Session is one player's live game.
type Session struct {
	ID        string
	OwnerID   string // user ID or anonymous ID
	UserID    string // empty for guests
	Game      *puzzle.Game
	StartedAt time.Time

	mu       sync.Mutex
	recorded bool // finished score already persisted
}

// MarkRecorded flips the recorded flag, returning true only for the caller
// that flipped it. Keeps a finished game from being persisted twice.
func (s *Session) MarkRecorded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.recorded {
		return false
	}
	s.recorded = true
	return true
}

// ResetRecorded re-arms persistence after a restart.
func (s *Session) ResetRecorded() {
	s.mu.Lock()
	s.recorded = false
	s.mu.Unlock()
}

// Store defines the persistence interface for live sessions.
type Store interface {
	// Save persists or updates a session.
	Save(ctx context.Context, s *Session) error

	// Get retrieves a session by ID.
	// Returns an error if the session is not found.
	Get(ctx context.Context, id string) (*Session, error)
}

// ErrNotFound is returned by Get for unknown session IDs.
var ErrNotFound = errors.New("session not found")

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{sessions: make(map[string]*Session)}
}

func (m *memory) Save(ctx context.Context, s *Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID] = s
	return nil
}

func (m *memory) Get(ctx context.Context, id string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if s, ok := m.sessions[id]; ok {
		return s, nil
	}
	return nil, ErrNotFound
}
