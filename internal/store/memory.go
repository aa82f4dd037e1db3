// internal/store/memory.go
//
// In-memory session store.
// Keeps finished and in-progress sessions for the lifetime of the
// process so the CLI can print a games-played summary on exit. State is
// deliberately not durable: nothing survives a restart.
//
// Characteristics:
//   - Stores *game.Session objects keyed by ID in a map.
//   - Concurrency-safe via RWMutex.
//   - Errors are returned for missing session IDs on Get().

package store

import (
	"context"
	"errors"
	"sync"

	"github.com/robalobadob/mastermind/internal/game"
)

// ErrNotFound reports a lookup for a session ID this store never saw.
var ErrNotFound = errors.New("session not found")

// Store is the bookkeeping interface for game sessions.
type Store interface {
	// Save persists or updates a session.
	Save(ctx context.Context, s *game.Session) error

	// Get retrieves a session by ID.
	Get(ctx context.Context, id string) (*game.Session, error)

	// Summary reports how many sessions were recorded and how many
	// of them were won.
	Summary(ctx context.Context) (played, won int, err error)
}

// memory is the map-backed Store implementation.
type memory struct {
	mu       sync.RWMutex
	sessions map[string]*game.Session
}

// NewMemoryStore constructs an empty in-memory Store.
func NewMemoryStore() Store {
	return &memory{sessions: make(map[string]*game.Session)}
}

// Save adds or updates the session in the map.
func (m *memory) Save(ctx context.Context, s *game.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID] = s
	return nil
}

// Get looks up a session by ID.
func (m *memory) Get(ctx context.Context, id string) (*game.Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if s, ok := m.sessions[id]; ok {
		return s, nil
	}
	return nil, ErrNotFound
}

// Summary counts recorded sessions and wins.
func (m *memory) Summary(ctx context.Context) (played, won int, err error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, s := range m.sessions {
		played++
		if s.Won {
			won++
		}
	}
	return played, won, nil
}
