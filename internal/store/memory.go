// internal/store/memory.go
//
// In-memory implementation of the session Store.
// Sessions are ephemeral: a session cannot outlive the process, and progress
// is never resumed. Finished runs are recorded separately by the results
// package.
//
// Characteristics:
//   - Stores *game.Session objects keyed by ID in a map, with the time each
//     was last touched.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - Update runs its callback under the write lock, so moves on a session are
//     applied one at a time.
//   - Evict drops idle and finished sessions; Sweep calls it on a ticker.

package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/robalobadob/indexcat/internal/game"
)

// ErrNotFound is returned for an unknown session ID.
var ErrNotFound = errors.New("store: session not found")

// Store defines the persistence interface for game sessions.
type Store interface {
	// Save persists or replaces a session.
	Save(ctx context.Context, s *game.Session) error

	// Get retrieves a session by ID.
	Get(ctx context.Context, id string) (*game.Session, error)

	// Update runs fn on the stored session while holding exclusive access.
	// The error from fn is returned as is.
	Update(ctx context.Context, id string, fn func(*game.Session) error) error

	// Evict deletes sessions last touched before idleBefore, and finished
	// sessions that finished before finishedBefore. It returns how many
	// were dropped.
	Evict(ctx context.Context, idleBefore, finishedBefore time.Time) int

	// Len reports the number of live sessions.
	Len() int
}

type entry struct {
	s    *game.Session
	seen time.Time
}

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu       sync.RWMutex      // guards sessions map
	sessions map[string]*entry // keyed by Session.ID
	now      func() time.Time
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{sessions: make(map[string]*entry), now: time.Now}
}

func (m *memory) Save(ctx context.Context, s *game.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID] = &entry{s: s, seen: m.now()}
	return nil
}

func (m *memory) Get(ctx context.Context, id string) (*game.Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if e, ok := m.sessions[id]; ok {
		return e.s, nil
	}
	return nil, ErrNotFound
}

func (m *memory) Update(ctx context.Context, id string, fn func(*game.Session) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.sessions[id]
	if !ok {
		return ErrNotFound
	}
	e.seen = m.now()
	return fn(e.s)
}

func (m *memory) Evict(ctx context.Context, idleBefore, finishedBefore time.Time) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for id, e := range m.sessions {
		idle := e.seen.Before(idleBefore)
		done := e.s.Finished() && e.s.FinishedAt.Before(finishedBefore)
		if idle || done {
			delete(m.sessions, id)
			n++
		}
	}
	return n
}

func (m *memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
