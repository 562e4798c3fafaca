package assessment

import (
	"context"
	"sync"
	"time"
)

// Store holds sessions for the lifetime of the process.
type Store interface {
	Create(ctx context.Context, session Session) error
	Get(ctx context.Context, id string) (*Session, error)
	Update(ctx context.Context, id string, fn func(*Session) error) (*Session, error)
	Sweep(ctx context.Context, idleBefore time.Time) (int, error)
	Len() int
}

// MemoryStore keeps sessions in a map. Sessions are discarded on restart.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]Session
}

// NewMemoryStore constructs an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]Session)}
}

// Create implements Store.
func (m *MemoryStore) Create(ctx context.Context, session Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[session.ID] = session.clone()
	return nil
}

// Get returns a copy of the session, or nil when absent.
func (m *MemoryStore) Get(ctx context.Context, id string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	session, ok := m.sessions[id]
	if !ok {
		return nil, nil
	}
	out := session.clone()
	return &out, nil
}

// Update runs fn on a copy under the write lock and stores the result
// unless fn fails. Returns nil when the session is absent.
func (m *MemoryStore) Update(ctx context.Context, id string, fn func(*Session) error) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	session, ok := m.sessions[id]
	if !ok {
		return nil, nil
	}
	working := session.clone()
	if err := fn(&working); err != nil {
		return nil, err
	}
	m.sessions[id] = working
	out := working.clone()
	return &out, nil
}

// Sweep drops sessions untouched since idleBefore.
func (m *MemoryStore) Sweep(ctx context.Context, idleBefore time.Time) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	removed := 0
	for id, session := range m.sessions {
		if session.UpdatedAt.Before(idleBefore) {
			delete(m.sessions, id)
			removed++
		}
	}
	return removed, nil
}

// Len reports the number of sessions held.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
