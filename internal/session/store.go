package session

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrNotFound is returned when a session id is unknown or expired.
var ErrNotFound = errors.New("session not found")

// Store persists session state between requests.
type Store interface {
	Get(ctx context.Context, id string) (*State, error)
	Save(ctx context.Context, s *State) error
	Delete(ctx context.Context, id string) error
}

// MemoryStore keeps sessions in process memory. Sessions idle for longer
// than the TTL are treated as missing and dropped.
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[string]*State
	ttl      time.Duration
	now      func() time.Time
}

// NewMemoryStore creates a MemoryStore. A zero ttl disables expiry.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]*State),
		ttl:      ttl,
		now:      time.Now,
	}
}

// Get returns a copy of the stored state.
func (m *MemoryStore) Get(_ context.Context, id string) (*State, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	if m.expired(s) {
		delete(m.sessions, id)
		return nil, ErrNotFound
	}
	return clone(s), nil
}

// Save stores a copy of the state and refreshes its idle timer.
func (m *MemoryStore) Save(_ context.Context, s *State) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	s.UpdatedAt = m.now().UTC()
	m.sessions[s.ID] = clone(s)
	m.sweep()
	return nil
}

// Delete removes a session.
func (m *MemoryStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
	return nil
}

// Len returns the number of live sessions.
func (m *MemoryStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

func (m *MemoryStore) expired(s *State) bool {
	return m.ttl > 0 && m.now().Sub(s.UpdatedAt) > m.ttl
}

// sweep drops expired sessions. Caller holds mu.
func (m *MemoryStore) sweep() {
	if m.ttl <= 0 {
		return
	}
	for id, s := range m.sessions {
		if m.expired(s) {
			delete(m.sessions, id)
		}
	}
}

func clone(s *State) *State {
	c := *s
	c.Progress = make(map[string]bool, len(s.Progress))
	for k, v := range s.Progress {
		c.Progress[k] = v
	}
	if s.Flash != nil {
		f := *s.Flash
		f.Lines = append([]string(nil), s.Flash.Lines...)
		c.Flash = &f
	}
	return &c
}
