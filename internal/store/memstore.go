package store

import (
	"sort"
	"sync"

	"filler-robot/internal/shared"
)

// MemoryStore keeps at most max sessions; saving a new one past the limit
// evicts the least recently updated.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*shared.Session
	max      int
}

func NewMemoryStore(max int) *MemoryStore {
	return &MemoryStore{
		sessions: map[string]*shared.Session{},
		max:      max,
	}
}

func (m *MemoryStore) GetSession(id string) (*shared.Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	return s, ok
}

func (m *MemoryStore) SaveSession(s *shared.Session) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.sessions[s.ID]; !exists && m.max > 0 && len(m.sessions) >= m.max {
		m.evictOldest()
	}
	m.sessions[s.ID] = s
}

func (m *MemoryStore) DeleteSession(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.sessions[id]
	delete(m.sessions, id)
	return ok
}

// ListSessions returns the stored sessions, most recently updated first.
func (m *MemoryStore) ListSessions() []*shared.Session {
	m.mu.RLock()
	out := make([]*shared.Session, 0, len(m.sessions))
	for _, s := range m.sessions {
		out = append(out, s)
	}
	m.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool {
		return out[i].UpdatedAt.After(out[j].UpdatedAt)
	})
	return out
}

func (m *MemoryStore) evictOldest() {
	var oldest *shared.Session
	for _, s := range m.sessions {
		if oldest == nil || s.UpdatedAt.Before(oldest.UpdatedAt) {
			oldest = s
		}
	}
	if oldest != nil {
		delete(m.sessions, oldest.ID)
	}
}
