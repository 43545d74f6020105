package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"invoice-generator/internal/invoice"
)

// Nothing here is ever persisted: an invoice lives exactly as long as
// the browser session that is editing it.

// idleTimeout is how long a session may sit untouched before it is
// swept. Matches the session token lifetime.
const idleTimeout = 24 * time.Hour

type entry struct {
	store    *invoice.Store
	lastSeen time.Time
}

// Manager keeps the per-session invoice stores in memory.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*entry
	now      func() time.Time
}

// NewManager creates an empty session registry.
func NewManager() *Manager {
	return &Manager{
		sessions: make(map[string]*entry),
		now:      time.Now,
	}
}

// Create starts a new session with a fresh default invoice and returns
// its id.
func (m *Manager) Create() string {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.sweep()

	id := uuid.NewString()
	m.sessions[id] = &entry{
		store:    invoice.NewStore(),
		lastSeen: m.now(),
	}
	return id
}

// Get returns the store for a session id, or nil if the session does
// not exist (or idled out). Touches the session's last-seen time.
func (m *Manager) Get(id string) *invoice.Store {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.sessions[id]
	if !ok {
		return nil
	}
	if m.now().Sub(e.lastSeen) > idleTimeout {
		delete(m.sessions, id)
		return nil
	}
	e.lastSeen = m.now()
	return e.store
}

// Len reports how many live sessions are held.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// sweep drops idle sessions. Caller holds the lock.
func (m *Manager) sweep() {
	cutoff := m.now().Add(-idleTimeout)
	for id, e := range m.sessions {
		if e.lastSeen.Before(cutoff) {
			delete(m.sessions, id)
		}
	}
}
