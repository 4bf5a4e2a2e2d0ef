package session

import (
	"context"
	"sync"

	"member_portal/internal/feature/auth/domain/entity"
	"member_portal/internal/feature/auth/usecase"
)

// SessionMemory implements usecase.SessionRepository with an in-process map.
// It is the fallback store when Redis is unavailable; sessions do not
// survive a process restart.
type SessionMemory struct {
	mu       sync.Mutex
	sessions map[string]*entity.Session
}

// Compile-time check to ensure SessionMemory implements SessionRepository.
var _ usecase.SessionRepository = (*SessionMemory)(nil)

// NewSessionMemory creates an empty in-memory session store.
func NewSessionMemory() *SessionMemory {
	return &SessionMemory{sessions: make(map[string]*entity.Session)}
}

// clone deep-copies a session, including the flash queue. A shallow copy
// would share the Flashes map between the store and its callers, so two
// requests holding copies of one session could write it concurrently.
func clone(session *entity.Session) *entity.Session {
	copied := *session
	if session.Flashes != nil {
		copied.Flashes = make(map[string][]string, len(session.Flashes))
		for kind, messages := range session.Flashes {
			copied.Flashes[kind] = append([]string(nil), messages...)
		}
	}
	return &copied
}

// Create stores a copy of the session.
func (m *SessionMemory) Create(ctx context.Context, session *entity.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[session.ID] = clone(session)
	return nil
}

// FindByID retrieves a session. Expired sessions are dropped on read, which
// stands in for the TTL that Redis enforces.
func (m *SessionMemory) FindByID(ctx context.Context, id string) (*entity.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	session, ok := m.sessions[id]
	if !ok {
		return nil, usecase.ErrSessionNotFound
	}
	if session.IsExpired() {
		delete(m.sessions, id)
		return nil, usecase.ErrSessionNotFound
	}
	return clone(session), nil
}

// Save rewrites an existing session.
func (m *SessionMemory) Save(ctx context.Context, session *entity.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sessions[session.ID]; !ok {
		return usecase.ErrSessionNotFound
	}
	m.sessions[session.ID] = clone(session)
	return nil
}

// Delete removes a session.
func (m *SessionMemory) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
	return nil
}
