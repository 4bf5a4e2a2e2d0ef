package entity

import "time"

// Session represents server-side session state referenced by a signed cookie.
// UserID is empty for anonymous sessions, which exist only to carry flash
// messages across a redirect.
type Session struct {
	ID        string              // Opaque session identifier (UUID)
	UserID    string              // Associated user ID, empty while anonymous
	Flashes   map[string][]string // One-shot messages, keyed by kind
	CreatedAt time.Time           // Session creation time
	ExpiresAt time.Time           // Session expiration time
}

// IsExpired returns true if the session has passed its expiration time.
func (s *Session) IsExpired() bool {
	return time.Now().After(s.ExpiresAt)
}

// IsAuthenticated returns true if the session belongs to a logged-in user.
func (s *Session) IsAuthenticated() bool {
	return s.UserID != ""
}

// AddFlash queues a one-shot message under the given kind.
func (s *Session) AddFlash(kind, message string) {
	if s.Flashes == nil {
		s.Flashes = make(map[string][]string)
	}
	s.Flashes[kind] = append(s.Flashes[kind], message)
}

// ConsumeFlashes returns all queued messages and clears the queue.
// The caller is responsible for persisting the cleared state.
func (s *Session) ConsumeFlashes() map[string][]string {
	flashes := s.Flashes
	s.Flashes = nil
	return flashes
}
