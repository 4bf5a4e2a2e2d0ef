package usecase

import (
	"context"

	"member_portal/internal/feature/auth/domain/entity"
)

// SessionRepository abstracts the persistence layer for session state.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (platform).
type SessionRepository interface {
	// Create persists a new session to the storage.
	Create(ctx context.Context, session *entity.Session) error

	// FindByID retrieves a session by its ID.
	// Returns ErrSessionNotFound for missing or expired sessions.
	FindByID(ctx context.Context, id string) (*entity.Session, error)

	// Save persists changes to an existing session, such as flash consumption.
	Save(ctx context.Context, session *entity.Session) error

	// Delete removes a session from storage.
	Delete(ctx context.Context, id string) error
}
