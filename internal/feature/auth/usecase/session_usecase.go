package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"member_portal/internal/feature/auth/domain/entity"

	"github.com/google/uuid"
)

// TokenSigner signs and verifies the cookie value that carries a session ID.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (platform/token).
type TokenSigner interface {
	// Sign produces a signed token embedding the session ID.
	Sign(sessionID string) (string, error)
	// Verify checks the token signature and returns the embedded session ID.
	Verify(token string) (string, error)
}

// sessionUsecase manages the session lifecycle and the resolution of the
// current user from a request's cookie value.
type sessionUsecase struct {
	sessions SessionRepository
	users    UserRepository
	signer   TokenSigner
	ttl      time.Duration
}

// NewSessionUsecase creates a new sessionUsecase instance.
func NewSessionUsecase(sessions SessionRepository, users UserRepository, signer TokenSigner, ttl time.Duration) *sessionUsecase {
	return &sessionUsecase{
		sessions: sessions,
		users:    users,
		signer:   signer,
		ttl:      ttl,
	}
}

// Start creates an anonymous session, used to carry flash messages before
// the user logs in. It returns the session and the signed cookie value.
func (u *sessionUsecase) Start(ctx context.Context) (*entity.Session, string, error) {
	return u.create(ctx, "")
}

// Issue creates an authenticated session for the given user. A fresh session
// ID is always generated; callers discard any pre-login session so that a
// login never reuses an anonymous session's identity.
func (u *sessionUsecase) Issue(ctx context.Context, userID string) (*entity.Session, string, error) {
	return u.create(ctx, userID)
}

func (u *sessionUsecase) create(ctx context.Context, userID string) (*entity.Session, string, error) {
	now := time.Now()
	session := &entity.Session{
		ID:        uuid.NewString(),
		UserID:    userID,
		CreatedAt: now,
		ExpiresAt: now.Add(u.ttl),
	}
	if err := u.sessions.Create(ctx, session); err != nil {
		return nil, "", fmt.Errorf("failed to create session: %w", err)
	}
	token, err := u.signer.Sign(session.ID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return session, token, nil
}

// Resolve verifies a cookie value and loads the referenced session.
// Every failure is reported as ErrSessionNotFound: a tampered, expired or
// dangling cookie behaves exactly like an absent one.
func (u *sessionUsecase) Resolve(ctx context.Context, token string) (*entity.Session, error) {
	id, err := u.signer.Verify(token)
	if err != nil {
		return nil, ErrSessionNotFound
	}
	session, err := u.sessions.FindByID(ctx, id)
	if err != nil {
		return nil, ErrSessionNotFound
	}
	if session.IsExpired() {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

// CurrentUser re-fetches the full user record behind an authenticated
// session. It returns nil for anonymous sessions. If the record no longer
// resolves, ErrUserNotFound is returned and the caller must treat the
// request as unauthenticated.
func (u *sessionUsecase) CurrentUser(ctx context.Context, session *entity.Session) (*entity.User, error) {
	if session == nil || !session.IsAuthenticated() {
		return nil, nil
	}
	return u.users.FindByID(ctx, session.UserID)
}

// Save persists session mutations, i.e. flash queue changes.
func (u *sessionUsecase) Save(ctx context.Context, session *entity.Session) error {
	return u.sessions.Save(ctx, session)
}

// Destroy removes a session. A missing session is not an error.
func (u *sessionUsecase) Destroy(ctx context.Context, id string) error {
	if err := u.sessions.Delete(ctx, id); err != nil && !errors.Is(err, ErrSessionNotFound) {
		return err
	}
	return nil
}
