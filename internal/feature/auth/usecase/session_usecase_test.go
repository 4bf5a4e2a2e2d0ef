package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"member_portal/internal/feature/auth/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockSessionRepository is a mock implementation of the SessionRepository interface.
type mockSessionRepository struct {
	CreateFunc   func(ctx context.Context, session *entity.Session) error
	FindByIDFunc func(ctx context.Context, id string) (*entity.Session, error)
	SaveFunc     func(ctx context.Context, session *entity.Session) error
	DeleteFunc   func(ctx context.Context, id string) error
}

func (m *mockSessionRepository) Create(ctx context.Context, session *entity.Session) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, session)
	}
	return nil // Default: success
}

func (m *mockSessionRepository) FindByID(ctx context.Context, id string) (*entity.Session, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, ErrSessionNotFound // Default: not found
}

func (m *mockSessionRepository) Save(ctx context.Context, session *entity.Session) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, session)
	}
	return nil // Default: success
}

func (m *mockSessionRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil // Default: success
}

// mockSigner is a mock implementation of the TokenSigner interface.
// The default behavior is a reversible "signature" so Issue/Resolve pair up.
type mockSigner struct {
	SignFunc   func(sessionID string) (string, error)
	VerifyFunc func(token string) (string, error)
}

func (m *mockSigner) Sign(sessionID string) (string, error) {
	if m.SignFunc != nil {
		return m.SignFunc(sessionID)
	}
	return "signed:" + sessionID, nil
}

func (m *mockSigner) Verify(token string) (string, error) {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(token)
	}
	const prefix = "signed:"
	if len(token) <= len(prefix) || token[:len(prefix)] != prefix {
		return "", errors.New("invalid token")
	}
	return token[len(prefix):], nil
}

func TestSessionUsecase_Issue(t *testing.T) {
	var created *entity.Session
	repo := &mockSessionRepository{
		CreateFunc: func(ctx context.Context, session *entity.Session) error {
			created = session
			return nil
		},
	}
	uc := NewSessionUsecase(repo, &mockUserRepository{}, &mockSigner{}, time.Hour)

	session, token, err := uc.Issue(context.Background(), "user-1")

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, created.ID, session.ID)
	assert.Equal(t, "user-1", session.UserID)
	assert.NotEmpty(t, session.ID)
	assert.Equal(t, "signed:"+session.ID, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), session.ExpiresAt, time.Minute)
}

func TestSessionUsecase_Start(t *testing.T) {
	uc := NewSessionUsecase(&mockSessionRepository{}, &mockUserRepository{}, &mockSigner{}, time.Hour)

	session, token, err := uc.Start(context.Background())

	require.NoError(t, err)
	assert.False(t, session.IsAuthenticated(), "anonymous session must carry no user")
	assert.NotEmpty(t, token)
}

func TestSessionUsecase_Issue_CreateFailure(t *testing.T) {
	repo := &mockSessionRepository{
		CreateFunc: func(ctx context.Context, session *entity.Session) error {
			return errors.New("store unreachable")
		},
	}
	uc := NewSessionUsecase(repo, &mockUserRepository{}, &mockSigner{}, time.Hour)

	_, _, err := uc.Issue(context.Background(), "user-1")
	assert.Error(t, err)
}

func TestSessionUsecase_Resolve(t *testing.T) {
	now := time.Now()
	stored := &entity.Session{
		ID:        "sess-1",
		UserID:    "user-1",
		CreatedAt: now,
		ExpiresAt: now.Add(time.Hour),
	}

	tests := []struct {
		name    string
		token   string
		session *entity.Session
		wantErr error
	}{
		{
			name:    "success: valid token and live session",
			token:   "signed:sess-1",
			session: stored,
			wantErr: nil,
		},
		{
			name:    "failure: tampered token",
			token:   "garbage",
			session: stored,
			wantErr: ErrSessionNotFound,
		},
		{
			name:    "failure: session missing from store",
			token:   "signed:sess-2",
			session: nil,
			wantErr: ErrSessionNotFound,
		},
		{
			name:  "failure: expired session",
			token: "signed:sess-1",
			session: &entity.Session{
				ID:        "sess-1",
				UserID:    "user-1",
				CreatedAt: now.Add(-2 * time.Hour),
				ExpiresAt: now.Add(-time.Hour),
			},
			wantErr: ErrSessionNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockSessionRepository{
				FindByIDFunc: func(ctx context.Context, id string) (*entity.Session, error) {
					if tt.session != nil && tt.session.ID == id {
						return tt.session, nil
					}
					return nil, ErrSessionNotFound
				},
			}
			uc := NewSessionUsecase(repo, &mockUserRepository{}, &mockSigner{}, time.Hour)

			session, err := uc.Resolve(context.Background(), tt.token)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, session)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.session.ID, session.ID)
			}
		})
	}
}

func TestSessionUsecase_CurrentUser(t *testing.T) {
	testUser := &entity.User{ID: "user-1", Username: "alice"}

	t.Run("anonymous session yields no user", func(t *testing.T) {
		uc := NewSessionUsecase(&mockSessionRepository{}, &mockUserRepository{}, &mockSigner{}, time.Hour)

		user, err := uc.CurrentUser(context.Background(), &entity.Session{ID: "sess-1"})

		require.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("authenticated session resolves the user", func(t *testing.T) {
		users := &mockUserRepository{
			FindByIDFunc: func(ctx context.Context, id string) (*entity.User, error) {
				if id == testUser.ID {
					return testUser, nil
				}
				return nil, ErrUserNotFound
			},
		}
		uc := NewSessionUsecase(&mockSessionRepository{}, users, &mockSigner{}, time.Hour)

		user, err := uc.CurrentUser(context.Background(), &entity.Session{ID: "sess-1", UserID: "user-1"})

		require.NoError(t, err)
		assert.Equal(t, "alice", user.Username)
	})

	t.Run("dangling user reference is reported", func(t *testing.T) {
		uc := NewSessionUsecase(&mockSessionRepository{}, &mockUserRepository{}, &mockSigner{}, time.Hour)

		user, err := uc.CurrentUser(context.Background(), &entity.Session{ID: "sess-1", UserID: "gone"})

		assert.ErrorIs(t, err, ErrUserNotFound)
		assert.Nil(t, user)
	})
}

func TestSessionUsecase_Destroy(t *testing.T) {
	t.Run("delete is forwarded to the store", func(t *testing.T) {
		var deleted string
		repo := &mockSessionRepository{
			DeleteFunc: func(ctx context.Context, id string) error {
				deleted = id
				return nil
			},
		}
		uc := NewSessionUsecase(repo, &mockUserRepository{}, &mockSigner{}, time.Hour)

		require.NoError(t, uc.Destroy(context.Background(), "sess-1"))
		assert.Equal(t, "sess-1", deleted)
	})

	t.Run("missing session is not an error", func(t *testing.T) {
		repo := &mockSessionRepository{
			DeleteFunc: func(ctx context.Context, id string) error {
				return ErrSessionNotFound
			},
		}
		uc := NewSessionUsecase(repo, &mockUserRepository{}, &mockSigner{}, time.Hour)

		assert.NoError(t, uc.Destroy(context.Background(), "sess-1"))
	})
}
