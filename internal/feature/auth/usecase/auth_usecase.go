package usecase

import (
	"context"
	"errors"
	"fmt"

	"member_portal/internal/feature/auth/domain/entity"

	"golang.org/x/crypto/bcrypt"
)

// UserRepository abstracts the persistence layer for user entities.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type UserRepository interface {
	// Create persists a new user to the storage.
	// Returns ErrUsernameTaken if the username is already in use.
	Create(ctx context.Context, user *entity.User) error

	// FindByUsername retrieves the user matching the given username.
	// Returns ErrUserNotFound if no such user exists.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// FindByID retrieves the user matching the given ID.
	// Returns ErrUserNotFound if no such user exists.
	FindByID(ctx context.Context, id string) (*entity.User, error)
}

// dummyHash is compared against when the user does not exist, so that the
// unknown-user and wrong-password paths take comparable time.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// authUsecase implements registration and credential verification.
type authUsecase struct {
	users UserRepository
}

// NewAuthUsecase creates a new authUsecase instance.
func NewAuthUsecase(users UserRepository) *authUsecase {
	return &authUsecase{users: users}
}

// Signup registers a new user with a hashed password. Address and location
// are stored as submitted, without validation.
func (u *authUsecase) Signup(ctx context.Context, username, password, address, location string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user := &entity.User{
		Username: username,
		Password: string(hashed),
		Address:  address,
		Location: location,
	}
	return u.users.Create(ctx, user)
}

// Login verifies the given credentials and returns the matching user.
// Unknown usernames and wrong passwords both yield ErrInvalidCredentials, so
// the caller cannot enumerate registered usernames. Store failures propagate
// as-is, distinct from rejection.
func (u *authUsecase) Login(ctx context.Context, username, password string) (*entity.User, error) {
	user, err := u.users.FindByUsername(ctx, username)
	if err != nil && !errors.Is(err, ErrUserNotFound) {
		return nil, err
	}

	// Timing-attack mitigation: bcrypt comparison always runs, even when the
	// user does not exist.
	passwordHash := dummyHash
	if err == nil {
		passwordHash = user.Password
	}
	compareErr := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password))

	if err != nil || compareErr != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}
