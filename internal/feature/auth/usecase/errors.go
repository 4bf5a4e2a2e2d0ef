// Package usecase implements the business logic for the auth feature.
package usecase

import "errors"

var (
	// ErrUserNotFound is returned when a user cannot be found by username or ID.
	ErrUserNotFound = errors.New("user not found")

	// ErrUsernameTaken is returned when attempting to create a user with a username that already exists.
	ErrUsernameTaken = errors.New("username already exists")

	// ErrInvalidCredentials is returned when the username or password does not match a stored record.
	// Unknown usernames and wrong passwords are deliberately indistinguishable.
	ErrInvalidCredentials = errors.New("incorrect username or password")

	// ErrSessionNotFound is returned when a session cannot be found by ID.
	ErrSessionNotFound = errors.New("session not found")
)
