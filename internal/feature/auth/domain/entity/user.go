// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// User represents a registered user in the system.
// It is the only persisted entity: created on signup, never updated,
// never deleted.
type User struct {
	// ID is the store-assigned identifier (ObjectID hex string).
	ID string

	// Username identifies the user at login.
	// It must be unique across all users.
	Username string

	// Password is the bcrypt hash of the user's password.
	// This should never store plaintext passwords.
	Password string

	// Address is free text, stored as submitted.
	Address string

	// Location is free text, stored as submitted.
	// It is collected at signup and never read downstream.
	Location string

	// CreatedAt is the timestamp when the user was created.
	CreatedAt time.Time
}
