package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSession_IsExpired(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name      string
		expiresAt time.Time
		want      bool
	}{
		{name: "future expiration", expiresAt: now.Add(time.Hour), want: false},
		{name: "past expiration", expiresAt: now.Add(-time.Hour), want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &Session{ID: "s1", ExpiresAt: tt.expiresAt}
			assert.Equal(t, tt.want, s.IsExpired())
		})
	}
}

func TestSession_IsAuthenticated(t *testing.T) {
	anonymous := &Session{ID: "s1"}
	assert.False(t, anonymous.IsAuthenticated())

	authenticated := &Session{ID: "s2", UserID: "user-1"}
	assert.True(t, authenticated.IsAuthenticated())
}

func TestSession_Flashes(t *testing.T) {
	s := &Session{ID: "s1"}

	s.AddFlash("error", "Incorrect username or password.")
	s.AddFlash("error", "second message")
	s.AddFlash("success", "Sign up successful! You can now log in.")

	flashes := s.ConsumeFlashes()
	assert.Equal(t, []string{"Incorrect username or password.", "second message"}, flashes["error"])
	assert.Equal(t, []string{"Sign up successful! You can now log in."}, flashes["success"])

	// One-shot: a second consume returns nothing.
	assert.Empty(t, s.ConsumeFlashes())
}
