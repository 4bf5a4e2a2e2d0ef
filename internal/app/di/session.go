// Package di wires implementation choices that depend on the runtime
// environment.
package di

import (
	"member_portal/internal/feature/auth/usecase"
	"member_portal/internal/platform/session"

	"github.com/redis/go-redis/v9"
)

// NewSessionRepository creates a SessionRepository implementation.
// If Redis is available, it returns a Redis-backed implementation.
// Otherwise, it falls back to process memory.
func NewSessionRepository(rdb *redis.Client) usecase.SessionRepository {
	if rdb != nil {
		return session.NewSessionRedis(rdb, "session")
	}
	return session.NewSessionMemory()
}
