// Package sessionmw resolves the session cookie into request context.
package sessionmw

import (
	"context"

	"github.com/gin-gonic/gin"

	"member_portal/internal/feature/auth/domain/entity"
)

const (
	// SessionCookie is the name of the cookie carrying the signed session token.
	SessionCookie = "portal_session"

	// ContextSession is the Gin context key holding the resolved *entity.Session.
	ContextSession = "session"

	// ContextUser is the Gin context key holding the resolved *entity.User.
	ContextUser = "currentUser"
)

// SessionResolver loads session state and the current user behind a cookie value.
// Following Go convention: interfaces are defined by the consumer (middleware), not the provider (usecase).
type SessionResolver interface {
	// Resolve verifies a cookie value and loads the referenced session.
	Resolve(ctx context.Context, token string) (*entity.Session, error)
	// CurrentUser re-fetches the user record behind an authenticated session.
	CurrentUser(ctx context.Context, session *entity.Session) (*entity.User, error)
}

// CurrentUser returns a middleware that resolves the session cookie and, for
// authenticated sessions, the user behind it. It never aborts: requests with
// a missing, invalid or expired cookie simply proceed anonymously.
func CurrentUser(sessions SessionResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookie)
		if err != nil || token == "" {
			c.Next()
			return
		}

		session, err := sessions.Resolve(c.Request.Context(), token)
		if err != nil {
			// An invalid cookie is indistinguishable from an absent one.
			c.Next()
			return
		}
		c.Set(ContextSession, session)

		user, err := sessions.CurrentUser(c.Request.Context(), session)
		if err != nil || user == nil {
			// The session may reference a user record that no longer
			// resolves; the request proceeds unauthenticated.
			c.Next()
			return
		}
		c.Set(ContextUser, user)

		c.Next()
	}
}

// SessionFromContext returns the resolved session, or nil.
func SessionFromContext(c *gin.Context) *entity.Session {
	if v, ok := c.Get(ContextSession); ok {
		if session, ok := v.(*entity.Session); ok {
			return session
		}
	}
	return nil
}

// UserFromContext returns the resolved current user, or nil.
func UserFromContext(c *gin.Context) *entity.User {
	if v, ok := c.Get(ContextUser); ok {
		if user, ok := v.(*entity.User); ok {
			return user
		}
	}
	return nil
}
