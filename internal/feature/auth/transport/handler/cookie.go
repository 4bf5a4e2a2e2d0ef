package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	sessionmw "member_portal/internal/feature/auth/transport/middleware"
)

// CookieHelper manages the session cookie.
type CookieHelper struct {
	ttl    time.Duration
	secure bool
}

// NewCookieHelper creates a cookie helper. secure should be true whenever
// the service is reached over HTTPS.
func NewCookieHelper(ttl time.Duration, secure bool) *CookieHelper {
	return &CookieHelper{ttl: ttl, secure: secure}
}

// SetSessionCookie attaches the signed session token to the response.
func (h *CookieHelper) SetSessionCookie(c *gin.Context, token string) {
	h.setCookie(c, token, int(h.ttl.Seconds()))
}

// ClearSessionCookie removes the session cookie.
func (h *CookieHelper) ClearSessionCookie(c *gin.Context) {
	h.setCookie(c, "", -1)
}

func (h *CookieHelper) setCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		sessionmw.SessionCookie,
		value,
		maxAge,
		"/",
		"",
		h.secure,
		true, // httpOnly - always true for session cookies
	)
}
