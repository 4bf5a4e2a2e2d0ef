// Package handler provides the HTTP handlers for the auth feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"member_portal/internal/feature/auth/domain/entity"
	"member_portal/internal/feature/auth/transport/http/dto"
	sessionmw "member_portal/internal/feature/auth/transport/middleware"
	"member_portal/internal/feature/auth/usecase"
)

// Flash kinds rendered by the form pages.
const (
	FlashSuccess = "success"
	FlashError   = "error"
)

// User-visible flash texts.
const (
	msgSignupOK       = "Sign up successful! You can now log in."
	msgSignupFailed   = "An error occurred during sign up. Please try again."
	msgUsernameTaken  = "That username is already taken."
	msgBadCredentials = "Incorrect username or password."
	msgLoginFailed    = "Something went wrong. Please try again."
)

// AuthUsecase defines the registration and credential verification operations.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type AuthUsecase interface {
	// Signup registers a new user with the given credentials and address fields.
	Signup(ctx context.Context, username, password, address, location string) error
	// Login verifies credentials and returns the matching user.
	Login(ctx context.Context, username, password string) (*entity.User, error)
}

// SessionUsecase defines the session lifecycle operations the handlers need.
type SessionUsecase interface {
	// Start creates an anonymous session to carry flash messages.
	Start(ctx context.Context) (*entity.Session, string, error)
	// Issue creates an authenticated session for the given user.
	Issue(ctx context.Context, userID string) (*entity.Session, string, error)
	// Save persists session mutations.
	Save(ctx context.Context, session *entity.Session) error
	// Destroy removes a session.
	Destroy(ctx context.Context, id string) error
}

// AuthHandler handles the signup, login and logout routes.
// Every POST performs exactly one side effect, then redirects
// (post/redirect/get); errors surface as flash messages, never as pages.
type AuthHandler struct {
	auth     AuthUsecase
	sessions SessionUsecase
	cookies  *CookieHelper
}

// NewAuthHandler creates a new AuthHandler instance.
func NewAuthHandler(auth AuthUsecase, sessions SessionUsecase, cookies *CookieHelper) *AuthHandler {
	return &AuthHandler{
		auth:     auth,
		sessions: sessions,
		cookies:  cookies,
	}
}

// ShowSignup renders the signup form, including any pending flash messages.
func (h *AuthHandler) ShowSignup(c *gin.Context) {
	c.HTML(http.StatusOK, "signup.tmpl", gin.H{
		"Flashes": h.consumeFlashes(c),
	})
}

// ShowLogin renders the login form, including any pending flash messages.
func (h *AuthHandler) ShowLogin(c *gin.Context) {
	c.HTML(http.StatusOK, "login.tmpl", gin.H{
		"Flashes": h.consumeFlashes(c),
	})
}

// Signup handles the signup form submission. On success the record is
// created and the user is redirected to the login form; signup does not log
// the user in.
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupReq
	if err := c.ShouldBind(&req); err != nil {
		slog.Warn("signup validation failed", "error", err, "remote_addr", c.ClientIP())
		h.flashAndRedirect(c, FlashError, msgSignupFailed, "/signup")
		return
	}

	if err := h.auth.Signup(c.Request.Context(), req.Username, req.Password, req.Address, req.Location); err != nil {
		slog.Warn("signup failed", "error", err, "username", req.Username, "remote_addr", c.ClientIP())
		if errors.Is(err, usecase.ErrUsernameTaken) {
			h.flashAndRedirect(c, FlashError, msgUsernameTaken, "/signup")
			return
		}
		h.flashAndRedirect(c, FlashError, msgSignupFailed, "/signup")
		return
	}

	slog.Info("user signup successful", "username", req.Username, "remote_addr", c.ClientIP())
	h.flashAndRedirect(c, FlashSuccess, msgSignupOK, "/login")
}

// Login handles the login form submission.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBind(&req); err != nil {
		slog.Warn("login validation failed", "error", err, "remote_addr", c.ClientIP())
		h.flashAndRedirect(c, FlashError, msgBadCredentials, "/login")
		return
	}

	user, err := h.auth.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			// Unknown usernames and wrong passwords share one message.
			slog.Warn("login rejected", "username", req.Username, "remote_addr", c.ClientIP())
			h.flashAndRedirect(c, FlashError, msgBadCredentials, "/login")
			return
		}
		slog.Error("login failed", "error", err, "username", req.Username, "remote_addr", c.ClientIP())
		h.flashAndRedirect(c, FlashError, msgLoginFailed, "/login")
		return
	}

	// Replace any pre-login session with a freshly issued one.
	if old := sessionmw.SessionFromContext(c); old != nil {
		if err := h.sessions.Destroy(c.Request.Context(), old.ID); err != nil {
			slog.Warn("failed to destroy pre-login session", "error", err, "session_id", old.ID)
		}
	}
	_, token, err := h.sessions.Issue(c.Request.Context(), user.ID)
	if err != nil {
		slog.Error("failed to issue session", "error", err, "username", req.Username)
		h.flashAndRedirect(c, FlashError, msgLoginFailed, "/login")
		return
	}
	h.cookies.SetSessionCookie(c, token)

	slog.Info("user login successful", "username", req.Username, "remote_addr", c.ClientIP())
	c.Redirect(http.StatusFound, "/")
}

// Logout destroys the current session and clears the cookie.
func (h *AuthHandler) Logout(c *gin.Context) {
	if session := sessionmw.SessionFromContext(c); session != nil {
		if err := h.sessions.Destroy(c.Request.Context(), session.ID); err != nil {
			slog.Warn("failed to destroy session", "error", err, "session_id", session.ID)
		}
	}
	h.cookies.ClearSessionCookie(c)
	c.Redirect(http.StatusFound, "/login")
}

// flashAndRedirect queues a one-shot message on the request's session,
// creating an anonymous session if none exists yet, then redirects.
func (h *AuthHandler) flashAndRedirect(c *gin.Context, kind, message, target string) {
	session := sessionmw.SessionFromContext(c)
	if session == nil {
		created, token, err := h.sessions.Start(c.Request.Context())
		if err != nil {
			// Without a session the flash is lost; the redirect still happens.
			slog.Error("failed to start session", "error", err)
			c.Redirect(http.StatusFound, target)
			return
		}
		h.cookies.SetSessionCookie(c, token)
		session = created
	}

	session.AddFlash(kind, message)
	if err := h.sessions.Save(c.Request.Context(), session); err != nil {
		slog.Error("failed to save session", "error", err, "session_id", session.ID)
	}
	c.Redirect(http.StatusFound, target)
}

// consumeFlashes drains the session's flash queue and persists the cleared
// state, so a message shows on exactly one render.
func (h *AuthHandler) consumeFlashes(c *gin.Context) map[string][]string {
	session := sessionmw.SessionFromContext(c)
	if session == nil {
		return nil
	}
	flashes := session.ConsumeFlashes()
	if len(flashes) == 0 {
		return nil
	}
	if err := h.sessions.Save(c.Request.Context(), session); err != nil {
		slog.Error("failed to save session", "error", err, "session_id", session.ID)
	}
	return flashes
}
