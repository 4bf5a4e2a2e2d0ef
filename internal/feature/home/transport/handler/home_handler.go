// Package handler provides the HTTP handler for the home page.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	sessionmw "member_portal/internal/feature/auth/transport/middleware"
)

// HomeHandler renders the home page.
type HomeHandler struct{}

// NewHomeHandler creates a new HomeHandler instance.
func NewHomeHandler() *HomeHandler {
	return &HomeHandler{}
}

// Home renders the home page. The current user is present in the template
// context only when the request carries a valid session.
func (h *HomeHandler) Home(c *gin.Context) {
	c.HTML(http.StatusOK, "home.tmpl", gin.H{
		"User": sessionmw.UserFromContext(c),
	})
}
