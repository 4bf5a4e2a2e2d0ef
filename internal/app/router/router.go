package router

import (
	"github.com/gin-gonic/gin"

	authhandler "member_portal/internal/feature/auth/transport/handler"
	sessionmw "member_portal/internal/feature/auth/transport/middleware"
	homehandler "member_portal/internal/feature/home/transport/handler"
	"member_portal/internal/platform/http/handler"
)

// NewRouter builds the Gin engine: templates, static assets, the session
// middleware and the page routes.
func NewRouter(auth *authhandler.AuthHandler, home *homehandler.HomeHandler,
	sessions sessionmw.SessionResolver) *gin.Engine {
	r := gin.Default()

	r.LoadHTMLGlob("web/templates/*.tmpl")
	r.Static("/static", "./web/static")

	// Liveness probe
	r.GET("/healthz", handler.Health)

	// Every page is session-aware; the middleware never rejects a request.
	r.Use(sessionmw.CurrentUser(sessions))

	// Registration and login
	r.GET("/signup", auth.ShowSignup)
	r.POST("/signup", auth.Signup)
	r.GET("/login", auth.ShowLogin)
	r.POST("/login", auth.Login)
	r.POST("/logout", auth.Logout)

	// Home page; renders the current user when the session is valid.
	r.GET("/", home.Home)

	return r
}
