package router

import (
	"github.com/labstack/echo/v4"

	"github.com/rocgym/jobboard/internal/handler"
	mw "github.com/rocgym/jobboard/internal/middleware"
)

// RegisterPublic registers routes that require no authentication: the API
// index, the health check and job browsing.  Guests may list and read
// postings; reading a posting by id still counts a view.  The cache
// middleware is applied to the listing only, never to GET /jobs/:id,
// whose read side effect must reach the database on every call.
func RegisterPublic(e *echo.Echo, jobs *handler.JobHandler, health *handler.HealthHandler, cache echo.MiddlewareFunc) {
	e.GET("/", handler.Home)
	e.GET("/health", health.Check)
	e.GET("/jobs", jobs.List, cache)
	e.GET("/jobs/:id", jobs.Get)
}

// RegisterAuth registers the session lifecycle endpoints.  Register and
// login are open (rate limited); logout and the identity echo require a
// valid token.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string, limiter echo.MiddlewareFunc) {
	g := e.Group("/auth", limiter)
	g.POST("/register", a.Register)
	g.POST("/login", a.Login)
	g.POST("/logout", a.Logout, mw.JWTAuth(jwtSecret))

	e.GET("/me", a.Me, mw.JWTAuth(jwtSecret))
}
