package router

import (
	"github.com/labstack/echo/v4"

	"github.com/rocgym/jobboard/internal/authz"
	"github.com/rocgym/jobboard/internal/handler"
	mw "github.com/rocgym/jobboard/internal/middleware"
)

// RegisterJobs registers the authenticated posting and application
// endpoints.  Every route here runs JWTAuth; the role gates mirror the
// authorization policy so obviously-impossible requests are cut off
// before the handler, but the handlers still evaluate authz.Can for the
// ownership-scoped decisions.
func RegisterJobs(e *echo.Echo, jobs *handler.JobHandler, apps *handler.ApplicationHandler, jwtSecret string) {
	g := e.Group("", mw.JWTAuth(jwtSecret))

	// Posting management: admins and recruiters.
	poster := mw.RequireRole(authz.RoleAdmin, authz.RoleRecruiter)
	g.POST("/jobs", jobs.Create, poster)
	g.PUT("/jobs/:id", jobs.Update, poster)
	g.DELETE("/jobs/:id", jobs.Delete, poster)
	g.GET("/jobs/:id/applications", apps.ListForJob, poster)

	// Applying is for the "user" role only; the handler enforces it via
	// the policy so the error distinguishes 403 from 401.
	g.POST("/jobs/:id/apply", apps.Apply)

	// Role-scoped listing: any authenticated role.
	g.GET("/applications", apps.ListMine)
}

// RegisterMembers registers the admin-only member listing.
func RegisterMembers(e *echo.Echo, members *handler.MemberHandler, jwtSecret string) {
	e.GET("/members", members.List,
		mw.JWTAuth(jwtSecret),
		mw.RequireRole(authz.RoleAdmin),
	)
}
