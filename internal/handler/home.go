package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Home handles GET / and describes the API surface for anyone poking at
// the root URL.
func Home(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"message": "ROC Gym - Job Listing and Employee Management API",
		"version": "1.0.0",
		"endpoints": echo.Map{
			"health": "/health",
			"auth": echo.Map{
				"register": "/auth/register",
				"login":    "/auth/login",
				"logout":   "/auth/logout",
			},
			"jobs": echo.Map{
				"list":         "/jobs",
				"get":          "/jobs/:id",
				"create":       "/jobs (POST, admin/recruiter)",
				"update":       "/jobs/:id (PUT, admin or owning recruiter)",
				"delete":       "/jobs/:id (DELETE, admin or owning recruiter)",
				"apply":        "/jobs/:id/apply (POST, user)",
				"applications": "/jobs/:id/applications (GET, admin or owning recruiter)",
			},
			"applications": echo.Map{
				"mine": "/applications (GET, role-scoped)",
			},
			"members": echo.Map{
				"list": "/members (GET, admin)",
			},
		},
	})
}
