package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rocgym/jobboard/internal/authz"
)

// RequireRole returns a middleware that enforces that the authenticated
// user carries one of the given roles.  It assumes JWTAuth has already
// stored the verified role in the context; a request with a missing or
// disallowed role is rejected with 403.  Ownership-scoped checks (a
// recruiter touching their own posting) still happen in the handlers via
// authz.Can; this gate only cuts off roles that could never pass.
func RequireRole(roles ...authz.Role) echo.MiddlewareFunc {
	allowed := make(map[authz.Role]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, ok := c.Get(CtxRole).(string)
			if !ok || !allowed[authz.Role(role)] {
				return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
			}
			return next(c)
		}
	}
}
