package handler

import (
	"errors"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/rocgym/jobboard/internal/authz"
	"github.com/rocgym/jobboard/internal/middleware"
)

// actor reads the verified identity the JWT middleware stored in the
// context.  An error means the route was registered without JWTAuth or
// the middleware contract was broken; handlers answer it with 401.
func actor(c echo.Context) (uint64, authz.Role, error) {
	id, ok := c.Get(middleware.CtxUserID).(uint64)
	if !ok || id == 0 {
		return 0, authz.RoleGuest, errors.New("no authenticated user in context")
	}
	role, ok := c.Get(middleware.CtxRole).(string)
	if !ok || role == "" {
		return 0, authz.RoleGuest, errors.New("no role in context")
	}
	return id, authz.Role(role), nil
}

// pathID parses the numeric :id path parameter.
func pathID(c echo.Context) (uint64, error) {
	return strconv.ParseUint(c.Param("id"), 10, 64)
}
