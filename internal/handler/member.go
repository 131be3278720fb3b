package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rocgym/jobboard/internal/authz"
)

// MemberHandler serves the admin-only member listing.
type MemberHandler struct {
	Members MemberStore
}

func NewMemberHandler(members MemberStore) *MemberHandler {
	return &MemberHandler{Members: members}
}

// List handles GET /members.  The route already sits behind
// RequireRole(admin); the policy is still evaluated here so the handler
// does not silently widen if the route wiring ever changes.
func (h *MemberHandler) List(c echo.Context) error {
	actorID, role, err := actor(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	if !authz.Can(role, actorID, authz.ActionReadMembers, authz.Resource{}) {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
	}

	members, err := h.Members.ListAll(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"members": members, "count": len(members)})
}
