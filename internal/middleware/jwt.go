package middleware // middleware contains reusable HTTP middleware functions

import (
	"net/http" // HTTP status codes for responses
	"strings"  // string utilities for prefix checking and trimming

	"github.com/labstack/echo/v4" // Echo framework used for defining middleware

	"github.com/rocgym/jobboard/internal/auth" // session token verification
)

// Context keys under which the verified identity is stored for handlers.
const (
	CtxUserID = "user_id"
	CtxEmail  = "email"
	CtxRole   = "role"
)

// JWTAuth returns an Echo middleware that validates a Bearer session token
// and injects the verified identity into the request context.  The secret
// must match the one used when issuing tokens.  Handlers behind this
// middleware read the actor via c.Get(CtxUserID) (uint64) and
// c.Get(CtxRole) (string).  A missing, malformed, tampered or expired
// token is answered with 401 before the handler runs; the embedded claims
// of an unverified token are never exposed to handlers.
func JWTAuth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			// A valid header is "Bearer <token>".  Anything else means the
			// caller is unauthenticated.
			header := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "missing bearer token"})
			}
			raw := strings.TrimPrefix(header, "Bearer ")

			claims, err := auth.VerifySessionToken(secret, raw)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid or expired token"})
			}

			c.Set(CtxUserID, claims.UserID)
			c.Set(CtxEmail, claims.Email)
			c.Set(CtxRole, claims.Role)
			return next(c)
		}
	}
}
