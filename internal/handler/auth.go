package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/rocgym/jobboard/internal/auth"
	"github.com/rocgym/jobboard/internal/authz"
	"github.com/rocgym/jobboard/internal/config"
	"github.com/rocgym/jobboard/internal/repository"
)

// AuthHandler bundles dependencies for the auth endpoints.
type AuthHandler struct {
	Cfg   config.Config
	Users UserStore
}

func NewAuthHandler(cfg config.Config, users UserStore) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Users: users}
}

// ----- DTOs -----

type registerReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"` // admin | recruiter | user
}
type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
type userPart struct {
	ID    uint64 `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}
type loginResp struct {
	Token   string    `json:"token"`
	Expires time.Time `json:"expires"`
	User    userPart  `json:"user"`
}

// Register creates a new account.  The chosen role is validated against
// the fixed role set and is immutable afterwards; there is no elevation
// endpoint.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Email == "" || req.Password == "" || req.Role == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "email, password and role are required"})
	}
	role := strings.ToLower(strings.TrimSpace(req.Role))
	if !authz.ValidRegistrationRole(role) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid role specified"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	uid, err := h.Users.Create(ctx, req.Email, req.Password, role, h.Cfg.BcryptCost)
	if err != nil {
		if errors.Is(err, repository.ErrEmailExists) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "user with this email already exists"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create user failed"})
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"message": "user registered successfully",
		"user_id": uid,
	})
}

// Login verifies credentials and returns a signed session token.  Unknown
// email and wrong password produce the same 401 so the endpoint does not
// leak which emails are registered.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "email and password are required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.Users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	if !auth.VerifyPassword(u.PasswordHash, req.Password) {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
	}

	tok, err := auth.NewSessionToken(h.Cfg.JWTSecret, u.ID, u.Email, u.Role, h.Cfg.TokenTTLMin)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue token failed"})
	}

	return c.JSON(http.StatusOK, loginResp{
		Token:   tok.Token,
		Expires: tok.Exp,
		User:    userPart{ID: u.ID, Email: u.Email, Role: u.Role},
	})
}

// Logout acknowledges the end of a session.  Session tokens are stateless
// and carry their own expiry, so there is nothing to revoke server-side;
// the client removes the stored token.  The route sits behind JWTAuth so
// only a holder of a valid token can "log out".
func (h *AuthHandler) Logout(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"message": "successfully logged out, please remove the token from the client",
	})
}

// Me returns the account behind the calling token.  The record is re-read
// from the store rather than echoed from the claims, so a token for an
// account that has since been removed is answered with 401.
func (h *AuthHandler) Me(c echo.Context) error {
	id, _, err := actor(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.Users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "account no longer exists"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, userPart{ID: u.ID, Email: u.Email, Role: u.Role})
}
