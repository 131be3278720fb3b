package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// Pinger is the slice of *sql.DB the health check needs.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthHandler reports service and database health for load balancers
// and monitoring.
type HealthHandler struct {
	DB Pinger
}

func NewHealthHandler(db Pinger) *HealthHandler { return &HealthHandler{DB: db} }

// Check handles GET /health.  A reachable database answers 200; anything
// else degrades to 503 so orchestrators stop routing traffic here.
func (h *HealthHandler) Check(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
	defer cancel()

	now := time.Now().UTC().Format(time.RFC3339)
	if err := h.DB.PingContext(ctx); err != nil {
		return c.JSON(http.StatusServiceUnavailable, echo.Map{
			"status":    "unhealthy",
			"database":  "disconnected",
			"error":     err.Error(),
			"timestamp": now,
		})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"status":    "healthy",
		"database":  "connected",
		"timestamp": now,
	})
}
