package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/nmoreau/go-apihandler/internal/middleware"
	"github.com/nmoreau/go-apihandler/internal/server"
)

// HealthHandler exposes a system endpoint external monitors use to verify
// the service is alive. The service has no backing dependencies, so there
// are no sub-checks to report.
type HealthHandler struct {
	Handler
}

// NewHealthHandler constructs a HealthHandler.
func NewHealthHandler(s *server.Server) *HealthHandler {
	return &HealthHandler{
		Handler: NewHandler(s),
	}
}

// CheckHealth returns 200 with the service status, timestamp and
// environment.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	middleware.GetLogger(c).Debug().
		Str("operation", "health_check").
		Msg("health check")

	return c.JSON(http.StatusOK, map[string]any{
		"status":      "healthy",
		"timestamp":   time.Now().UTC(),
		"environment": h.server.Config.Primary.Env,
	})
}
