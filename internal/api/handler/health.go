package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bookvault/library-api/internal/core/domain"
)

// Pinger reports backing-store connectivity.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler handles the liveness and readiness probes.
type HealthHandler struct {
	store Pinger
}

func NewHealthHandler(store Pinger) *HealthHandler {
	return &HealthHandler{store: store}
}

// Liveness handles GET /health. It reports process liveness only and never
// touches the store.
func (h *HealthHandler) Liveness(c echo.Context) error {
	return c.JSON(http.StatusOK, messageResponse{Message: domain.HealthMessage})
}

// Readiness handles GET /ready. The service is ready only while the store
// answers a ping.
func (h *HealthHandler) Readiness(c echo.Context) error {
	if err := h.store.Ping(c.Request().Context()); err != nil {
		return c.JSON(http.StatusServiceUnavailable, messageResponse{Message: domain.ErrMongoConnectionFailed.Error()})
	}
	return c.JSON(http.StatusOK, messageResponse{Message: domain.HealthMessage})
}
