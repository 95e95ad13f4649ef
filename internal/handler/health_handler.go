package handler

import (
	"context"
	"time"

	"flag-quiz/internal/domain"
	"flag-quiz/internal/dto"
	"flag-quiz/internal/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const healthCheckTimeout = 2 * time.Second

// HealthHandler reports whether the session store is reachable.
type HealthHandler struct {
	cache   domain.Cache
	catalog *domain.Catalog
}

func NewHealthHandler(cache domain.Cache, catalog *domain.Catalog) *HealthHandler {
	return &HealthHandler{cache: cache, catalog: catalog}
}

// Health godoc
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Failure 503 {object} dto.HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), healthCheckTimeout)
	defer cancel()

	resp := dto.HealthResponse{Status: "ok", Cache: "ok", Countries: h.catalog.Len()}
	if err := h.cache.Ping(ctx); err != nil {
		logger.Get().Warn("Health check: cache unreachable", zap.Error(err))
		resp.Status = "degraded"
		resp.Cache = "unreachable"
		return c.Status(fiber.StatusServiceUnavailable).JSON(resp)
	}
	return c.JSON(resp)
}
