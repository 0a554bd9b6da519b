package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/event-budget-service/internal/persistence"
)

// HealthHandler serves liveness and readiness probes.
type HealthHandler struct {
	version string
	db      *persistence.Postgres
	redis   *persistence.Redis
}

// NewHealthHandler constructs the handler.
func NewHealthHandler(version string, db *persistence.Postgres, redis *persistence.Redis) *HealthHandler {
	return &HealthHandler{version: version, db: db, redis: redis}
}

// Live handles GET /health/live.
func (h *HealthHandler) Live(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok", "version": h.version})
}

// Ready handles GET /health/ready. Redis being down degrades the summary
// cache but does not fail readiness.
func (h *HealthHandler) Ready(c *fiber.Ctx) error {
	checks := fiber.Map{}
	status := fiber.StatusOK

	if err := h.db.Ping(c.Context()); err != nil {
		checks["postgres"] = err.Error()
		status = fiber.StatusServiceUnavailable
	} else {
		checks["postgres"] = "ok"
	}

	if err := h.redis.Ping(c.Context()); err != nil {
		checks["redis"] = "degraded: " + err.Error()
	} else {
		checks["redis"] = "ok"
	}

	return c.Status(status).JSON(fiber.Map{"version": h.version, "checks": checks})
}
