package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v3"

	"haikubot/internal/cache"
)

// HealthHandler reports process and cache health.
type HealthHandler struct {
	store cache.Store
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(store cache.Store) *HealthHandler {
	return &HealthHandler{store: store}
}

// Live always answers ok while the process serves requests.
func (h *HealthHandler) Live(c fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// Ready pings the cache backend when it supports a ping.
func (h *HealthHandler) Ready(c fiber.Ctx) error {
	if p, ok := h.store.(cache.Pinger); ok {
		if err := p.Ping(c.Context()); err != nil {
			slog.Error("cache not ready", "error", err)
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"status": "unavailable",
				"error":  "cache unreachable",
			})
		}
	}
	return c.JSON(fiber.Map{"status": "ok"})
}
