package handlers

import (
	"github.com/gofiber/fiber/v3"
)

// runIDHeader echoes the per-event run id so a delivery can be matched to
// its log lines.
const runIDHeader = "X-Run-ID"

// ack answers 200 with no body: the event was accepted but produced nothing.
func ack(c fiber.Ctx) error {
	c.Status(fiber.StatusOK)
	return nil
}
