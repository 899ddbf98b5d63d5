package middleware

import (
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v3"

	"haikubot/internal/slack"
)

// SlackSignature rejects requests not signed with the app's signing secret.
func SlackSignature(secret string) fiber.Handler {
	return func(c fiber.Ctx) error {
		err := slack.VerifySignature(
			secret,
			c.Get(slack.HeaderTimestamp),
			c.Get(slack.HeaderSignature),
			c.Body(),
			time.Now(),
		)
		if err != nil {
			slog.Warn("rejected unsigned slack request", "ip", c.IP(), "error", err)
			return fiber.NewError(fiber.StatusUnauthorized, err.Error())
		}
		return c.Next()
	}
}
