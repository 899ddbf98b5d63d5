package middleware

import (
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v3"

	"haikubot/internal/slack"
)

func TestSlackSignature(t *testing.T) {
	const secret = "signing-secret"
	app := fiber.New()
	app.Post("/slack/events", SlackSignature(secret), func(c fiber.Ctx) error {
		return c.SendString("ok")
	})

	body := `{"type":"event_callback","event":{"type":"message"}}`
	now := strconv.FormatInt(time.Now().Unix(), 10)
	old := strconv.FormatInt(time.Now().Add(-time.Hour).Unix(), 10)

	tests := []struct {
		name      string
		timestamp string
		signature string
		wantCode  int
	}{
		{"signed", now, slack.Sign(secret, now, []byte(body)), 200},
		{"unsigned", "", "", 401},
		{"wrong secret", now, slack.Sign("nope", now, []byte(body)), 401},
		{"replayed", old, slack.Sign(secret, old, []byte(body)), 401},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/slack/events", strings.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			if tt.timestamp != "" {
				req.Header.Set(slack.HeaderTimestamp, tt.timestamp)
			}
			if tt.signature != "" {
				req.Header.Set(slack.HeaderSignature, tt.signature)
			}
			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("request failed: %v", err)
			}
			if resp.StatusCode != tt.wantCode {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.wantCode)
			}
		})
	}
}
