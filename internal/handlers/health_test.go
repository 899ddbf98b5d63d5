package handlers

import (
	"context"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"

	"haikubot/internal/cache"
)

type downStore struct {
	*cache.Memory
}

func (downStore) Ping(context.Context) error { return errors.New("connection refused") }

func TestHealthHandler(t *testing.T) {
	tests := []struct {
		name     string
		store    cache.Store
		path     string
		wantCode int
	}{
		{"live", cache.NewMemory(), "/healthz", 200},
		{"ready without ping support", cache.NewMemory(), "/readyz", 200},
		{"ready with failing ping", downStore{cache.NewMemory()}, "/readyz", 503},
		{"live with failing ping", downStore{cache.NewMemory()}, "/healthz", 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHealthHandler(tt.store)
			app := fiber.New()
			app.Get("/healthz", h.Live)
			app.Get("/readyz", h.Ready)

			resp, err := app.Test(httptest.NewRequest("GET", tt.path, nil))
			if err != nil {
				t.Fatalf("request failed: %v", err)
			}
			if resp.StatusCode != tt.wantCode {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.wantCode)
			}
		})
	}
}
