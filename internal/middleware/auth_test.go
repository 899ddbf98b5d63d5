package middleware

import (
	"context"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/gofiber/fiber/v3"
)

type fakeVerifier struct {
	token string
}

func (f fakeVerifier) Verify(_ context.Context, raw string) (*Reviewer, error) {
	if raw != f.token {
		return nil, errors.New("bad token")
	}
	return &Reviewer{Subject: "U1", Email: "basho@example.com"}, nil
}

func newReviewApp(v TokenVerifier) *fiber.App {
	app := fiber.New()
	m := NewAuthMiddleware(v)
	app.Get("/review", m.RequireIDToken, func(c fiber.Ctx) error {
		r, _ := c.Locals("reviewer").(*Reviewer)
		return c.SendString(r.Email)
	})
	return app
}

func TestRequireIDToken(t *testing.T) {
	app := newReviewApp(fakeVerifier{token: "good"})

	tests := []struct {
		name     string
		header   string
		wantCode int
		wantBody string
	}{
		{"no header", "", 401, ""},
		{"wrong scheme", "Basic Zm9vOmJhcg==", 401, ""},
		{"empty bearer", "Bearer ", 401, ""},
		{"invalid token", "Bearer nope", 401, ""},
		{"valid token", "Bearer good", 200, "basho@example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/review", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("request failed: %v", err)
			}
			if resp.StatusCode != tt.wantCode {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.wantCode)
			}
			if tt.wantBody != "" {
				body, _ := io.ReadAll(resp.Body)
				if string(body) != tt.wantBody {
					t.Errorf("body = %q, want %q", body, tt.wantBody)
				}
			}
		})
	}
}

func TestOIDCVerifierRejectsGarbage(t *testing.T) {
	verifier := oidc.NewVerifier("https://slack.com", &oidc.StaticKeySet{}, &oidc.Config{ClientID: "client"})
	app := newReviewApp(NewOIDCVerifier(verifier))

	req := httptest.NewRequest("GET", "/review", nil)
	req.Header.Set("Authorization", "Bearer not.a.jwt")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != 401 {
		t.Errorf("status = %d, want 401", resp.StatusCode)
	}
}
