package middleware

import (
	"context"
	"log/slog"
	"strings"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/gofiber/fiber/v3"
)

// Reviewer identifies the caller of the review API.
type Reviewer struct {
	Subject string
	Email   string
}

// TokenVerifier verifies a raw OIDC ID token.
type TokenVerifier interface {
	Verify(ctx context.Context, rawIDToken string) (*Reviewer, error)
}

// oidcVerifier adapts an oidc.IDTokenVerifier.
type oidcVerifier struct {
	verifier *oidc.IDTokenVerifier
}

// NewOIDCVerifier wraps verifier as a TokenVerifier.
func NewOIDCVerifier(verifier *oidc.IDTokenVerifier) TokenVerifier {
	return &oidcVerifier{verifier: verifier}
}

func (v *oidcVerifier) Verify(ctx context.Context, rawIDToken string) (*Reviewer, error) {
	token, err := v.verifier.Verify(ctx, rawIDToken)
	if err != nil {
		return nil, err
	}
	var claims struct {
		Email string `json:"email"`
	}
	if err := token.Claims(&claims); err != nil {
		return nil, err
	}
	return &Reviewer{Subject: token.Subject, Email: claims.Email}, nil
}

// AuthMiddleware authenticates review API callers by bearer ID token.
type AuthMiddleware struct {
	verifier TokenVerifier
}

// NewAuthMiddleware creates a new auth middleware instance.
func NewAuthMiddleware(verifier TokenVerifier) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier}
}

// RequireIDToken rejects requests without a valid bearer ID token and stores
// the caller in Locals("reviewer").
func (m *AuthMiddleware) RequireIDToken(c fiber.Ctx) error {
	header := c.Get(fiber.HeaderAuthorization)
	raw, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || strings.TrimSpace(raw) == "" {
		return fiber.NewError(fiber.StatusUnauthorized, "missing bearer token")
	}

	reviewer, err := m.verifier.Verify(c.Context(), strings.TrimSpace(raw))
	if err != nil {
		slog.Warn("rejected review API token", "error", err)
		return fiber.NewError(fiber.StatusUnauthorized, "invalid token")
	}

	c.Locals("reviewer", reviewer)
	return c.Next()
}
