package server

import (
	"context"
	"fmt"
	"log"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"haikubot/internal/cache"
	"haikubot/internal/handlers"
	"haikubot/internal/handlers/api"
	"haikubot/internal/metrics"
	"haikubot/internal/middleware"
	"haikubot/internal/notifier"
	"haikubot/internal/slack"
	"haikubot/internal/syllable"
	"haikubot/internal/wordsapi"
)

// RegisterRoutes wires the haiku pipeline against store and registers all
// application routes. Metrics are registered with reg.
func (s *Server) RegisterRoutes(ctx context.Context, store cache.Store, reg *prometheus.Registry) error {
	var rec *metrics.Recorder
	if s.Cfg.MetricsEnabled {
		var counter metrics.ReviewCounter
		if rc, ok := store.(metrics.ReviewCounter); ok {
			counter = rc
		}
		rec = metrics.New(reg, counter)
		s.App.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))
	}

	// Pipeline collaborators
	words := wordsapi.NewClient(s.Cfg.WordsAPIURL, s.Cfg.RapidAPIKey, s.Cfg.HTTPTimeout)
	oracle := syllable.NewOracle(store, words, rec)
	chat := slack.NewClient(ctx, s.Cfg.SlackAPIURL, s.Cfg.SlackToken, s.Cfg.HTTPTimeout)

	eventsHandler := handlers.NewEventsHandler(oracle, notifier.New(chat, rec), rec, s.Cfg)
	healthHandler := handlers.NewHealthHandler(store)

	s.App.Get("/healthz", healthHandler.Live)
	s.App.Get("/readyz", healthHandler.Ready)

	// Slack events
	if s.Cfg.IsSignatureCheckEnabled() {
		s.App.Post("/slack/events", middleware.SlackSignature(s.Cfg.SlackSigningSecret), eventsHandler.Handle)
	} else {
		log.Println("Slack signature checks are disabled. Set SLACK_SIGNING_SECRET to enable.")
		s.App.Post("/slack/events", eventsHandler.Handle)
	}

	// Review API - only when callers can be authenticated and the backend can list entries
	reviewer, canReview := store.(cache.Reviewer)
	switch {
	case !s.Cfg.IsReviewAPIEnabled():
		log.Println("Review API is disabled. Set OIDC_ISSUER and OIDC_CLIENT_ID to enable.")
	case !canReview:
		log.Printf("Review API is disabled: cache backend %q cannot list entries", s.Cfg.CacheBackend)
	default:
		provider, err := oidc.NewProvider(ctx, s.Cfg.OIDCIssuer)
		if err != nil {
			return fmt.Errorf("failed to initialize OIDC provider: %w", err)
		}
		verifier := provider.Verifier(&oidc.Config{ClientID: s.Cfg.OIDCClientID})
		authMiddleware := middleware.NewAuthMiddleware(middleware.NewOIDCVerifier(verifier))
		reviewHandler := api.NewReviewHandler(reviewer)

		s.App.Get("/api/review", authMiddleware.RequireIDToken, reviewHandler.List)
	}

	return nil
}
