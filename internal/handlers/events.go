package handlers

import (
	"encoding/json"
	"log/slog"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"haikubot/internal/config"
	"haikubot/internal/haiku"
	"haikubot/internal/metrics"
	"haikubot/internal/models"
	"haikubot/internal/notifier"
	"haikubot/internal/slack"
)

// EventsHandler runs the haiku pipeline for inbound Slack events.
type EventsHandler struct {
	counter  haiku.Counter
	notifier *notifier.Notifier
	metrics  *metrics.Recorder
	cfg      *config.Config
}

// NewEventsHandler creates a new events handler.
func NewEventsHandler(counter haiku.Counter, n *notifier.Notifier, rec *metrics.Recorder, cfg *config.Config) *EventsHandler {
	return &EventsHandler{counter: counter, notifier: n, metrics: rec, cfg: cfg}
}

// Handle processes one event delivery. Filtered events and messages that are
// not haiku are acknowledged with an empty 200; a haiku is posted in thread
// and its text returned as the body. Failures talking to the word service,
// the cache or the profile API return an error so the platform redelivers.
func (h *EventsHandler) Handle(c fiber.Ctx) error {
	var env models.EventEnvelope
	if err := json.Unmarshal(c.Body(), &env); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid event payload")
	}

	if env.Type == models.EnvelopeURLVerification {
		if !h.cfg.SlackAllowURLVerification {
			slog.Warn("ignoring url_verification challenge; set SLACK_ALLOW_URL_VERIFICATION to install")
			return ack(c)
		}
		return c.JSON(models.ChallengeResponse{Challenge: env.Challenge})
	}

	runID := uuid.NewString()
	c.Set(runIDHeader, runID)
	log := slog.With("run_id", runID, "event_id", env.EventID, "channel", env.Event.Channel)

	event := env.Event
	if slack.ShouldIgnore(event) {
		h.metrics.Event(metrics.OutcomeIgnored)
		return ack(c)
	}

	ctx := c.Context()
	poem, ok, err := haiku.Segment(ctx, h.counter, event.Text)
	if err != nil {
		h.metrics.Event(metrics.OutcomeFailed)
		log.Error("segmentation failed", "error", err)
		return err
	}
	if !ok {
		h.metrics.Event(metrics.OutcomeNotHaiku)
		return ack(c)
	}

	log.Info("this is a haiku", "user", event.User)
	text, err := h.notifier.Notify(ctx, poem, event.User, event.Channel, event.TS)
	if err != nil {
		h.metrics.Event(metrics.OutcomeFailed)
		log.Error("notify failed", "error", err)
		return err
	}

	h.metrics.Event(metrics.OutcomeHaiku)
	return c.SendString(text)
}
