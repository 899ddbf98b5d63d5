package api

import (
	"strconv"

	"github.com/gofiber/fiber/v3"

	"haikubot/internal/cache"
	"haikubot/internal/models"
)

const (
	defaultReviewLimit = 100
	maxReviewLimit     = 1000
)

// ReviewHandler lists cached words waiting for manual review.
type ReviewHandler struct {
	reviewer cache.Reviewer
}

// NewReviewHandler creates a new review handler.
func NewReviewHandler(reviewer cache.Reviewer) *ReviewHandler {
	return &ReviewHandler{reviewer: reviewer}
}

// List returns flagged words in word order. Query: limit (1-1000, default 100).
func (h *ReviewHandler) List(c fiber.Ctx) error {
	limit := defaultReviewLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > maxReviewLimit {
			return jsonError(c, fiber.StatusBadRequest, "limit must be between 1 and 1000")
		}
		limit = n
	}

	words, err := h.reviewer.ListNeedingReview(c.Context(), limit)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to list words")
	}
	total, err := h.reviewer.CountNeedingReview(c.Context())
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to count words")
	}

	if words == nil {
		words = []models.CacheEntry{}
	}
	return jsonSuccess(c, models.ReviewAPIResponse{Words: words, Total: total})
}
