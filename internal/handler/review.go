package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/loopcinemas/loop-api/internal/metrics"
	"github.com/loopcinemas/loop-api/internal/queue"
	"github.com/loopcinemas/loop-api/internal/repository"
	"github.com/loopcinemas/loop-api/internal/review"
)

// ReviewHandler bundles dependencies for the review endpoints.
type ReviewHandler struct {
	Reviews ReviewStore
	Events  EventPublisher
}

func NewReviewHandler(reviews ReviewStore, events EventPublisher) *ReviewHandler {
	return &ReviewHandler{Reviews: reviews, Events: events}
}

type postReviewReq struct {
	MovieID string `json:"movie_id"`
	Rating  *int   `json:"rating"`
	Content string `json:"content"`
	Human   string `json:"human"`
}

type deleteReviewReq struct {
	MovieID string `json:"movie_id"`
	UserID  string `json:"user_id"`
}

// List returns all reviews, optionally filtered by user_id.
func (h *ReviewHandler) List(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if userID := c.QueryParam("user_id"); userID != "" {
		reviews, err := h.Reviews.ListByUser(ctx, userID)
		if err != nil {
			return errJSON(c, http.StatusInternalServerError, "Internal server error")
		}
		return c.JSON(http.StatusOK, echo.Map{"type": "reviews", "reviews": reviews})
	}
	reviews, err := h.Reviews.ListAll(ctx)
	if err != nil {
		return errJSON(c, http.StatusInternalServerError, "Internal server error")
	}
	return c.JSON(http.StatusOK, echo.Map{"type": "reviews", "reviews": reviews})
}

// Post validates a submission against the review policy and upserts it
// keyed by (movie_id, user_id). The acting user always comes from the
// session token, never the body.
func (h *ReviewHandler) Post(c echo.Context) error {
	var req postReviewReq
	if err := c.Bind(&req); err != nil {
		return errJSON(c, http.StatusBadRequest, "invalid body")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	userID := currentUser(c)
	history, err := h.Reviews.ListByUser(ctx, userID)
	if err != nil {
		return errJSON(c, http.StatusInternalServerError, "Internal server error")
	}

	normalized, verrs := review.Validate(review.Input{
		MovieID: req.MovieID,
		UserID:  userID,
		Rating:  req.Rating,
		Content: req.Content,
		Human:   req.Human,
	}, history, time.Now().UTC())
	if len(verrs) > 0 {
		metrics.ReviewsRejectedTotal.WithLabelValues(rejectReason(verrs)).Inc()
		return fieldErrJSON(c, "review validation failed", verrs)
	}

	// The cooldown check and this write are not one transaction; two
	// near-simultaneous submissions can both pass the check. Accepted
	// for this domain.
	if err := h.Reviews.Upsert(ctx, normalized); err != nil {
		return errJSON(c, http.StatusInternalServerError, "Internal server error")
	}
	metrics.ReviewsSubmittedTotal.Inc()

	if h.Events != nil {
		_ = h.Events.PublishReviewSubmitted(ctx, queue.ReviewSubmittedEvent{
			MovieID:     normalized.MovieID,
			UserID:      normalized.UserID,
			Rating:      normalized.Rating,
			SubmittedAt: time.Now().UTC().Format(time.RFC3339),
		})
	}

	return c.JSON(http.StatusOK, echo.Map{"type": "success", "msg": "review submitted"})
}

// Delete removes a review. The caller must own it, and deleting a pair
// that does not exist is an error rather than a no-op.
func (h *ReviewHandler) Delete(c echo.Context) error {
	var req deleteReviewReq
	if err := c.Bind(&req); err != nil || req.MovieID == "" || req.UserID == "" {
		return errJSON(c, http.StatusBadRequest, "movie_id not found")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	existing, err := h.Reviews.Get(ctx, req.MovieID, req.UserID)
	if err != nil {
		if err == repository.ErrNotFound {
			return errJSON(c, http.StatusBadRequest, "Review does not exist")
		}
		return errJSON(c, http.StatusInternalServerError, "Internal server error")
	}
	if existing.UserID != currentUser(c) {
		return errJSON(c, http.StatusBadRequest, "Invalid user")
	}

	if err := h.Reviews.Delete(ctx, req.MovieID, req.UserID); err != nil {
		if err == repository.ErrNotFound {
			return errJSON(c, http.StatusBadRequest, "Review does not exist")
		}
		return errJSON(c, http.StatusInternalServerError, "Internal server error")
	}
	return c.JSON(http.StatusOK, echo.Map{"type": "success", "msg": "review deleted"})
}

// rejectReason buckets a validation failure for the rejection counter.
// Violations can co-occur; broken fields take precedence as the cause.
func rejectReason(errs review.FieldErrors) string {
	for _, f := range []string{"movie_id", "user_id", "rating", "content"} {
		if _, ok := errs[f]; ok {
			return "fields"
		}
	}
	if _, ok := errs["message"]; ok {
		return "cooldown"
	}
	return "human_check"
}
