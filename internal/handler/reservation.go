package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/loopcinemas/loop-api/internal/metrics"
	"github.com/loopcinemas/loop-api/internal/queue"
	"github.com/loopcinemas/loop-api/internal/repository"
)

// ReservationHandler books and lists tickets for showtimes.
type ReservationHandler struct {
	Sessions     SessionStore
	Movies       MovieStore
	Reservations ReservationStore
	Events       EventPublisher
}

func NewReservationHandler(sessions SessionStore, movies MovieStore, reservations ReservationStore, events EventPublisher) *ReservationHandler {
	return &ReservationHandler{Sessions: sessions, Movies: movies, Reservations: reservations, Events: events}
}

type createReservationReq struct {
	SessionID string `json:"session_id" validate:"required"`
	Tickets   int    `json:"tickets" validate:"required,min=1,max=10"`
}

// Create books tickets for a session on behalf of the authenticated
// user. Tickets are bounded to [1,10].
func (h *ReservationHandler) Create(c echo.Context) error {
	var req createReservationReq
	if err := c.Bind(&req); err != nil {
		return errJSON(c, http.StatusBadRequest, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		return errJSON(c, http.StatusBadRequest, err.Error())
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	session, err := h.Sessions.GetByID(ctx, req.SessionID)
	if err != nil {
		if err == repository.ErrNotFound {
			return errJSON(c, http.StatusBadRequest, "session not found")
		}
		return errJSON(c, http.StatusInternalServerError, "Internal server error")
	}

	res, err := h.Reservations.Create(ctx, session.SessionID, currentUser(c), req.Tickets)
	if err != nil {
		return errJSON(c, http.StatusInternalServerError, "Internal server error")
	}
	metrics.ReservationsCreatedTotal.Inc()

	if h.Events != nil {
		title := ""
		if movie, err := h.Movies.GetByID(ctx, session.MovieID); err == nil {
			title = movie.Title
		}
		_ = h.Events.PublishReservationConfirmed(ctx, queue.ReservationConfirmedEvent{
			ReservationID: res.ReservationID,
			SessionID:     res.SessionID,
			UserID:        res.UserID,
			MovieTitle:    title,
			SessionTime:   session.SessionTime.Format(time.RFC3339),
			Tickets:       res.Tickets,
			ConfirmedAt:   time.Now().UTC().Format(time.RFC3339),
		})
	}

	return c.JSON(http.StatusCreated, echo.Map{"type": "reservation", "reservation": res})
}

// List returns the authenticated user's reservations.
func (h *ReservationHandler) List(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	reservations, err := h.Reservations.ListByUser(ctx, currentUser(c))
	if err != nil {
		return errJSON(c, http.StatusInternalServerError, "Internal server error")
	}
	return c.JSON(http.StatusOK, echo.Map{"type": "reservations", "reservations": reservations})
}
