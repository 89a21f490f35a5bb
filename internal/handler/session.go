package handler

import (
	"context"
	"database/sql"
	"math/rand"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/loopcinemas/loop-api/internal/model"
)

// SessionHandler serves showtimes and the bulk generation routine.
type SessionHandler struct {
	Movies   MovieStore
	Sessions SessionStore
}

func NewSessionHandler(movies MovieStore, sessions SessionStore) *SessionHandler {
	return &SessionHandler{Movies: movies, Sessions: sessions}
}

// List returns all sessions for a movie.
func (h *SessionHandler) List(c echo.Context) error {
	movieID := c.QueryParam("movie_id")
	if movieID == "" {
		return errJSON(c, http.StatusBadRequest, "movie_id not found")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if _, err := h.Movies.GetByID(ctx, movieID); err != nil {
		if err == sql.ErrNoRows {
			return errJSON(c, http.StatusBadRequest, "movie not found")
		}
		return errJSON(c, http.StatusInternalServerError, "Internal server error")
	}

	sessions, err := h.Sessions.ListByMovie(ctx, movieID)
	if err != nil {
		return errJSON(c, http.StatusInternalServerError, "Internal server error")
	}
	return c.JSON(http.StatusOK, echo.Map{"type": "sessions", "sessions": sessions})
}

// Generate creates randomized showtimes for every movie in the
// catalogue and stores them in one batch.
func (h *SessionHandler) Generate(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	movies, err := h.Movies.List(ctx)
	if err != nil {
		return errJSON(c, http.StatusInternalServerError, "Internal server error")
	}

	sessions := make([]model.Session, 0, len(movies)*6)
	for _, m := range movies {
		sessions = append(sessions, generateSessions(m.MovieID, time.Now().UTC())...)
	}
	if err := h.Sessions.InsertBatch(ctx, sessions); err != nil {
		return errJSON(c, http.StatusInternalServerError, "Internal server error")
	}
	return c.JSON(http.StatusOK, echo.Map{"type": "success", "msg": "sessions generated"})
}

// Showtimes land on afternoon/evening slots: 2-11 PM on the hour
// offsets, minutes in ten-minute steps from :10 to :50.
var (
	showHours   = []int{14, 15, 16, 17, 18, 19, 20, 21, 22, 23}
	showMinutes = []int{10, 20, 30, 40, 50}
)

// generateSessions builds 1-5 de-duplicated showtimes per day for each
// of the next six days.
func generateSessions(movieID string, now time.Time) []model.Session {
	sessions := make([]model.Session, 0, 6*5)
	for day := 1; day < 7; day++ {
		date := now.AddDate(0, 0, day)
		seen := map[time.Time]bool{}
		n := rand.Intn(5) + 1
		for i := 0; i < n; i++ {
			hour := showHours[rand.Intn(len(showHours))]
			minute := showMinutes[rand.Intn(len(showMinutes))]
			at := time.Date(date.Year(), date.Month(), date.Day(), hour, minute, 0, 0, time.UTC)
			if seen[at] {
				continue
			}
			seen[at] = true
			sessions = append(sessions, model.Session{
				SessionID:   uuid.NewString(),
				MovieID:     movieID,
				SessionTime: at,
			})
		}
	}
	return sessions
}
