// Package handler implements the HTTP endpoints. Handlers depend on
// small store interfaces rather than concrete repositories so the
// validation and auth logic can be tested with in-memory stubs; the
// repository package provides the MySQL implementations.
package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/loopcinemas/loop-api/internal/model"
	"github.com/loopcinemas/loop-api/internal/queue"
)

// UserStore persists accounts.
type UserStore interface {
	Create(ctx context.Context, name, email, password string, cost int) (model.User, error)
	GetByEmail(ctx context.Context, email string) (model.User, error)
	GetByID(ctx context.Context, id string) (model.User, error)
	Update(ctx context.Context, u model.User) error
	Delete(ctx context.Context, id string) error
}

// MovieStore reads the catalogue.
type MovieStore interface {
	List(ctx context.Context) ([]model.Movie, error)
	GetByID(ctx context.Context, id string) (model.Movie, error)
}

// ReviewStore persists reviews keyed by (movie_id, user_id).
type ReviewStore interface {
	ListAll(ctx context.Context) ([]model.Review, error)
	ListByUser(ctx context.Context, userID string) ([]model.Review, error)
	Get(ctx context.Context, movieID, userID string) (model.Review, error)
	Upsert(ctx context.Context, r model.Review) error
	Delete(ctx context.Context, movieID, userID string) error
}

// SessionStore persists showtimes.
type SessionStore interface {
	ListByMovie(ctx context.Context, movieID string) ([]model.Session, error)
	GetByID(ctx context.Context, id string) (model.Session, error)
	InsertBatch(ctx context.Context, sessions []model.Session) error
}

// ReservationStore persists ticket reservations.
type ReservationStore interface {
	Create(ctx context.Context, sessionID, userID string, tickets int) (model.Reservation, error)
	ListByUser(ctx context.Context, userID string) ([]model.Reservation, error)
}

// EventPublisher forwards domain events to the message broker. A nil
// publisher disables eventing; publish failures never fail a request.
type EventPublisher interface {
	PublishReviewSubmitted(ctx context.Context, ev queue.ReviewSubmittedEvent) error
	PublishReservationConfirmed(ctx context.Context, ev queue.ReservationConfirmedEvent) error
}

// errJSON renders the error envelope every failure shares.
func errJSON(c echo.Context, code int, msg string) error {
	return c.JSON(code, echo.Map{"type": "error", "msg": msg})
}

// fieldErrJSON renders a validation failure with a per-field error map.
func fieldErrJSON(c echo.Context, msg string, errs map[string]string) error {
	return c.JSON(http.StatusBadRequest, echo.Map{"type": "error", "msg": msg, "errors": errs})
}

// currentUser reads the user id the auth middleware stored in context.
func currentUser(c echo.Context) string {
	uid, _ := c.Get("user_id").(string)
	return uid
}
