package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/loopcinemas/loop-api/internal/model"
)

type ReservationRepo struct{ DB *sql.DB }

func NewReservationRepo(db *sql.DB) *ReservationRepo { return &ReservationRepo{DB: db} }

// Create inserts a reservation under a fresh UUID and returns the
// stored row.
func (r *ReservationRepo) Create(ctx context.Context, sessionID, userID string, tickets int) (model.Reservation, error) {
	id := uuid.NewString()
	_, err := r.DB.ExecContext(ctx,
		"INSERT INTO reservations (reservation_id, session_id, user_id, tickets) VALUES (?,?,?,?)",
		id, sessionID, userID, tickets)
	if err != nil {
		return model.Reservation{}, err
	}
	var res model.Reservation
	err = r.DB.QueryRowContext(ctx,
		"SELECT reservation_id,session_id,user_id,tickets,created_at FROM reservations WHERE reservation_id=? LIMIT 1",
		id).Scan(&res.ReservationID, &res.SessionID, &res.UserID, &res.Tickets, &res.CreatedAt)
	return res, err
}

// ListByUser returns the caller's reservations, newest first.
func (r *ReservationRepo) ListByUser(ctx context.Context, userID string) ([]model.Reservation, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT reservation_id,session_id,user_id,tickets,created_at FROM reservations WHERE user_id=? ORDER BY created_at DESC",
		userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reservations := make([]model.Reservation, 0)
	for rows.Next() {
		var res model.Reservation
		if err := rows.Scan(&res.ReservationID, &res.SessionID, &res.UserID, &res.Tickets, &res.CreatedAt); err != nil {
			return nil, err
		}
		reservations = append(reservations, res)
	}
	return reservations, rows.Err()
}
