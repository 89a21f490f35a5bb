package repository

import (
	"context"
	"database/sql"

	"github.com/loopcinemas/loop-api/internal/model"
)

type SessionRepo struct{ DB *sql.DB }

func NewSessionRepo(db *sql.DB) *SessionRepo { return &SessionRepo{DB: db} }

// ListByMovie returns a movie's showtimes ordered by start time.
func (r *SessionRepo) ListByMovie(ctx context.Context, movieID string) ([]model.Session, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT session_id,movie_id,session_time FROM sessions WHERE movie_id=? ORDER BY session_time",
		movieID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sessions := make([]model.Session, 0)
	for rows.Next() {
		var s model.Session
		if err := rows.Scan(&s.SessionID, &s.MovieID, &s.SessionTime); err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}
	return sessions, rows.Err()
}

// GetByID fetches a single session.
func (r *SessionRepo) GetByID(ctx context.Context, id string) (model.Session, error) {
	var s model.Session
	err := r.DB.QueryRowContext(ctx,
		"SELECT session_id,movie_id,session_time FROM sessions WHERE session_id=? LIMIT 1",
		id).Scan(&s.SessionID, &s.MovieID, &s.SessionTime)
	if err == sql.ErrNoRows {
		return model.Session{}, ErrNotFound
	}
	return s, err
}

// InsertBatch stores generated showtimes in one transaction.
func (r *SessionRepo) InsertBatch(ctx context.Context, sessions []model.Session) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx,
		"INSERT INTO sessions (session_id, movie_id, session_time) VALUES (?,?,?)")
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, s := range sessions {
		if _, err := stmt.ExecContext(ctx, s.SessionID, s.MovieID, s.SessionTime); err != nil {
			return err
		}
	}
	return tx.Commit()
}
