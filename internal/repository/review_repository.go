package repository

import (
	"context"
	"database/sql"

	"github.com/loopcinemas/loop-api/internal/model"
)

type ReviewRepo struct{ DB *sql.DB }

func NewReviewRepo(db *sql.DB) *ReviewRepo { return &ReviewRepo{DB: db} }

const reviewColumns = "movie_id,user_id,rating,content,created_at,updated_at"

func scanReviews(rows *sql.Rows) ([]model.Review, error) {
	defer rows.Close()
	reviews := make([]model.Review, 0)
	for rows.Next() {
		var rv model.Review
		if err := rows.Scan(&rv.MovieID, &rv.UserID, &rv.Rating, &rv.Content, &rv.CreatedAt, &rv.UpdatedAt); err != nil {
			return nil, err
		}
		reviews = append(reviews, rv)
	}
	return reviews, rows.Err()
}

// ListAll returns every review.
func (r *ReviewRepo) ListAll(ctx context.Context) ([]model.Review, error) {
	rows, err := r.DB.QueryContext(ctx, "SELECT "+reviewColumns+" FROM reviews")
	if err != nil {
		return nil, err
	}
	return scanReviews(rows)
}

// ListByUser returns one user's reviews.
func (r *ReviewRepo) ListByUser(ctx context.Context, userID string) ([]model.Review, error) {
	rows, err := r.DB.QueryContext(ctx, "SELECT "+reviewColumns+" FROM reviews WHERE user_id=?", userID)
	if err != nil {
		return nil, err
	}
	return scanReviews(rows)
}

// Get fetches the review addressed by the composite key.
func (r *ReviewRepo) Get(ctx context.Context, movieID, userID string) (model.Review, error) {
	var rv model.Review
	err := r.DB.QueryRowContext(ctx,
		"SELECT "+reviewColumns+" FROM reviews WHERE movie_id=? AND user_id=? LIMIT 1",
		movieID, userID).Scan(&rv.MovieID, &rv.UserID, &rv.Rating, &rv.Content, &rv.CreatedAt, &rv.UpdatedAt)
	if err == sql.ErrNoRows {
		return model.Review{}, ErrNotFound
	}
	return rv, err
}

// Upsert inserts the review or overwrites the existing row for the same
// (movie_id, user_id) pair. The single statement is the only atomicity
// the write path relies on.
func (r *ReviewRepo) Upsert(ctx context.Context, rv model.Review) error {
	_, err := r.DB.ExecContext(ctx,
		`INSERT INTO reviews (movie_id, user_id, rating, content)
		 VALUES (?,?,?,?)
		 ON DUPLICATE KEY UPDATE rating=VALUES(rating), content=VALUES(content), updated_at=NOW()`,
		rv.MovieID, rv.UserID, rv.Rating, rv.Content)
	return err
}

// Delete removes the review addressed by the composite key. Deleting a
// pair that was never written is an error, not a silent no-op.
func (r *ReviewRepo) Delete(ctx context.Context, movieID, userID string) error {
	res, err := r.DB.ExecContext(ctx,
		"DELETE FROM reviews WHERE movie_id=? AND user_id=?", movieID, userID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}
