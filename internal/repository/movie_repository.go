package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/loopcinemas/loop-api/internal/model"
)

type MovieRepo struct{ DB *sql.DB }

func NewMovieRepo(db *sql.DB) *MovieRepo { return &MovieRepo{DB: db} }

// splitGenres turns the comma-joined column value back into a slice.
// The slice is never nil so JSON renders [] instead of null.
func splitGenres(s string) []string {
	if s == "" {
		return []string{}
	}
	return strings.Split(s, ",")
}

// List returns the whole catalogue.
func (r *MovieRepo) List(ctx context.Context) ([]model.Movie, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT movie_id,title,year,content_rating,poster_url,plot,genres FROM movies ORDER BY title")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	movies := make([]model.Movie, 0)
	for rows.Next() {
		var m model.Movie
		var genres string
		if err := rows.Scan(&m.MovieID, &m.Title, &m.Year, &m.ContentRating, &m.PosterURL, &m.Plot, &genres); err != nil {
			return nil, err
		}
		m.Genres = splitGenres(genres)
		movies = append(movies, m)
	}
	return movies, rows.Err()
}

// GetByID fetches a single movie.
func (r *MovieRepo) GetByID(ctx context.Context, id string) (model.Movie, error) {
	var m model.Movie
	var genres string
	err := r.DB.QueryRowContext(ctx,
		"SELECT movie_id,title,year,content_rating,poster_url,plot,genres FROM movies WHERE movie_id=? LIMIT 1",
		id).Scan(&m.MovieID, &m.Title, &m.Year, &m.ContentRating, &m.PosterURL, &m.Plot, &genres)
	if err != nil {
		return model.Movie{}, err
	}
	m.Genres = splitGenres(genres)
	return m, nil
}

// Count returns the number of catalogue rows; used to decide whether
// the seed fixtures should be inserted.
func (r *MovieRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM movies").Scan(&n)
	return n, err
}

// Insert writes one movie, joining genres at the storage boundary.
func (r *MovieRepo) Insert(ctx context.Context, m model.Movie) error {
	_, err := r.DB.ExecContext(ctx,
		"INSERT INTO movies (movie_id,title,year,content_rating,poster_url,plot,genres) VALUES (?,?,?,?,?,?,?)",
		m.MovieID, m.Title, m.Year, m.ContentRating, m.PosterURL, m.Plot, strings.Join(m.Genres, ","))
	return err
}
