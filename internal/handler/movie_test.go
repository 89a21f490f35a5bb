package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/loopcinemas/loop-api/internal/model"
)

func TestTopMoviesOrdering(t *testing.T) {
	movies := &stubMovieStore{movies: []model.Movie{
		{MovieID: "a", Title: "A"},
		{MovieID: "b", Title: "B"},
		{MovieID: "c", Title: "C"},
	}}
	reviews := &stubReviewStore{stored: map[string]model.Review{
		reviewKey("a", "u1"): {MovieID: "a", UserID: "u1", Rating: 5},
		reviewKey("a", "u2"): {MovieID: "a", UserID: "u2", Rating: 5},
		reviewKey("b", "u1"): {MovieID: "b", UserID: "u1", Rating: 5},
	}}
	h := NewMovieHandler(movies, reviews)

	c, rec := newQueryContext("/api/movies/top")
	if err := h.Top(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Type   string `json:"type"`
		Movies []struct {
			MovieID     string  `json:"movie_id"`
			AvgRating   float64 `json:"avg_rating"`
			ReviewCount int     `json:"review_count"`
		} `json:"movies"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Type != "movies" {
		t.Fatalf("expected type movies, got %s", resp.Type)
	}
	if len(resp.Movies) != 3 {
		t.Fatalf("expected 3 movies, got %d", len(resp.Movies))
	}
	if resp.Movies[0].MovieID != "a" || resp.Movies[1].MovieID != "b" || resp.Movies[2].MovieID != "c" {
		t.Fatalf("wrong order: %+v", resp.Movies)
	}
	if resp.Movies[0].AvgRating != 5 || resp.Movies[0].ReviewCount != 2 {
		t.Fatalf("bad aggregate: %+v", resp.Movies[0])
	}
}

func TestListMoviesEnvelope(t *testing.T) {
	movies := &stubMovieStore{movies: []model.Movie{
		{MovieID: "tt1", Title: "Oppenheimer", Genres: []string{"Drama"}},
	}}
	h := NewMovieHandler(movies, &stubReviewStore{})

	c, rec := newQueryContext("/api/movies")
	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	var resp map[string]json.RawMessage
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if string(resp["type"]) != `"movies"` {
		t.Fatalf("expected movies envelope, got %s", resp["type"])
	}
}
