package review

import (
	"testing"

	"github.com/loopcinemas/loop-api/internal/model"
)

func TestRankOrdersByMeanThenCount(t *testing.T) {
	movies := []model.Movie{
		{MovieID: "a", Title: "A"},
		{MovieID: "b", Title: "B"},
		{MovieID: "c", Title: "C"},
	}
	reviews := []model.Review{
		{MovieID: "a", UserID: "u1", Rating: 5},
		{MovieID: "a", UserID: "u2", Rating: 5},
		{MovieID: "b", UserID: "u1", Rating: 5},
	}

	ranked := Rank(movies, reviews)
	if len(ranked) != 3 {
		t.Fatalf("expected 3 movies, got %d", len(ranked))
	}
	// A and B tie on mean 5.0; A wins on review count, C has no reviews.
	if ranked[0].MovieID != "a" || ranked[1].MovieID != "b" || ranked[2].MovieID != "c" {
		t.Fatalf("wrong order: %s %s %s", ranked[0].MovieID, ranked[1].MovieID, ranked[2].MovieID)
	}
	if ranked[0].AvgRating != 5 || ranked[0].ReviewCount != 2 {
		t.Fatalf("bad aggregate for a: %v %d", ranked[0].AvgRating, ranked[0].ReviewCount)
	}
	if ranked[2].AvgRating != 0 || ranked[2].ReviewCount != 0 {
		t.Fatalf("unreviewed movie should carry zero aggregate: %+v", ranked[2])
	}
}

func TestRankUnreviewedSortLast(t *testing.T) {
	movies := []model.Movie{
		{MovieID: "x"},
		{MovieID: "y"},
	}
	reviews := []model.Review{
		{MovieID: "y", UserID: "u1", Rating: 1},
	}

	ranked := Rank(movies, reviews)
	// Even a 1-star movie outranks one nobody reviewed.
	if ranked[0].MovieID != "y" {
		t.Fatalf("reviewed movie should come first, got %s", ranked[0].MovieID)
	}
}

func TestRankMeanComputation(t *testing.T) {
	movies := []model.Movie{{MovieID: "m"}}
	reviews := []model.Review{
		{MovieID: "m", UserID: "u1", Rating: 2},
		{MovieID: "m", UserID: "u2", Rating: 5},
	}

	ranked := Rank(movies, reviews)
	if ranked[0].AvgRating != 3.5 {
		t.Fatalf("expected mean 3.5, got %v", ranked[0].AvgRating)
	}
}
