package review

import (
	"sort"

	"github.com/loopcinemas/loop-api/internal/model"
)

// RankedMovie pairs a movie with its rating aggregate.
type RankedMovie struct {
	model.Movie
	AvgRating   float64 `json:"avg_rating"`
	ReviewCount int     `json:"review_count"`
}

// Rank folds all reviews into per-movie sums and orders movies by mean
// rating descending. Ties break on review count descending, and movies
// with no reviews sort last regardless of order among themselves.
func Rank(movies []model.Movie, reviews []model.Review) []RankedMovie {
	type agg struct {
		sum   float64
		count int
	}
	byMovie := make(map[string]*agg, len(movies))
	for _, r := range reviews {
		a := byMovie[r.MovieID]
		if a == nil {
			a = &agg{}
			byMovie[r.MovieID] = a
		}
		a.sum += r.Rating
		a.count++
	}

	ranked := make([]RankedMovie, 0, len(movies))
	for _, m := range movies {
		rm := RankedMovie{Movie: m}
		if a := byMovie[m.MovieID]; a != nil && a.count > 0 {
			rm.AvgRating = a.sum / float64(a.count)
			rm.ReviewCount = a.count
		}
		ranked = append(ranked, rm)
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if (a.ReviewCount == 0) != (b.ReviewCount == 0) {
			return b.ReviewCount == 0
		}
		if a.AvgRating != b.AvgRating {
			return a.AvgRating > b.AvgRating
		}
		return a.ReviewCount > b.ReviewCount
	})
	return ranked
}
