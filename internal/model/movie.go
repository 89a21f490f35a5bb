package model

// Movie represents a row in the `movies` table. Movies are seeded at
// startup and are not editable through any exposed endpoint.
//
// Genres are stored comma-joined in a single column and split at the
// repository boundary, so every consumer sees a plain string slice.
type Movie struct {
	MovieID       string   `json:"movie_id"`
	Title         string   `json:"title"`
	Year          string   `json:"year"`
	ContentRating string   `json:"content_rating"`
	PosterURL     string   `json:"poster_url"`
	Plot          string   `json:"plot"`
	Genres        []string `json:"genres"`
}
