package model

import "time"

// Review represents a row in the `reviews` table. The composite key
// (movie_id, user_id) means a user holds at most one review per movie;
// resubmitting overwrites the previous one.
//
// Rating is the normalized star value in [1,5] with one decimal place.
type Review struct {
	MovieID   string    `json:"movie_id"`
	UserID    string    `json:"user_id"`
	Rating    float64   `json:"rating"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
