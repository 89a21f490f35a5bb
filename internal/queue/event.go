// Package queue defines message payloads exchanged over the message
// broker and the background consumer that records reservation activity.
package queue

// ReviewSubmittedEvent is published after a review passes validation
// and is stored. Downstream consumers can feed moderation tooling or
// analytics without touching the primary database.
type ReviewSubmittedEvent struct {
	MovieID     string  `json:"movie_id"`
	UserID      string  `json:"user_id"`
	Rating      float64 `json:"rating"`
	SubmittedAt string  `json:"submitted_at"`
}

// ReservationConfirmedEvent is published when a reservation is
// successfully created.
type ReservationConfirmedEvent struct {
	ReservationID string `json:"reservation_id"`
	SessionID     string `json:"session_id"`
	UserID        string `json:"user_id"`
	MovieTitle    string `json:"movie_title"`
	SessionTime   string `json:"session_time"`
	Tickets       int    `json:"tickets"`
	ConfirmedAt   string `json:"confirmed_at"`
}

// Queue names. Routing uses the default exchange, so these double as
// routing keys.
const (
	ReviewSubmittedQueue      = "review.submitted"
	ReservationConfirmedQueue = "reservation.confirmed"
)
