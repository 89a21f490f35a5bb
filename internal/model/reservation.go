package model

import "time"

// Reservation books tickets for a session. Tickets is bounded to
// [1,10] by the handler before the row is written.
type Reservation struct {
	ReservationID string    `json:"reservation_id"`
	SessionID     string    `json:"session_id"`
	UserID        string    `json:"user_id"`
	Tickets       int       `json:"tickets"`
	CreatedAt     time.Time `json:"createdAt"`
}
