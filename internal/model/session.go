package model

import "time"

// Session is a scheduled showtime for a movie. Sessions are created in
// bulk by the generation routine and are read-only to clients.
type Session struct {
	SessionID   string    `json:"session_id"`
	MovieID     string    `json:"movie_id"`
	SessionTime time.Time `json:"session_time"`
}
