// Package review implements the submission validation and anti-abuse
// policy for movie reviews, plus the rating aggregation used to rank
// movies. The policy is a pure function over the candidate submission
// and the submitter's review history so it can be tested without a
// database.
package review

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/loopcinemas/loop-api/internal/model"
)

// MaxContentLen is the longest review body accepted, in characters.
const MaxContentLen = 600

// HumanCheckPhrase must be typed exactly, case-sensitive and untrimmed,
// for a submission to pass the anti-bot gate.
const HumanCheckPhrase = "I am not a robot"

// Cooldown is the minimum interval between a user's successive review
// submissions, counted from the newest created_at in their history.
const Cooldown = 3 * time.Hour

// Input is a candidate submission. Rating carries the raw form value
// (ten times the star rating, so 50 means five stars); nil means the
// field was absent.
type Input struct {
	MovieID string
	UserID  string
	Rating  *int
	Content string
	Human   string
}

// FieldErrors maps field names to the message shown next to that field.
type FieldErrors map[string]string

// Validate checks every rule independently and collects all violations
// into one map: field-level checks, the cooldown, and the human
// verification. On success it returns the normalized review to upsert.
func Validate(in Input, history []model.Review, now time.Time) (model.Review, FieldErrors) {
	errs := FieldErrors{}

	if strings.TrimSpace(in.MovieID) == "" {
		errs["movie_id"] = "Movie ID cannot be empty"
	}
	if strings.TrimSpace(in.UserID) == "" {
		errs["user_id"] = "User ID cannot be empty"
	}
	var rating float64
	if in.Rating == nil {
		errs["rating"] = "Rating cannot be empty"
	} else {
		rating = float64(*in.Rating) / 10
		if rating < 1 || rating > 5 {
			errs["rating"] = "Rating must be a number between 1 and 5"
		}
	}
	if strings.TrimSpace(in.Content) == "" {
		errs["content"] = "Content cannot be empty"
	} else if utf8.RuneCountInString(in.Content) > MaxContentLen {
		errs["content"] = fmt.Sprintf("Content cannot be longer than %d characters", MaxContentLen)
	}
	if last, ok := lastCreatedAt(history); ok && now.Sub(last) < Cooldown {
		errs["message"] = "You must wait at least 3 hours before posting a new review, or before editing an existing review."
	}
	if in.Human != HumanCheckPhrase {
		errs["human"] = "You must prove you are not a robot by typing 'I am not a robot' (without the quotes)."
	}
	if len(errs) > 0 {
		return model.Review{}, errs
	}

	return model.Review{
		MovieID: in.MovieID,
		UserID:  in.UserID,
		Rating:  rating,
		Content: in.Content,
	}, nil
}

// lastCreatedAt returns the newest creation timestamp in the history.
// The maximum is taken explicitly rather than trusting storage order.
func lastCreatedAt(history []model.Review) (time.Time, bool) {
	var last time.Time
	found := false
	for _, r := range history {
		if !found || r.CreatedAt.After(last) {
			last = r.CreatedAt
			found = true
		}
	}
	return last, found
}
