package review

import (
	"strings"
	"testing"
	"time"

	"github.com/loopcinemas/loop-api/internal/model"
)

func intPtr(n int) *int { return &n }

func validInput() Input {
	return Input{
		MovieID: "tt1234567",
		UserID:  "u1",
		Rating:  intPtr(40),
		Content: "Great movie.",
		Human:   HumanCheckPhrase,
	}
}

func TestValidateAccepts(t *testing.T) {
	now := time.Now()
	rev, errs := Validate(validInput(), nil, now)
	if errs != nil {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if rev.Rating != 4 {
		t.Fatalf("expected rating 4, got %v", rev.Rating)
	}
	if rev.MovieID != "tt1234567" || rev.UserID != "u1" {
		t.Fatalf("identifiers not carried through: %+v", rev)
	}
}

func TestValidateRatingBounds(t *testing.T) {
	now := time.Now()

	in := validInput()
	in.Rating = intPtr(50)
	if _, errs := Validate(in, nil, now); errs != nil {
		t.Fatalf("raw 50 should normalize to 5 stars: %v", errs)
	}

	in.Rating = intPtr(10)
	if _, errs := Validate(in, nil, now); errs != nil {
		t.Fatalf("raw 10 should normalize to 1 star: %v", errs)
	}

	in.Rating = intPtr(55)
	if _, errs := Validate(in, nil, now); errs["rating"] != "Rating must be a number between 1 and 5" {
		t.Fatalf("raw 55 should be out of range, got %v", errs)
	}

	in.Rating = intPtr(5)
	if _, errs := Validate(in, nil, now); errs["rating"] != "Rating must be a number between 1 and 5" {
		t.Fatalf("raw 5 should be out of range, got %v", errs)
	}

	in.Rating = nil
	if _, errs := Validate(in, nil, now); errs["rating"] != "Rating cannot be empty" {
		t.Fatalf("missing rating should be rejected, got %v", errs)
	}
}

func TestValidateContentLength(t *testing.T) {
	now := time.Now()

	in := validInput()
	in.Content = strings.Repeat("a", MaxContentLen)
	if _, errs := Validate(in, nil, now); errs != nil {
		t.Fatalf("600-char content should pass: %v", errs)
	}

	in.Content = strings.Repeat("a", MaxContentLen+1)
	if _, errs := Validate(in, nil, now); errs["content"] != "Content cannot be longer than 600 characters" {
		t.Fatalf("601-char content should fail, got %v", errs)
	}

	// The limit counts characters, not bytes.
	in.Content = strings.Repeat("é", MaxContentLen)
	if _, errs := Validate(in, nil, now); errs != nil {
		t.Fatalf("600 multibyte chars should pass: %v", errs)
	}

	in.Content = strings.Repeat("é", MaxContentLen+1)
	if _, errs := Validate(in, nil, now); errs["content"] != "Content cannot be longer than 600 characters" {
		t.Fatalf("601 multibyte chars should fail, got %v", errs)
	}

	in.Content = "   "
	if _, errs := Validate(in, nil, now); errs["content"] != "Content cannot be empty" {
		t.Fatalf("whitespace content should fail, got %v", errs)
	}
}

func TestValidateCollectsAllFieldErrors(t *testing.T) {
	_, errs := Validate(Input{}, nil, time.Now())
	if len(errs) != 5 {
		t.Fatalf("expected 5 errors, got %d: %v", len(errs), errs)
	}
	for _, field := range []string{"movie_id", "user_id", "rating", "content", "human"} {
		if errs[field] == "" {
			t.Fatalf("missing error for %s: %v", field, errs)
		}
	}
}

func TestValidateHumanCheck(t *testing.T) {
	now := time.Now()

	in := validInput()
	in.Human = "i am not a robot"
	_, errs := Validate(in, nil, now)
	if errs["human"] == "" {
		t.Fatalf("case-insensitive phrase should be rejected")
	}

	in.Human = HumanCheckPhrase + " "
	if _, errs := Validate(in, nil, now); errs["human"] == "" {
		t.Fatalf("trailing space should be rejected")
	}
}

func TestValidateCooldown(t *testing.T) {
	now := time.Now()
	in := validInput()

	history := []model.Review{{MovieID: "m1", UserID: "u1", CreatedAt: now.Add(-time.Hour)}}
	_, errs := Validate(in, history, now)
	if errs["message"] == "" {
		t.Fatalf("submission within cooldown should be rejected: %v", errs)
	}

	history = []model.Review{{MovieID: "m1", UserID: "u1", CreatedAt: now.Add(-4 * time.Hour)}}
	if _, errs := Validate(in, history, now); errs != nil {
		t.Fatalf("submission after cooldown should pass: %v", errs)
	}
}

// The newest created_at governs the cooldown regardless of slice order.
func TestValidateCooldownUsesNewestReview(t *testing.T) {
	now := time.Now()
	history := []model.Review{
		{MovieID: "m1", UserID: "u1", CreatedAt: now.Add(-30 * time.Minute)},
		{MovieID: "m2", UserID: "u1", CreatedAt: now.Add(-48 * time.Hour)},
	}
	_, errs := Validate(validInput(), history, now)
	if errs["message"] == "" {
		t.Fatalf("newest review is 30m old, cooldown should apply: %v", errs)
	}
}

// Every rule is evaluated independently: field, cooldown and human
// violations all surface in one response.
func TestValidateCollectsFieldAndAbuseErrors(t *testing.T) {
	now := time.Now()
	in := validInput()
	in.Content = ""
	in.Human = "nope"
	history := []model.Review{{CreatedAt: now.Add(-time.Minute)}}

	_, errs := Validate(in, history, now)
	if errs["content"] == "" {
		t.Fatalf("expected content error: %v", errs)
	}
	if errs["human"] == "" || errs["message"] == "" {
		t.Fatalf("field errors must not suppress the anti-abuse checks: %v", errs)
	}
}

func TestValidateCollectsBothAbuseErrors(t *testing.T) {
	now := time.Now()
	in := validInput()
	in.Human = "nope"
	history := []model.Review{{CreatedAt: now.Add(-time.Minute)}}

	_, errs := Validate(in, history, now)
	if errs["message"] == "" || errs["human"] == "" {
		t.Fatalf("expected both cooldown and human errors: %v", errs)
	}
}
