package utils

import (
	"errors"
	"regexp"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword returns a bcrypt hash using the given cost.
func HashPassword(plain string, cost int) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// VerifyPassword safely compares bcrypt hash and plain password.
func VerifyPassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

// sequentialRuns is every keyboard row, alphabet and digit run a
// password may not walk three characters of.
const sequentialRuns = `abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789!@#$%^&*()_+|~qwertyuiop[]asdfghjkl;'zxcvbnm,./`

var (
	digitRe   = regexp.MustCompile(`\d`)
	specialRe = regexp.MustCompile(`[^0-9A-Za-z_]`)
	dateRe    = regexp.MustCompile(`\d{1,2}/\d{1,2}/\d{2,4}`)
	yearRe    = regexp.MustCompile(`\d{4}`)
)

// CheckPasswordStrength enforces the signup password rules. It returns
// nil for an acceptable password or an error whose message is shown to
// the user as the password field error. Rules are checked in order and
// the first violation wins.
func CheckPasswordStrength(password string) error {
	if len(password) < 14 {
		return errors.New("Password must be at least 14 characters long")
	}
	if strings.ToLower(password) == password {
		return errors.New("Password must contain at least one uppercase letter")
	}
	if strings.ToUpper(password) == password {
		return errors.New("Password must contain at least one lowercase letter")
	}
	if !digitRe.MatchString(password) {
		return errors.New("Password must contain at least one number")
	}
	if !specialRe.MatchString(password) {
		return errors.New("Password must contain at least one special character")
	}
	for i := 0; i+2 < len(password); i++ {
		if password[i] == password[i+1] && password[i+1] == password[i+2] {
			return errors.New("Password must not contain more than 2 repeating characters")
		}
	}
	unique := make(map[rune]struct{})
	for _, r := range password {
		unique[r] = struct{}{}
	}
	if len(unique) < 5 {
		return errors.New("Password must contain at least 5 unique characters")
	}
	for i := 0; i+2 < len(password); i++ {
		if strings.Contains(sequentialRuns, password[i:i+3]) {
			return errors.New("Password must not contain more than 2 sequential characters")
		}
	}
	if strings.Contains(strings.ToLower(password), "password") {
		return errors.New(`Password must not contain the word "password"`)
	}
	if dateRe.MatchString(password) || yearRe.MatchString(password) {
		return errors.New("Password must not contain a date or year")
	}
	return nil
}
