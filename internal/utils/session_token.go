// Package utils provides helper functions for password hashing and
// session token handling.
package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionCookieName is the cookie this application's session token
// travels in. The fixed name distinguishes it from any other cookie on
// the domain.
const SessionCookieName = "loop_cinemas_jwt"

var (
	// ErrTokenMalformed covers every parse and signature failure.
	ErrTokenMalformed = errors.New("token could not be verified")
	// ErrClaimMissing means the signature checked out but the payload
	// has no user_id claim.
	ErrClaimMissing = errors.New("user_id claim not found")
)

// NewSessionToken signs an HS256 JWT carrying a single user_id claim.
// TTL is expressed in seconds; the same value sizes the cookie Max-Age
// so the token and its transport expire together.
func NewSessionToken(secret, userID string, ttl time.Duration) (string, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"user_id": userID,
		"exp":     now.Add(ttl).Unix(),
		"iat":     now.Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(secret))
}

// VerifySessionToken parses and validates a session token and returns
// the user_id claim. Verification is stateless: there is no revocation
// list, so a token stays valid until its natural expiry.
func VerifySessionToken(secret, raw string) (string, error) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenMalformed
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		return "", ErrTokenMalformed
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrTokenMalformed
	}
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", ErrClaimMissing
	}
	return userID, nil
}
