// Package token inspects backend-issued JWTs without verifying them.
// The backend is the source of truth for authentication; this side only
// needs the expiry to decide when to re-prompt sign-in.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrNotAToken = errors.New("value is not a parseable JWT")

// ExpiresAt returns the exp claim of an unverified token. A token without an
// exp claim yields a zero time and no error.
func ExpiresAt(raw string) (time.Time, error) {
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(raw, claims); err != nil {
		return time.Time{}, ErrNotAToken
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, nil
	}
	return exp.Time, nil
}

// Expired reports whether the token's exp claim has passed at the given time.
// Tokens without an exp claim never expire from the client's point of view.
func Expired(raw string, now time.Time) bool {
	exp, err := ExpiresAt(raw)
	if err != nil || exp.IsZero() {
		return false
	}
	return now.After(exp)
}
