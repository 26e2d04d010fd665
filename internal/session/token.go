package session

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
)

// TokenClaims are the backend-issued claims the client cares about.
type TokenClaims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// InspectToken decodes the bearer token's claims without verifying the
// signature. The token is issued and verified by the backend; the client
// only reads it back for role gating and expiry checks.
func InspectToken(tokenString string) (*TokenClaims, error) {
	claims := &TokenClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// TokenExpired reports whether the token carries an expiry in the past.
// Tokens without an expiry claim, and unparseable tokens, are left to the
// backend to reject.
func TokenExpired(tokenString string, now time.Time) bool {
	claims, err := InspectToken(tokenString)
	if err != nil || claims.ExpiresAt == nil {
		return false
	}
	return claims.ExpiresAt.Before(now)
}
