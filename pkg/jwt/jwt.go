package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrNotJWT = errors.New("token is not a JWT")

// Claims holds what the clinic API puts in its bearer tokens. Only the
// fields used for display are decoded.
type Claims struct {
	Email string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// Inspect decodes the claims of token without verifying its signature.
// The client has no key to verify with; the server remains the authority
// on whether a token is valid or expired.
func Inspect(token string) (*Claims, error) {
	claims := &Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, errors.Join(ErrNotJWT, err)
	}
	return claims, nil
}

// DisplayName prefers the email claim and falls back to sub.
func (c *Claims) DisplayName() string {
	if c == nil {
		return ""
	}
	if c.Email != "" {
		return c.Email
	}
	return c.RegisteredClaims.Subject
}

// Expiry is informational only, nothing acts on it.
func (c *Claims) Expiry() (time.Time, bool) {
	if c == nil || c.RegisteredClaims.ExpiresAt == nil {
		return time.Time{}, false
	}
	return c.RegisteredClaims.ExpiresAt.Time, true
}
