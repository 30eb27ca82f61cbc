package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenExpiry peeks at the bearer token's exp claim without verifying
// the signature — the client has no key material and the backend is
// the only party that decides whether a token is still honored. The
// result is display-only (profile view); it never drives a logout.
// Returns the zero time when the token is absent, opaque, or carries
// no expiry.
func (s *Store) TokenExpiry() time.Time {
	token := s.Token()
	if token == "" {
		return time.Time{}
	}

	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return time.Time{}
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}
	}
	return exp.Time
}
