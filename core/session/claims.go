package session

import (
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/pkg/errors"
)

// Claims mirrors the authorization claims the backend transmits via its JWT.
type Claims struct {
	jwt.StandardClaims
	Username  string   `json:"username,omitempty"`
	Email     string   `json:"email,omitempty"`
	IsStudent bool     `json:"is_student,omitempty"`
	IsTeacher bool     `json:"is_teacher,omitempty"`
	IsAdmin   bool     `json:"is_admin,omitempty"`
	Roles     []string `json:"roles,omitempty"`
}

// Expired reports whether the claims' expiry has passed.
func (c *Claims) Expired() bool {
	return c.ExpiresAt != 0 && time.Now().Unix() >= c.ExpiresAt
}

// ParseClaims decodes the claims of a stored token without verifying its
// signature; the result is display-only (who is signed in, when the session
// expires). The backend remains the authority on token validity.
func ParseClaims(token string) (*Claims, error) {
	claims := new(Claims)
	parser := jwt.Parser{}
	if _, _, err := parser.ParseUnverified(trimBearer(token), claims); err != nil {
		return nil, errors.Wrap(err, "session.ParseClaims")
	}
	return claims, nil
}

// trimBearer strips an optional "Bearer " scheme prefix; the stored token is
// sent verbatim on the wire and may carry one.
func trimBearer(token string) string {
	const prefix = "Bearer "
	if len(token) > len(prefix) && token[:len(prefix)] == prefix {
		return token[len(prefix):]
	}
	return token
}
