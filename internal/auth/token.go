// Package auth encodes and decodes the session token returned by login.
package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"sdb-client/internal/domain"
)

// SessionClaims is the payload of a login token.
type SessionClaims struct {
	Email string      `json:"email"`
	Role  domain.Role `json:"role"`
	jwt.RegisteredClaims
}

// IssueToken signs an HS256 session token for u, valid for ttl from now.
func IssueToken(secret string, u domain.User, now time.Time, ttl time.Duration) (string, error) {
	if secret == "" {
		return "", errors.New("issue token: jwt secret is empty")
	}

	claims := SessionClaims{
		Email: u.Email,
		Role:  u.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("issue token: sign: %w", err)
	}
	return signed, nil
}

// VerifyToken validates the signature and expiry of tokenStr.
func VerifyToken(tokenStr, secret string) (*SessionClaims, error) {
	if secret == "" {
		return nil, errors.New("verify token: jwt secret is empty")
	}

	tok, err := jwt.ParseWithClaims(strings.TrimSpace(tokenStr), &SessionClaims{}, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		if err == nil {
			err = errors.New("invalid token")
		}
		return nil, fmt.Errorf("verify token: %w", err)
	}

	c, _ := tok.Claims.(*SessionClaims)
	if c == nil || c.Email == "" {
		return nil, errors.New("verify token: invalid claims")
	}
	return c, nil
}

// DecodeClaims reads the claims of tokenStr without checking the signature.
// The client never holds the signing secret; it only needs the role and
// expiry for display and routing.
func DecodeClaims(tokenStr string) (*SessionClaims, error) {
	tokenStr = strings.TrimSpace(tokenStr)
	if tokenStr == "" {
		return nil, errors.New("decode claims: token is empty")
	}

	c := &SessionClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenStr, c); err != nil {
		return nil, fmt.Errorf("decode claims: %w", err)
	}
	return c, nil
}

// Expired reports whether the claims carry an expiry at or before now.
func (c *SessionClaims) Expired(now time.Time) bool {
	if c.ExpiresAt == nil {
		return false
	}
	return !now.Before(c.ExpiresAt.Time)
}
