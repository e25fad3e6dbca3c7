// Package token issues and verifies the signed bearer tokens used by the API.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalid covers badly signed, malformed and expired tokens alike.
var ErrInvalid = errors.New("invalid token")

// Config carries the signing key and lifetime for issued tokens. It is passed
// explicitly at construction so tests can substitute their own key.
type Config struct {
	SigningKey []byte
	TTL        time.Duration
}

// Claims embeds the caller identity in a signed token.
type Claims struct {
	UserID   int64  `json:"uid"`
	Username string `json:"name"`
	jwt.RegisteredClaims
}

// Issue creates a signed HS512 JWT for the given user, expiring after cfg.TTL.
func Issue(cfg Config, userID int64, username string) (string, time.Time, error) {
	now := time.Now()
	exp := now.Add(cfg.TTL)
	claims := Claims{
		UserID:   userID,
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS512, claims)
	signed, err := tok.SignedString(cfg.SigningKey)
	return signed, exp, err
}

// Parse verifies the HS512 signature and expiry and returns the embedded claims.
func Parse(key []byte, raw string) (*Claims, error) {
	var claims Claims
	parsed, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (any, error) {
		if t.Method != jwt.SigningMethodHS512 {
			return nil, errors.New("unexpected signing method")
		}
		return key, nil
	})
	if err != nil || !parsed.Valid {
		return nil, ErrInvalid
	}

	v := jwt.NewValidator(jwt.WithLeeway(30 * time.Second))
	if err := v.Validate(&claims); err != nil {
		return nil, ErrInvalid
	}
	return &claims, nil
}
