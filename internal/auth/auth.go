// Package auth issues and verifies the API's bearer tokens.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken covers every verification failure: bad signature, wrong
// algorithm, expired, malformed, or missing the id claim.
var ErrInvalidToken = errors.New("invalid token")

const tokenTTL = 6 * time.Hour

// Gate signs and verifies tokens with a single HS256 secret. It holds no
// mutable state; the secret is injected once at construction.
type Gate struct {
	secret []byte
}

func New(secret string) *Gate {
	return &Gate{secret: []byte(secret)}
}

// Issue signs a token carrying the user id as its only claim, valid for
// six hours.
func (g *Gate) Issue(userID string) (string, error) {
	claims := jwt.MapClaims{
		"id":  userID,
		"exp": time.Now().Add(tokenTTL).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(g.secret)
}

// Verify checks signature and expiry and returns the user id the token was
// issued for.
func (g *Gate) Verify(tokenStr string) (string, error) {
	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(
		tokenStr,
		claims,
		func(t *jwt.Token) (any, error) {
			if t.Method != jwt.SigningMethodHS256 {
				return nil, ErrInvalidToken
			}
			return g.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}
	id, _ := claims["id"].(string)
	if id == "" {
		return "", ErrInvalidToken
	}
	return id, nil
}
