package jwtx

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// ErrNoSecret reports a signer constructed without key material.
var ErrNoSecret = errors.New("jwtx: signing secret is empty")

// Signer signs session claims with a shared HMAC secret (HS256). The secret is
// process-wide configuration, loaded once at startup and read-only afterwards.
type Signer struct {
	secret []byte
}

// NewSigner creates an HS256 signer from the shared secret.
func NewSigner(secret string) (*Signer, error) {
	if secret == "" {
		return nil, ErrNoSecret
	}
	return &Signer{secret: []byte(secret)}, nil
}

// Alg returns the JWA algorithm name this signer uses.
func (s *Signer) Alg() string { return jwt.SigningMethodHS256.Alg() }

// Sign produces a compact, signed token for the given claims.
func (s *Signer) Sign(c Claims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	return token.SignedString(s.secret)
}
