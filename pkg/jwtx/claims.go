package jwtx

import (
	"crypto/rand"
	"encoding/base64"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultSessionTTL is the default lifetime for session tokens. Long-lived by
// design: there is no refresh mechanism, a token is valid for its full
// lifetime or not at all.
const DefaultSessionTTL = 30 * 24 * time.Hour

// Claims are session-token claims used across the service. Keeping changes
// additive preserves compatibility with tokens already in the wild.
type Claims struct {
	jwt.RegisteredClaims

	// Role is the account's role name at issuance time. Authorization gates
	// still resolve the live role from the store; this is a hint for clients.
	Role string `json:"role,omitempty"`
}

// NewSessionClaims builds minimally-correct claims for a session token.
func NewSessionClaims(subject, role, issuer string, ttl time.Duration, now time.Time) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        NewJTI(),
		},
		Role: role,
	}
}

// NewJTI returns a URL-safe random identifier for the "jti" claim.
func NewJTI() string {
	var b [20]byte
	_, _ = rand.Read(b[:])
	return base64.RawURLEncoding.EncodeToString(b[:])
}

// ValidateIssuer checks if the issuer matches the expected value.
func (c *Claims) ValidateIssuer(expected string) error {
	if expected == "" {
		return nil // nothing to enforce
	}

	if c.Issuer != expected {
		return ErrIssuer
	}

	return nil
}

// ValidateExpiry ensures the token hasn't expired (exp) and isn't used before
// it is valid (nbf).
func (c *Claims) ValidateExpiry() error {
	now := time.Now().UTC()

	if c.ExpiresAt != nil && now.After(c.ExpiresAt.Time) {
		return ErrExpired
	}

	if c.NotBefore != nil && now.Before(c.NotBefore.Time) {
		return ErrNotYetValid
	}

	return nil
}

// ValidateExpiryWithLeeway adds a small grace period for clock skew.
func (c *Claims) ValidateExpiryWithLeeway(leeway time.Duration) error {
	now := time.Now().UTC()

	if c.ExpiresAt != nil && now.After(c.ExpiresAt.Add(leeway)) {
		return ErrExpired
	}

	if c.NotBefore != nil && now.Before(c.NotBefore.Add(-leeway)) {
		return ErrNotYetValid
	}

	return nil
}
