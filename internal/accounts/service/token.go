package service

import (
	"time"

	"github.com/fluxline/accountd/internal/accounts/domain"
	"github.com/fluxline/accountd/pkg/jwtx"
)

type TokenService struct {
	Signer     *jwtx.Signer
	Issuer     string
	SessionTTL time.Duration
}

// Sign mints a session token for the user. The subject is the user ID and the
// role claim drives authorization checks without a database round-trip.
func (s *TokenService) Sign(user domain.User) (string, error) {
	ttl := s.SessionTTL
	if ttl <= 0 {
		ttl = jwtx.DefaultSessionTTL
	}

	claims := jwtx.NewSessionClaims(user.ID, user.Role, s.Issuer, ttl, time.Now())
	return s.Signer.Sign(claims)
}
