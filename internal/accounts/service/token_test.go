package service

import (
	"testing"
	"time"

	"github.com/fluxline/accountd/internal/accounts/domain"
	"github.com/fluxline/accountd/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func TestTokenService_Sign(t *testing.T) {
	signer, err := jwtx.NewSigner("test-secret-used-only-in-tests")
	require.NoError(t, err)

	svc := &TokenService{
		Signer:     signer,
		Issuer:     "accountd-test",
		SessionTTL: time.Hour,
	}

	user := domain.User{ID: "01ARZ3NDEKTSV4RRFFQ69G5FAV", Role: domain.RoleAdmin}

	token, err := svc.Sign(user)
	require.NoError(t, err)

	verifier, err := jwtx.NewVerifier("test-secret-used-only-in-tests", "accountd-test")
	require.NoError(t, err)

	claims, err := verifier.Verify(token)
	require.NoError(t, err)

	require.Equal(t, user.ID, claims.Subject)
	require.Equal(t, domain.RoleAdmin, claims.Role)
	require.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, 5*time.Second)
}

func TestTokenService_Sign_DefaultTTL(t *testing.T) {
	signer, err := jwtx.NewSigner("test-secret-used-only-in-tests")
	require.NoError(t, err)

	svc := &TokenService{Signer: signer, Issuer: "accountd-test"}

	token, err := svc.Sign(domain.User{ID: "u1", Role: domain.RoleUser})
	require.NoError(t, err)

	verifier, err := jwtx.NewVerifier("test-secret-used-only-in-tests", "accountd-test")
	require.NoError(t, err)

	claims, err := verifier.Verify(token)
	require.NoError(t, err)

	// Sessions default to 30 days
	require.WithinDuration(t, time.Now().Add(jwtx.DefaultSessionTTL), claims.ExpiresAt.Time, 5*time.Second)
}
