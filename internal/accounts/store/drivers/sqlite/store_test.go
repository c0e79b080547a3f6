package sqlite

import (
	"context"
	"testing"

	"github.com/fluxline/accountd/internal/accounts/domain"
	"github.com/fluxline/accountd/internal/accounts/store"
	"github.com/fluxline/accountd/pkg/idx"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.ApplyMigrations())
	return s
}

func newTestUser(email string) domain.User {
	return domain.User{
		ID:           idx.New().String(),
		Email:        email,
		FirstName:    "Ada",
		LastName:     "Lovelace",
		Role:         domain.RoleUser,
		Provider:     domain.ProviderLocal,
		Status:       domain.StatusActive,
		PasswordHash: "aGFzaA==",
		Salt:         "c2FsdA==",
	}
}

func TestUsers_CreateAndGet(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	u := newTestUser("ada@example.com")
	require.NoError(t, s.Users().CreateUser(ctx, u))

	got, err := s.Users().GetUserByID(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, u.Email, got.Email)
	require.Equal(t, u.Role, got.Role)
	require.False(t, got.CreatedAt.IsZero())
	require.Nil(t, got.DeletedAt)
}

func TestUsers_GetByEmail_CaseInsensitive(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	u := newTestUser("ada@example.com")
	require.NoError(t, s.Users().CreateUser(ctx, u))

	got, err := s.Users().GetUserByEmail(ctx, "ADA@Example.COM")
	require.NoError(t, err)
	require.Equal(t, u.ID, got.ID)
}

func TestUsers_Create_StoresEmailLowercased(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	u := newTestUser("Ada@Example.COM")
	require.NoError(t, s.Users().CreateUser(ctx, u))

	got, err := s.Users().GetUserByID(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, "ada@example.com", got.Email)
}

func TestUsers_Create_DuplicateEmail(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Users().CreateUser(ctx, newTestUser("ada@example.com")))

	err := s.Users().CreateUser(ctx, newTestUser("ADA@example.com"))
	require.ErrorIs(t, err, store.ErrAlreadyExists)
}

func TestUsers_GetMissing(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.Users().GetUserByID(ctx, idx.New().String())
	require.ErrorIs(t, err, store.ErrNotFound)

	_, err = s.Users().GetUserByEmail(ctx, "nobody@example.com")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestUsers_UpdateUser(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	u := newTestUser("ada@example.com")
	require.NoError(t, s.Users().CreateUser(ctx, u))

	u.FirstName = "Augusta"
	u.Role = domain.RoleAdmin
	require.NoError(t, s.Users().UpdateUser(ctx, u))

	got, err := s.Users().GetUserByID(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, "Augusta", got.FirstName)
	require.Equal(t, domain.RoleAdmin, got.Role)

	// Credentials untouched by profile updates
	require.Equal(t, u.PasswordHash, got.PasswordHash)
	require.Equal(t, u.Salt, got.Salt)

	missing := newTestUser("ghost@example.com")
	require.ErrorIs(t, s.Users().UpdateUser(ctx, missing), store.ErrNotFound)
}

func TestUsers_UpdateCredentials(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	u := newTestUser("ada@example.com")
	require.NoError(t, s.Users().CreateUser(ctx, u))

	require.NoError(t, s.Users().UpdateCredentials(ctx, u.ID, "bmV3c2FsdA==", "bmV3aGFzaA=="))

	got, err := s.Users().GetUserByID(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, "bmV3c2FsdA==", got.Salt)
	require.Equal(t, "bmV3aGFzaA==", got.PasswordHash)
}

func TestUsers_SoftDelete(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	u := newTestUser("ada@example.com")
	require.NoError(t, s.Users().CreateUser(ctx, u))
	require.NoError(t, s.Users().SoftDeleteUser(ctx, u.ID))

	// Hidden from every lookup
	_, err := s.Users().GetUserByID(ctx, u.ID)
	require.ErrorIs(t, err, store.ErrNotFound)
	_, err = s.Users().GetUserByEmail(ctx, u.Email)
	require.ErrorIs(t, err, store.ErrNotFound)

	users, err := s.Users().ListUsers(ctx)
	require.NoError(t, err)
	require.Empty(t, users)

	// Deleting twice reports not found
	require.ErrorIs(t, s.Users().SoftDeleteUser(ctx, u.ID), store.ErrNotFound)

	// The email is free for a fresh registration
	require.NoError(t, s.Users().CreateUser(ctx, newTestUser("ada@example.com")))
}

func TestUsers_ListUsers(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	first := newTestUser("first@example.com")
	second := newTestUser("second@example.com")
	require.NoError(t, s.Users().CreateUser(ctx, first))
	require.NoError(t, s.Users().CreateUser(ctx, second))

	users, err := s.Users().ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
}

func TestStore_WithTx_Commit(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	u := newTestUser("ada@example.com")
	err := s.WithTx(ctx, func(tx store.Tx) error {
		return tx.Users().CreateUser(ctx, u)
	})
	require.NoError(t, err)

	_, err = s.Users().GetUserByID(ctx, u.ID)
	require.NoError(t, err)
}

func TestStore_WithTx_Rollback(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	u := newTestUser("ada@example.com")
	err := s.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Users().CreateUser(ctx, u); err != nil {
			return err
		}
		return context.Canceled // force rollback
	})
	require.ErrorIs(t, err, context.Canceled)

	_, err = s.Users().GetUserByID(ctx, u.ID)
	require.ErrorIs(t, err, store.ErrNotFound)
}
