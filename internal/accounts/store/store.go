package store

import (
	"context"
	"errors"

	"github.com/fluxline/accountd/internal/accounts/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite, postgres)
// implement this. It exposes sub-repositories to keep concerns tidy and
// testable, and to actively stop callers from accidentally opening
// transactions within transactions.
type Store interface {
	Users() Users

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// Use it for multi-step operations that must be atomic (e.g., patch apply).
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	// This is the recommended way to handle transactions as it automatically
	// handles commit/rollback logic.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources (optional for sqlite).
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

// Users is the user account repository. Soft-deleted rows are invisible to
// every method except CreateUser, which may reuse a deleted row's email.
type Users interface {
	// GetUserByID returns an active user by id.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByEmail returns an active user by email. The lookup is
	// case-insensitive; emails are stored lowercased.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// CreateUser inserts a new user (id is provided by app via ULID).
	// Returns ErrAlreadyExists when an active user already holds the email.
	CreateUser(ctx context.Context, u domain.User) error

	// UpdateUser replaces the mutable profile fields and bumps updated_at.
	// Credentials are untouched; use UpdateCredentials for those.
	UpdateUser(ctx context.Context, u domain.User) error

	// UpdateCredentials sets the salt and password hash and bumps updated_at.
	UpdateCredentials(ctx context.Context, userID, salt, passwordHash string) error

	// SoftDeleteUser stamps deleted_at, hiding the row from all lookups.
	SoftDeleteUser(ctx context.Context, userID string) error

	// ListUsers returns all active users ordered by creation date (oldest first).
	ListUsers(ctx context.Context) ([]domain.User, error)
}
