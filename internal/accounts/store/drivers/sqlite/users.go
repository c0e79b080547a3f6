package sqlite

import (
	"context"
	"database/sql"
	"strings"

	"github.com/fluxline/accountd/internal/accounts/domain"
	"github.com/fluxline/accountd/internal/accounts/store"
)

type usersRepo struct {
	db dbtx
}

// userColumns is the canonical select list; scanUser must match it.
const userColumns = `id, email, first_name, last_name, role, provider, status,
	password_hash, salt, created_at, updated_at, deleted_at`

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE id = ? AND deleted_at IS NULL`, id)

	return scanUser(row)
}

func (r *usersRepo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE email = ? AND deleted_at IS NULL`, strings.ToLower(email))

	return scanUser(row)
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO users (id, email, first_name, last_name, role, provider,
			status, password_hash, salt, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)`,
		u.ID, strings.ToLower(u.Email), u.FirstName, u.LastName, u.Role,
		u.Provider, u.Status, u.PasswordHash, u.Salt)

	return mapConstraint(err)
}

func (r *usersRepo) UpdateUser(ctx context.Context, u domain.User) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE users
		SET email = ?, first_name = ?, last_name = ?, role = ?, status = ?,
			updated_at = CURRENT_TIMESTAMP
		WHERE id = ? AND deleted_at IS NULL`,
		strings.ToLower(u.Email), u.FirstName, u.LastName, u.Role, u.Status, u.ID)
	if err != nil {
		return mapConstraint(err)
	}

	return requireRow(res)
}

func (r *usersRepo) UpdateCredentials(ctx context.Context, userID, salt, passwordHash string) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE users
		SET salt = ?, password_hash = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ? AND deleted_at IS NULL`,
		salt, passwordHash, userID)
	if err != nil {
		return err
	}

	return requireRow(res)
}

func (r *usersRepo) SoftDeleteUser(ctx context.Context, userID string) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE users
		SET deleted_at = CURRENT_TIMESTAMP, updated_at = CURRENT_TIMESTAMP
		WHERE id = ? AND deleted_at IS NULL`, userID)
	if err != nil {
		return err
	}

	return requireRow(res)
}

func (r *usersRepo) ListUsers(ctx context.Context) ([]domain.User, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE deleted_at IS NULL
		ORDER BY created_at ASC, id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}

	return users, rows.Err()
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanUser(row scanner) (domain.User, error) {
	var u domain.User
	var deletedAt sql.NullTime

	err := row.Scan(
		&u.ID, &u.Email, &u.FirstName, &u.LastName, &u.Role, &u.Provider,
		&u.Status, &u.PasswordHash, &u.Salt, &u.CreatedAt, &u.UpdatedAt,
		&deletedAt,
	)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}

	u.DeletedAt = mapNullTimePtr(deletedAt)
	return u, nil
}

// requireRow maps a zero-row UPDATE to ErrNotFound so callers can distinguish
// "no such active user" from success.
func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}
