package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/mail"
	"strings"

	"github.com/fluxline/accountd/internal/accounts/domain"
	"github.com/fluxline/accountd/internal/accounts/store"
	"github.com/fluxline/accountd/pkg/cryptox"
	"github.com/fluxline/accountd/pkg/idx"
	"github.com/fluxline/accountd/pkg/slogx"

	jsonpatch "github.com/evanphx/json-patch/v5"
)

const (
	minPasswordLength = 8
	maxPasswordLength = 128
)

var (
	ErrInvalidCredentials = errors.New("invalid_credentials")
	ErrEmailTaken         = errors.New("email_taken")
	ErrInvalidEmail       = errors.New("invalid_email")
	ErrWeakPassword       = errors.New("weak_password")
	ErrUnknownRole        = errors.New("unknown_role")
	ErrUnknownStatus      = errors.New("unknown_status")
	ErrWrongPassword      = errors.New("wrong_password")
	ErrInvalidPatch       = errors.New("invalid_patch")
)

type UserService struct {
	Store store.Store
	Roles domain.RoleList
}

// CreateUserParams carries the fields accepted at registration.
type CreateUserParams struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
}

// CreateUser registers a new local account. Self-registered accounts always
// receive the default role; privilege escalation goes through admin edits.
func (s *UserService) CreateUser(ctx context.Context, p CreateUserParams) (domain.User, error) {
	email, err := normalizeEmail(p.Email)
	if err != nil {
		return domain.User{}, err
	}
	if err := validatePassword(p.Password); err != nil {
		return domain.User{}, err
	}

	salt, hash, err := cryptox.DeriveCredentials(p.Password)
	if err != nil {
		return domain.User{}, fmt.Errorf("derive credentials: %w", err)
	}

	user := domain.User{
		ID:           idx.New().String(),
		Email:        email,
		FirstName:    strings.TrimSpace(p.FirstName),
		LastName:     strings.TrimSpace(p.LastName),
		Role:         s.Roles.Default(),
		Provider:     domain.ProviderLocal,
		Status:       domain.StatusActive,
		PasswordHash: hash,
		Salt:         salt,
	}

	if err := s.Store.Users().CreateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.User{}, ErrEmailTaken
		}
		return domain.User{}, err
	}

	// Re-read so timestamps reflect what the database stored
	return s.Store.Users().GetUserByID(ctx, user.ID)
}

// Authenticate verifies an email/password pair and returns the matching user.
// Lookup failures and bad passwords collapse into ErrInvalidCredentials so the
// response never reveals whether the email exists.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (domain.User, error) {
	l := slogx.FromContext(ctx)

	user, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrInvalidCredentials
		}
		return domain.User{}, err
	}

	if !cryptox.Verify(password, user.Salt, user.PasswordHash) {
		l.Info("login failed", slog.String("user_id", user.ID))
		return domain.User{}, ErrInvalidCredentials
	}

	if user.Status != domain.StatusActive {
		l.Info("login rejected for inactive account", slog.String("user_id", user.ID))
		return domain.User{}, ErrInvalidCredentials
	}

	return user, nil
}

// GetUserByID fetches a user by id.
func (s *UserService) GetUserByID(ctx context.Context, userID string) (domain.User, error) {
	return s.Store.Users().GetUserByID(ctx, userID)
}

// ListUsers returns all active users.
func (s *UserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.Store.Users().ListUsers(ctx)
}

// ChangePassword verifies the caller's current password before replacing it.
func (s *UserService) ChangePassword(ctx context.Context, userID, oldPassword, newPassword string) error {
	if err := validatePassword(newPassword); err != nil {
		return err
	}

	return s.Store.WithTx(ctx, func(tx store.Tx) error {
		user, err := tx.Users().GetUserByID(ctx, userID)
		if err != nil {
			return err
		}

		if !cryptox.Verify(oldPassword, user.Salt, user.PasswordHash) {
			return ErrWrongPassword
		}

		salt, hash, err := cryptox.DeriveCredentials(newPassword)
		if err != nil {
			return fmt.Errorf("derive credentials: %w", err)
		}

		return tx.Users().UpdateCredentials(ctx, userID, salt, hash)
	})
}

// patchView is the editable projection a JSON Patch operates on. Password is
// write-only: it marshals empty and, when a patch sets it, the new value is
// re-derived into fresh credentials.
type patchView struct {
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Role      string `json:"role"`
	Status    string `json:"status"`
	Password  string `json:"password,omitempty"`
}

// Patch applies an RFC 6902 patch document to a user atomically and returns
// the updated user. Any invalid operation, unknown field value, or failed
// test op rejects the whole document.
func (s *UserService) Patch(ctx context.Context, userID string, patchDoc []byte) (domain.User, error) {
	patch, err := jsonpatch.DecodePatch(patchDoc)
	if err != nil {
		return domain.User{}, ErrInvalidPatch
	}

	var updated domain.User

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		user, err := tx.Users().GetUserByID(ctx, userID)
		if err != nil {
			return err
		}

		doc, err := json.Marshal(patchView{
			Email:     user.Email,
			FirstName: user.FirstName,
			LastName:  user.LastName,
			Role:      user.Role,
			Status:    user.Status,
		})
		if err != nil {
			return err
		}

		patched, err := patch.Apply(doc)
		if err != nil {
			return ErrInvalidPatch
		}

		var view patchView
		if err := json.Unmarshal(patched, &view); err != nil {
			return ErrInvalidPatch
		}

		email, err := normalizeEmail(view.Email)
		if err != nil {
			return err
		}
		if !s.Roles.Contains(view.Role) {
			return ErrUnknownRole
		}
		if err := validateStatus(view.Status); err != nil {
			return err
		}

		user.Email = email
		user.FirstName = view.FirstName
		user.LastName = view.LastName
		user.Role = view.Role
		user.Status = view.Status

		if err := tx.Users().UpdateUser(ctx, user); err != nil {
			if errors.Is(err, store.ErrAlreadyExists) {
				return ErrEmailTaken
			}
			return err
		}

		if view.Password != "" {
			if err := validatePassword(view.Password); err != nil {
				return err
			}
			salt, hash, err := cryptox.DeriveCredentials(view.Password)
			if err != nil {
				return fmt.Errorf("derive credentials: %w", err)
			}
			if err := tx.Users().UpdateCredentials(ctx, userID, salt, hash); err != nil {
				return err
			}
		}

		updated, err = tx.Users().GetUserByID(ctx, userID)
		return err
	})
	if err != nil {
		return domain.User{}, err
	}

	return updated, nil
}

// UpsertParams carries the full-replacement payload for Upsert.
type UpsertParams struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	Role      string
	Status    string
}

// Upsert replaces the user with the given id, creating it when absent.
// Created reports which path was taken so the handler can pick the status
// code. A password is mandatory on create and optional on replace.
func (s *UserService) Upsert(ctx context.Context, userID string, p UpsertParams) (user domain.User, created bool, err error) {
	email, err := normalizeEmail(p.Email)
	if err != nil {
		return domain.User{}, false, err
	}

	role := p.Role
	if role == "" {
		role = s.Roles.Default()
	}
	if !s.Roles.Contains(role) {
		return domain.User{}, false, ErrUnknownRole
	}

	status := p.Status
	if status == "" {
		status = domain.StatusActive
	}
	if err := validateStatus(status); err != nil {
		return domain.User{}, false, err
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		existing, err := tx.Users().GetUserByID(ctx, userID)
		switch {
		case errors.Is(err, store.ErrNotFound):
			created = true
		case err != nil:
			return err
		}

		if p.Password != "" {
			if err := validatePassword(p.Password); err != nil {
				return err
			}
		} else if created {
			return ErrWeakPassword // a new account cannot exist without credentials
		}

		if created {
			salt, hash, err := cryptox.DeriveCredentials(p.Password)
			if err != nil {
				return fmt.Errorf("derive credentials: %w", err)
			}

			user = domain.User{
				ID:           userID,
				Email:        email,
				FirstName:    strings.TrimSpace(p.FirstName),
				LastName:     strings.TrimSpace(p.LastName),
				Role:         role,
				Provider:     domain.ProviderLocal,
				Status:       status,
				PasswordHash: hash,
				Salt:         salt,
			}

			if err := tx.Users().CreateUser(ctx, user); err != nil {
				if errors.Is(err, store.ErrAlreadyExists) {
					return ErrEmailTaken
				}
				return err
			}
		} else {
			existing.Email = email
			existing.FirstName = strings.TrimSpace(p.FirstName)
			existing.LastName = strings.TrimSpace(p.LastName)
			existing.Role = role
			existing.Status = status

			if err := tx.Users().UpdateUser(ctx, existing); err != nil {
				if errors.Is(err, store.ErrAlreadyExists) {
					return ErrEmailTaken
				}
				return err
			}

			if p.Password != "" {
				salt, hash, err := cryptox.DeriveCredentials(p.Password)
				if err != nil {
					return fmt.Errorf("derive credentials: %w", err)
				}
				if err := tx.Users().UpdateCredentials(ctx, userID, salt, hash); err != nil {
					return err
				}
			}
		}

		user, err = tx.Users().GetUserByID(ctx, userID)
		return err
	})
	if err != nil {
		return domain.User{}, false, err
	}

	return user, created, nil
}

// SoftDelete marks the user as deleted, hiding it from all lookups and
// invalidating any session tokens that reference it.
func (s *UserService) SoftDelete(ctx context.Context, userID string) error {
	return s.Store.Users().SoftDeleteUser(ctx, userID)
}

// normalizeEmail lowercases and validates an email address. Addresses with
// display names ("Ada <ada@example.com>") are rejected.
func normalizeEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return "", ErrInvalidEmail
	}

	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "", ErrInvalidEmail
	}

	return email, nil
}

func validatePassword(password string) error {
	if len(password) < minPasswordLength || len(password) > maxPasswordLength {
		return ErrWeakPassword
	}
	return nil
}

func validateStatus(status string) error {
	switch status {
	case domain.StatusActive, domain.StatusInactive:
		return nil
	default:
		return ErrUnknownStatus
	}
}
