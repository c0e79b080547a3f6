package domain

import "time"

const (
	// ProviderLocal marks accounts authenticated by email and password.
	ProviderLocal = "local"

	StatusActive   = "active"
	StatusInactive = "inactive"
)

type User struct {
	ID           string
	Email        string // stored lowercased
	FirstName    string
	LastName     string
	Role         string // role name, validated against the configured role list
	Provider     string
	Status       string
	PasswordHash string // base64 PBKDF2 output
	Salt         string // base64, per-user
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    *time.Time // soft-delete marker (nullable)
}

// Deleted reports whether the account has been soft-deleted.
func (u User) Deleted() bool {
	return u.DeletedAt != nil
}

// Profile is the public view of a User. Credential fields are stripped.
type Profile struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"firstName,omitempty"`
	LastName  string    `json:"lastName,omitempty"`
	Role      string    `json:"role"`
	Provider  string    `json:"provider"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Profile returns the public view of the user.
func (u User) Profile() Profile {
	return Profile{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Role:      u.Role,
		Provider:  u.Provider,
		Status:    u.Status,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
