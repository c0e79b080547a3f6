package accountsdk

// ============================================================================
// Token Types
// ============================================================================

// TokenResponse is returned from POST /v1/users/new and POST /v1/auth/login.
// The token is a signed JWT session token valid for the configured session TTL.
type TokenResponse struct {
	// Token is the JWT session token used to authenticate API requests
	Token string `json:"token"`
}

// ============================================================================
// User Types
// ============================================================================

// Profile is the public representation of a user account. Credential fields
// never appear here.
type Profile struct {
	// ID is the unique identifier for the user
	ID string `json:"id"`

	// Email is the user's login email, stored lowercased
	Email string `json:"email"`

	// FirstName is the user's given name
	FirstName string `json:"firstName,omitempty"`

	// LastName is the user's family name
	LastName string `json:"lastName,omitempty"`

	// Role is the user's role name (e.g. "guest", "user", "admin")
	Role string `json:"role"`

	// Provider is the credential provider, "local" for password accounts
	Provider string `json:"provider"`

	// Status is the account status (e.g. "active", "inactive")
	Status string `json:"status"`

	// CreatedAt is the account creation timestamp (RFC3339 format)
	CreatedAt string `json:"createdAt"`

	// UpdatedAt is the last modification timestamp (RFC3339 format)
	UpdatedAt string `json:"updatedAt"`
}

// ListUsersResponse contains the list of all active user accounts.
type ListUsersResponse struct {
	Users []Profile `json:"users"`
}

// ============================================================================
// Request Types
// ============================================================================

// SignUpRequest represents the request to register a new user account.
type SignUpRequest struct {
	// Email is the login email for the new account (must be unique among
	// active accounts)
	Email string `json:"email"`

	// Password is the plaintext password (8-128 chars)
	Password string `json:"password"`

	// FirstName is the user's given name
	FirstName string `json:"firstName,omitempty"`

	// LastName is the user's family name
	LastName string `json:"lastName,omitempty"`
}

// LoginRequest represents the request to authenticate with email and password.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ChangePasswordRequest represents the request to change the caller's password.
// The current password must be supplied and verified before the new one is set.
type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

// UpsertUserRequest represents the full-replacement payload for PUT.
type UpsertUserRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password,omitempty"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Role      string `json:"role,omitempty"`
	Status    string `json:"status,omitempty"`
}

// PatchOperation is a single RFC 6902 JSON Patch operation. PATCH requests
// carry an array of these and apply atomically.
type PatchOperation struct {
	// Op is the operation kind: "add", "remove", "replace", "move", "copy", "test"
	Op string `json:"op"`

	// Path is the JSON pointer to the field (e.g. "/firstName")
	Path string `json:"path"`

	// Value is the operand for add/replace/test operations
	Value any `json:"value,omitempty"`
}

// ============================================================================
// Health Types
// ============================================================================

// HealthResponse represents the response structure for health check endpoints.
// Used by both /livez and /readyz endpoints (readyz includes additional Checks field).
type HealthResponse struct {
	// Status indicates the overall health status (e.g., "ok")
	Status string `json:"status"`

	// Uptime is the service uptime duration as a string (e.g., "1h23m45s")
	Uptime string `json:"uptime,omitempty"`

	// Version is the service version string
	Version string `json:"version,omitempty"`

	// Checks contains readiness check results for critical dependencies (only for /readyz)
	Checks *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks represents the status of critical service dependencies.
type HealthChecks struct {
	// Database indicates the database connection status
	Database string `json:"database"`

	// Signer indicates the session token signing capability status
	Signer string `json:"signer"`
}
