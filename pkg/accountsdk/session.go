package accountsdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

// Session represents an authenticated session backed by a JWT session token.
// Tokens are long-lived (30 days by default) and are not refreshed; when one
// expires, log in again.
type Session struct {
	client *SDKClient
	token  string
}

// newSession creates an authenticated session from a session token.
func newSession(client *SDKClient, token string) *Session {
	return &Session{client: client, token: token}
}

// Token returns the session token. Useful for persisting the session.
func (s *Session) Token() string {
	return s.token
}

// ============================================================================
// User Operations
// ============================================================================

// Me retrieves the profile of the authenticated user.
func (s *Session) Me(ctx context.Context) (*Profile, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/v1/users/me", nil, nil)
	if err != nil {
		return nil, err
	}

	var profile Profile
	if err := decodeJSON(resp, &profile, http.StatusOK); err != nil {
		return nil, err
	}

	return &profile, nil
}

// GetUser retrieves the profile of the user with the given ID.
func (s *Session) GetUser(ctx context.Context, userID string) (*Profile, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, s.userPath(userID), nil, nil)
	if err != nil {
		return nil, err
	}

	var profile Profile
	if err := decodeJSON(resp, &profile, http.StatusOK); err != nil {
		return nil, err
	}

	return &profile, nil
}

// ListUsers retrieves the profiles of all active users.
// Requires: admin role.
func (s *Session) ListUsers(ctx context.Context) ([]Profile, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/v1/users/all", nil, nil)
	if err != nil {
		return nil, err
	}

	var listResp ListUsersResponse
	if err := decodeJSON(resp, &listResp, http.StatusOK); err != nil {
		return nil, err
	}

	return listResp.Users, nil
}

// ChangePassword changes the password of the account identified by the
// session token. The path carries a user ID for routing symmetry but the
// service always acts on the authenticated caller.
func (s *Session) ChangePassword(ctx context.Context, userID, oldPassword, newPassword string) error {
	payload := ChangePasswordRequest{
		OldPassword: oldPassword,
		NewPassword: newPassword,
	}

	resp, err := s.putJSON(ctx, s.userPath(userID)+"/password", payload)
	if err != nil {
		return err
	}

	return checkStatusNoContent(resp)
}

// PatchUser applies RFC 6902 patch operations to a user account and returns
// the updated profile. The operations apply atomically; a single invalid
// operation rejects the whole request.
func (s *Session) PatchUser(ctx context.Context, userID string, ops []PatchOperation) (*Profile, error) {
	body, err := json.Marshal(ops)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	headers := map[string]string{"Content-Type": "application/json-patch+json"}

	resp, err := s.doAuthRequest(ctx, http.MethodPatch, s.userPath(userID), bytes.NewReader(body), headers)
	if err != nil {
		return nil, err
	}

	var profile Profile
	if err := decodeJSON(resp, &profile, http.StatusOK); err != nil {
		return nil, err
	}

	return &profile, nil
}

// UpsertUser replaces the user with the given ID, creating it if absent, and
// returns the stored profile. The service answers 201 when the account was
// created and 200 when an existing one was replaced.
func (s *Session) UpsertUser(ctx context.Context, userID string, req UpsertUserRequest) (*Profile, error) {
	resp, err := s.putJSON(ctx, s.userPath(userID), req)
	if err != nil {
		return nil, err
	}

	expected := http.StatusOK
	if resp.StatusCode == http.StatusCreated {
		expected = http.StatusCreated
	}

	var profile Profile
	if err := decodeJSON(resp, &profile, expected); err != nil {
		return nil, err
	}

	return &profile, nil
}

// DeleteUser soft-deletes the user with the given ID.
// Requires: admin role.
func (s *Session) DeleteUser(ctx context.Context, userID string) error {
	resp, err := s.doAuthRequest(ctx, http.MethodDelete, s.userPath(userID), nil, nil)
	if err != nil {
		return err
	}

	return checkStatusNoContent(resp)
}

// ============================================================================
// Helpers
// ============================================================================

// userPath builds the /v1/users/{id} path with the ID escaped.
func (s *Session) userPath(userID string) string {
	return "/v1/users/" + url.PathEscape(userID)
}

// putJSON sends an authenticated JSON PUT request.
func (s *Session) putJSON(ctx context.Context, path string, payload any) (*http.Response, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	headers := map[string]string{"Content-Type": "application/json"}

	return s.doAuthRequest(ctx, http.MethodPut, path, bytes.NewReader(body), headers)
}
