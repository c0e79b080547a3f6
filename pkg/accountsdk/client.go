package accountsdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// SDKClient is a client for the accountd user account service.
// It provides access to unauthenticated operations and can create
// authenticated Sessions.
type SDKClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewSDKClient creates a new account service client.
func NewSDKClient(baseURL string) *SDKClient {
	return &SDKClient{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// SignUp registers a new user account and returns an authenticated session
// for it. The service responds with a session token on successful creation.
func (c *SDKClient) SignUp(ctx context.Context, req SignUpRequest) (*Session, error) {
	tokenResp, err := c.postJSON(ctx, "/v1/users/new", req, http.StatusCreated)
	if err != nil {
		return nil, err
	}

	return newSession(c, tokenResp.Token), nil
}

// Login authenticates with an email and password and returns an
// authenticated session.
func (c *SDKClient) Login(ctx context.Context, email, password string) (*Session, error) {
	req := LoginRequest{Email: email, Password: password}

	tokenResp, err := c.postJSON(ctx, "/v1/auth/login", req, http.StatusOK)
	if err != nil {
		return nil, err
	}

	return newSession(c, tokenResp.Token), nil
}

// NewSessionFromToken creates an authenticated session from an existing
// session token, e.g. one stored by a previous login.
func (c *SDKClient) NewSessionFromToken(token string) *Session {
	return newSession(c, token)
}

// Livez checks the service liveness endpoint.
func (c *SDKClient) Livez(ctx context.Context) (*HealthResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/livez", nil, nil)
	if err != nil {
		return nil, err
	}

	var health HealthResponse
	if err := decodeJSON(resp, &health, http.StatusOK); err != nil {
		return nil, err
	}

	return &health, nil
}

// Readyz checks the service readiness endpoint, including dependency checks.
func (c *SDKClient) Readyz(ctx context.Context) (*HealthResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/readyz", nil, nil)
	if err != nil {
		return nil, err
	}

	var health HealthResponse
	if err := decodeJSON(resp, &health, http.StatusOK); err != nil {
		return nil, err
	}

	return &health, nil
}

// postJSON sends an unauthenticated JSON POST and decodes a TokenResponse.
func (c *SDKClient) postJSON(ctx context.Context, path string, payload any, expectedStatus int) (*TokenResponse, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	headers := map[string]string{"Content-Type": "application/json"}

	resp, err := c.doRequest(ctx, http.MethodPost, path, bytes.NewReader(body), headers)
	if err != nil {
		return nil, err
	}

	var tokenResp TokenResponse
	if err := decodeJSON(resp, &tokenResp, expectedStatus); err != nil {
		return nil, err
	}

	return &tokenResp, nil
}
