package accounts_test

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"testing"
	"time"

	"github.com/fluxline/accountd/pkg/accountsdk"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

/*
 * Common constants and helper functions for account service end-to-end tests.
 * This includes container setup, service operations, and assertions.
 */

const (
	testImageName = "accountd-test:latest"

	// The service refuses to boot with the placeholder secret outside dev,
	// so the container gets a throwaway one.
	testSessionSecret = "e2e-session-secret-not-for-production"

	defaultPassword = "CorrectHorse1!"
)

// TestMain manages the test lifecycle, builds the Docker image once before
// all tests and cleans it up after all tests complete.
func TestMain(m *testing.M) {
	fmt.Fprintf(os.Stdout, "Building Account Service Docker image...")

	// Build the Docker image once before all tests
	if err := buildDockerImage(); err != nil {
		fmt.Fprintf(os.Stderr, "\nFailed to build Docker image: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stdout, " done\n")

	// Run all tests
	exitCode := m.Run()

	// Clean up the Docker image after all tests complete
	fmt.Fprintf(os.Stdout, "Cleaning up Account Service Docker image...")
	cleanupDockerImage()
	fmt.Fprintf(os.Stdout, " done\n")

	os.Exit(exitCode)
}

// buildDockerImage builds the test Docker image if it doesn't exist.
func buildDockerImage() error {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "build",
		"-t", testImageName,
		"-f", "../../../cmd/accountd/Dockerfile",
		"../../../")
	cmd.Dir = "."
	cmd.Stdout = os.Stdout
	cmd.Stderr = nil

	return cmd.Run()
}

// cleanupDockerImage removes the test Docker image.
func cleanupDockerImage() {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "rmi", "-f", testImageName)
	_ = cmd.Run() // Ignore errors - image might not exist
}

// setupAccountContainer starts the account service in a container and returns
// the base URL. Rate limits are relaxed so rapid test traffic does not trip
// the production defaults.
func setupAccountContainer(t *testing.T) (string, func()) {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        testImageName,
		ExposedPorts: []string{"8080/tcp"},
		Env: map[string]string{
			"SESSION_SECRET":         testSessionSecret,
			"ACCOUNTD_DATABASE_FILE": "/tmp/accountd.db",
			"ACCOUNTD_ISSUER":        "accountd",
			"ENV":                    "test",
			"LOG_LEVEL":              "info",
			"LOG_FORMAT":             "json",
			// Increase rate limits for E2E tests to prevent test failures
			"RATELIMIT_STRICT_REQUESTS":    "1000",
			"RATELIMIT_STRICT_WINDOW_SEC":  "60",
			"RATELIMIT_STRICT_BURST":       "1000",
			"RATELIMIT_DEFAULT_REQUESTS":   "1000",
			"RATELIMIT_DEFAULT_WINDOW_SEC": "60",
			"RATELIMIT_DEFAULT_BURST":      "1000",
		},
		WaitingFor: wait.ForHTTP("/livez").
			WithPort("8080/tcp").
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	mappedPort, err := container.MappedPort(ctx, "8080")
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)

	baseURL := fmt.Sprintf("http://%s:%s", host, mappedPort.Port())

	cleanup := func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	}

	return baseURL, cleanup
}

// signUpUser registers a new account and returns its session.
func signUpUser(t *testing.T, client *accountsdk.SDKClient, email, firstName, lastName string) *accountsdk.Session {
	t.Helper()

	session, err := client.SignUp(t.Context(), accountsdk.SignUpRequest{
		Email:     email,
		Password:  defaultPassword,
		FirstName: firstName,
		LastName:  lastName,
	})
	require.NoError(t, err, "Sign up should succeed")
	require.NotNil(t, session)
	require.NotEmpty(t, session.Token())

	return session
}

// promoteToAdmin raises the session's own account to the admin role via a
// patch and returns a fresh session whose token carries the new role.
func promoteToAdmin(t *testing.T, client *accountsdk.SDKClient, session *accountsdk.Session, email string) *accountsdk.Session {
	t.Helper()

	profile, err := session.Me(t.Context())
	require.NoError(t, err)

	_, err = session.PatchUser(t.Context(), profile.ID, []accountsdk.PatchOperation{
		{Op: "replace", Path: "/role", Value: "admin"},
	})
	require.NoError(t, err, "Promoting to admin should succeed")

	adminSession, err := client.Login(t.Context(), email, defaultPassword)
	require.NoError(t, err)
	return adminSession
}

// assertHealthy verifies a health check response is OK.
func assertHealthy(t *testing.T, health *accountsdk.HealthResponse, err error) {
	t.Helper()
	require.NoError(t, err)
	require.NotNil(t, health)
	require.Equal(t, "ok", health.Status)
}

// assertStatusError verifies an error is an *APIError with the given status.
func assertStatusError(t *testing.T, err error, status int, context string) {
	t.Helper()
	require.Error(t, err, context)

	var apiErr *accountsdk.APIError
	require.ErrorAs(t, err, &apiErr, "%s - expected an API error, got: %v", context, err)
	require.Equal(t, status, apiErr.StatusCode, "%s - unexpected status, error: %s", context, err)
}

// uniqueEmail builds an email address unique to the current test run so
// containers reused across tests never collide on the email index.
func uniqueEmail(t *testing.T, prefix string) string {
	t.Helper()
	name := strings.ToLower(strings.ReplaceAll(t.Name(), "/", "-"))
	return fmt.Sprintf("%s-%s-%d@example.com", prefix, name, time.Now().UnixNano())
}
