/*
Package accountsdk provides a client SDK for interacting with the accountd
user account service.

# Overview

The accountsdk package implements a typed client for the accountd HTTP API.
It provides both unauthenticated operations (via SDKClient) and authenticated
operations (via Session).

# SDKClient vs Session

The package is organized around two main types:

  - SDKClient: Provides unauthenticated operations (sign-up, login, health)
    and creates authenticated sessions
  - Session: Provides authenticated operations backed by a session token

Create an SDKClient to interact with public endpoints and authenticate:

	client := accountsdk.NewSDKClient("https://accounts.example.com")

	// Check service health
	health, err := client.Readyz(ctx)

	// Register a new account; the service responds with a session token
	session, err := client.SignUp(ctx, accountsdk.SignUpRequest{
		Email:    "jo@example.com",
		Password: "correct horse battery staple",
	})

	// Or log in to an existing account
	session, err = client.Login(ctx, "jo@example.com", "correct horse battery staple")

Use a Session for authenticated operations:

	// Get the caller's own profile
	me, err := session.Me(ctx)

	// Look up another user
	profile, err := session.GetUser(ctx, userID)

	// List all users (requires admin role)
	users, err := session.ListUsers(ctx)

# Tokens

Session tokens are long-lived JWTs (30 days by default) and are not
refreshed. Persist the token with session.Token() and restore it later with
client.NewSessionFromToken(token). When a token expires, log in again.

# Error Handling

Non-2xx responses are returned as *APIError, carrying the HTTP status, a
machine-readable code, and field-level details for validation failures:

	_, err := session.PatchUser(ctx, userID, ops)
	if err != nil {
		var apiErr *accountsdk.APIError
		if errors.As(err, &apiErr) && apiErr.Code == accountsdk.ErrorCodeValidationError {
			for field, msg := range apiErr.Details {
				fmt.Printf("%s: %s\n", field, msg)
			}
		}
	}
*/
package accountsdk
