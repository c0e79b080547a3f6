package cryptox

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDeriveCredentials(t *testing.T) {
	tests := []struct {
		name     string
		password string
	}{
		{"simple password", "password123"},
		{"complex password", "P@ssw0rd!#$%^&*()"},
		{"long password", strings.Repeat("a", 100)},
		{"unicode password", "пароль🔒密码"},
		{"whitespace password", "   spaces   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			salt, hash, err := DeriveCredentials(tt.password)
			require.NoError(t, err)
			require.NotEmpty(t, salt)
			require.NotEmpty(t, hash)

			// Both values must decode as base64
			rawSalt, err := base64.StdEncoding.DecodeString(salt)
			require.NoError(t, err)
			require.Len(t, rawSalt, saltLength)

			rawHash, err := base64.StdEncoding.DecodeString(hash)
			require.NoError(t, err)
			require.Len(t, rawHash, keyLength)

			// The digest never equals the plaintext
			require.NotEqual(t, tt.password, hash)
		})
	}
}

func TestDeriveCredentials_EmptyPassword(t *testing.T) {
	salt, hash, err := DeriveCredentials("")
	require.ErrorIs(t, err, ErrInvalidPassword)
	require.Empty(t, salt)
	require.Empty(t, hash)
}

func TestDeriveCredentials_UniqueSalts(t *testing.T) {
	password := "samepassword"

	salt1, hash1, err := DeriveCredentials(password)
	require.NoError(t, err)

	salt2, hash2, err := DeriveCredentials(password)
	require.NoError(t, err)

	salt3, hash3, err := DeriveCredentials(password)
	require.NoError(t, err)

	// Every derivation mints a fresh salt, so hashes differ too
	require.NotEqual(t, salt1, salt2)
	require.NotEqual(t, salt2, salt3)
	require.NotEqual(t, salt1, salt3)
	require.NotEqual(t, hash1, hash2)
	require.NotEqual(t, hash2, hash3)

	// But each pair verifies the original password
	require.True(t, Verify(password, salt1, hash1))
	require.True(t, Verify(password, salt2, hash2))
	require.True(t, Verify(password, salt3, hash3))
}

func TestVerify_Success(t *testing.T) {
	tests := []struct {
		name     string
		password string
	}{
		{"simple password", "password123"},
		{"complex password", "P@ssw0rd!#$%^&*()"},
		{"long password", strings.Repeat("a", 100)},
		{"unicode password", "пароль🔒密码"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			salt, hash, err := DeriveCredentials(tt.password)
			require.NoError(t, err)
			require.True(t, Verify(tt.password, salt, hash))
		})
	}
}

func TestVerify_WrongPassword(t *testing.T) {
	salt, hash, err := DeriveCredentials("correct-password")
	require.NoError(t, err)

	tests := []struct {
		name          string
		wrongPassword string
	}{
		{"completely wrong", "wrong-password"},
		{"case difference", "Correct-Password"},
		{"extra space", "correct-password "},
		{"similar password", "correct-passwor"},
		{"very long", strings.Repeat("x", 10000)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.False(t, Verify(tt.wrongPassword, salt, hash))
		})
	}
}

func TestVerify_MissingInputsAreFalseNotErrors(t *testing.T) {
	salt, hash, err := DeriveCredentials("secret123")
	require.NoError(t, err)

	// Cannot-verify states: empty password, missing salt, missing hash
	require.False(t, Verify("", salt, hash))
	require.False(t, Verify("secret123", "", hash))
	require.False(t, Verify("secret123", salt, ""))
	require.False(t, Verify("", "", ""))
}

func TestVerify_MalformedSalt(t *testing.T) {
	_, hash, err := DeriveCredentials("secret123")
	require.NoError(t, err)

	require.False(t, Verify("secret123", "!!!not-base64!!!", hash))
}

func TestVerify_SameSaltDistinguishesPasswords(t *testing.T) {
	salt, hash, err := DeriveCredentials("first-password")
	require.NoError(t, err)

	// A different password under the same salt must not collide
	require.False(t, Verify("second-password", salt, hash))
	require.True(t, Verify("first-password", salt, hash))
}

func TestCredentialWorkflow_EndToEnd(t *testing.T) {
	// Sign-up derives the initial pair
	salt1, hash1, err := DeriveCredentials("OriginalPass1!")
	require.NoError(t, err)
	require.True(t, Verify("OriginalPass1!", salt1, hash1))

	// A password change re-derives both values
	salt2, hash2, err := DeriveCredentials("ChangedPass2!")
	require.NoError(t, err)
	require.NotEqual(t, salt1, salt2, "password change must mint a new salt")

	// Old password no longer verifies against the new pair
	require.False(t, Verify("OriginalPass1!", salt2, hash2))
	require.True(t, Verify("ChangedPass2!", salt2, hash2))
}
