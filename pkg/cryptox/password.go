package cryptox

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"errors"

	"golang.org/x/crypto/pbkdf2"
)

// Configuration for PBKDF2 credential derivation.
const (
	iterations = 10000 // Iteration count
	keyLength  = 64    // Length of the derived digest in bytes
	saltLength = 16    // Length of the salt in bytes
)

// ErrInvalidPassword reports an empty plaintext password.
var ErrInvalidPassword = errors.New("cryptox: invalid password")

// DeriveCredentials mints a fresh random salt and derives the salted password
// digest over it. Both values are returned base64-encoded, ready for storage.
// This is the only place salts are generated; a salt is never reused across
// derivations, so every password change produces a new salt+hash pair.
func DeriveCredentials(password string) (salt, hash string, err error) {
	if password == "" {
		return "", "", ErrInvalidPassword
	}

	raw := make([]byte, saltLength)
	if _, err := rand.Read(raw); err != nil {
		return "", "", err
	}

	return base64.StdEncoding.EncodeToString(raw), derive(password, raw), nil
}

// Verify recomputes the digest for password under the stored salt and compares
// it against storedHash in constant time. A missing password or salt is a
// cannot-verify state, not an exceptional one: the result is simply false.
func Verify(password, salt, storedHash string) bool {
	if password == "" || salt == "" || storedHash == "" {
		return false
	}

	raw, err := base64.StdEncoding.DecodeString(salt)
	if err != nil {
		return false
	}

	computed := derive(password, raw)
	return subtle.ConstantTimeCompare([]byte(computed), []byte(storedHash)) == 1
}

// derive runs the key-derivation function. Deliberately slow; callers must
// budget for this on every login and password change.
func derive(password string, salt []byte) string {
	key := pbkdf2.Key([]byte(password), salt, iterations, keyLength, sha256.New)
	return base64.StdEncoding.EncodeToString(key)
}
