package utils

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// ErrHashingPassword is returned by HashPassword when bcrypt itself fails
// (RNG failure, oversized input). It is an internal error, never
// attributable to the shape of caller input.
var ErrHashingPassword = errors.New("error hashing password")

// HashPassword derives a bcrypt hash of the plaintext password using the
// default cost. The per-call random salt is embedded in the returned hash,
// so two calls with the same input produce different outputs.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrHashingPassword, err)
	}

	return string(hash), nil
}

// VerifyPassword recomputes the hash of password using the salt embedded in
// storedHash and compares the results in constant time.
//
// A mismatch is not an error: it returns (false, nil). A non-nil error means
// storedHash itself is malformed (corrupt stored data); callers must treat
// that as an authentication failure, not a crash.
func VerifyPassword(password, storedHash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(password))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, fmt.Errorf("error comparing password with stored hash: %w", err)
	}
}
