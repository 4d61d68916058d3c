package utils

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword derives a salted bcrypt verifier from the given plaintext
// password using the default cost.
//
// bcrypt embeds a per-password random salt into the verifier, so two calls
// with the same input produce different strings; use CheckPassword for
// comparison, never string equality.
//
// Returns an error if the password is empty or exceeds bcrypt's 72-byte input
// limit.
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", errors.New("empty password provided for hashing")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hash), nil
}

// CheckPassword reports whether the plaintext password matches the stored
// bcrypt verifier. Any bcrypt-level failure (malformed hash, mismatch) is
// treated as a non-match; the decision path never compares plaintext.
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
