// Package auth implements the credential hook: the hash-before-persist
// transformation for admin passwords and the approval tokens that gate
// password activation.
package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// BcryptCost is the work factor for admin password hashes.
const BcryptCost = 10

// ErrNoHash is returned when a password comparison is attempted against a
// record that has no stored hash.
var ErrNoHash = errors.New("no password hash stored")

// HashPassword derives a salted bcrypt hash from a plaintext password.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// HashPasswordIfChanged is the hook applied whenever an admin password is
// being persisted. It returns the stored value untouched when the plaintext
// is empty or already matches the stored hash, and a fresh hash otherwise.
func HashPasswordIfChanged(storedHash, plaintext string) (string, error) {
	if plaintext == "" {
		return storedHash, nil
	}

	if storedHash != "" {
		match, err := ComparePassword(plaintext, storedHash)
		if err == nil && match {
			return storedHash, nil
		}
	}

	return HashPassword(plaintext)
}

// ComparePassword verifies a candidate plaintext against a stored hash.
// A mismatch returns (false, nil); only structural failures, such as a
// missing or malformed hash, produce an error.
func ComparePassword(plaintext, storedHash string) (bool, error) {
	if storedHash == "" {
		return false, ErrNoHash
	}

	err := bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(plaintext))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	return false, err
}
