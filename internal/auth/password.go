package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// ErrCorruptHash means a stored password hash is structurally unreadable.
// Verification for that account can never succeed until the hash is reset.
var ErrCorruptHash = errors.New("stored password hash is corrupt")

// HashPassword returns a salted bcrypt hash of the plaintext. The salt is
// embedded in the returned string.
func HashPassword(plaintext string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// VerifyPassword recomputes the hash with the embedded salt and compares in
// constant time. A wrong password is (false, nil); only an unreadable stored
// hash is an error.
func VerifyPassword(plaintext, stored string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(stored), []byte(plaintext))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	return false, ErrCorruptHash
}
