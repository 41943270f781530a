package credentials

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// MinPasswordLength is the minimum accepted password length.
const MinPasswordLength = 8

// dummyHash is a valid bcrypt hash of an unguessable value, compared against
// when the account does not exist so that lookup misses cost the same as
// wrong passwords.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

var (
	// ErrPasswordTooShort is returned when hashing a password below the
	// minimum length.
	ErrPasswordTooShort = errors.New("password too short")
	// ErrPasswordMismatch is returned when verification fails. It carries no
	// detail about whether the account exists.
	ErrPasswordMismatch = errors.New("password verification failed")
)

// HashPassword hashes a plaintext password using bcrypt at the default cost.
func HashPassword(password string) (string, error) {
	if len(password) < MinPasswordLength {
		return "", ErrPasswordTooShort
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword compares a plaintext password with a stored bcrypt hash.
// Returns ErrPasswordMismatch on any failure.
func VerifyPassword(hash, password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return ErrPasswordMismatch
	}
	return nil
}

// VerifyDummy burns the same work as a real verification. Call it when the
// account lookup missed, so response timing does not reveal which accounts
// exist. Always returns ErrPasswordMismatch.
func VerifyDummy(password string) error {
	_ = bcrypt.CompareHashAndPassword([]byte(dummyHash), []byte(password))
	return ErrPasswordMismatch
}
