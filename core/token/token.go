package token

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
)

// Size is the raw token length in bytes (256 bits of entropy).
const Size = 32

// Generate creates a cryptographically secure random token encoded as a
// URL-safe base64 string without padding. The encoded form is what clients
// receive as the bearer credential; it is never persisted server-side.
func Generate() (string, error) {
	b := make([]byte, Size)
	if _, err := rand.Read(b); err != nil {
		return "", errors.Join(ErrGeneration, err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// DeriveLookupID computes the server-side lookup identifier for a token:
// the lowercase hex SHA-256 digest of the decoded token bytes. The derivation
// is deterministic and one-way, so stored identifiers are not bearer-equivalent.
//
// Returns ErrMalformed if the input does not decode as a base64url string of
// exactly Size bytes. Callers treat malformed tokens the same as unknown ones.
func DeriveLookupID(tok string) (string, error) {
	raw, err := base64.RawURLEncoding.DecodeString(tok)
	if err != nil {
		return "", errors.Join(ErrMalformed, err)
	}
	if len(raw) != Size {
		return "", ErrMalformed
	}

	sum := sha256.Sum256(raw)
	return hex.EncodeToString(sum[:]), nil
}
