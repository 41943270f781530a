package token

import "errors"

var (
	// ErrGeneration is returned when the system random source fails.
	// This is fatal and non-retryable.
	ErrGeneration = errors.New("failed to generate token")
	// ErrMalformed is returned when a presented token is not a valid
	// base64url encoding of the expected length.
	ErrMalformed = errors.New("malformed token")
)
