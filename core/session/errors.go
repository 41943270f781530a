package session

import "errors"

var (
	// ErrNotFound is returned by stores when no record exists for a lookup
	// identifier. A valid outcome during validation, not an infra failure.
	ErrNotFound = errors.New("session not found")
	// ErrStoreUnavailable is returned by stores when the persistence backend
	// is unreachable or timed out. Distinct from ErrNotFound.
	ErrStoreUnavailable = errors.New("session store unavailable")
	// ErrMissingSubject is returned when issuing a session without a subject.
	ErrMissingSubject = errors.New("subject identifier is required")
	// ErrInvalidConfig is returned when manager policy durations are unusable.
	ErrInvalidConfig = errors.New("invalid session manager configuration")
)
