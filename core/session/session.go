package session

import (
	"time"

	"github.com/google/uuid"
)

// Identity is the public view of the authenticated subject a session belongs
// to. SubjectID is immutable for the session's life; Email is whatever public
// profile attribute the backing store joins in alongside it.
type Identity struct {
	SubjectID uuid.UUID
	Email     string
}

// Metadata carries request-derived audit attributes captured at issue time.
type Metadata struct {
	IP        string
	UserAgent string
}

// Session is one authenticated browser session. The record is keyed by
// LookupID, a one-way derivation of the bearer token; the raw token itself is
// never persisted.
type Session struct {
	// LookupID is the unique storage key derived from the token.
	LookupID string

	// Identity of the owning subject, joined in by the store on reads.
	Identity Identity

	IP        string
	UserAgent string

	// ExpiresAt is the absolute expiry instant. Renewal only ever moves it
	// forward; the session is invalid at or after this time.
	ExpiresAt time.Time
	CreatedAt time.Time
}

// IsExpired reports whether the session is invalid at the given instant.
func (s Session) IsExpired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

// InRenewalWindow reports whether the session is still valid but close enough
// to expiry that use should extend its lifetime.
func (s Session) InRenewalWindow(now time.Time, window time.Duration) bool {
	return !s.IsExpired(now) && !now.Before(s.ExpiresAt.Add(-window))
}
