package session

import (
	"context"
	"time"
)

// Store defines the persistence interface for session records.
// Implementations must handle concurrent access safely and translate
// infrastructure failures into ErrStoreUnavailable; a missing record is
// reported as ErrNotFound, which is a valid outcome, not an error kind
// callers should alert on.
type Store interface {
	// Put inserts or replaces the record keyed by session.LookupID. Idempotent.
	Put(ctx context.Context, session Session) error

	// Get returns the record for the given lookup identifier, joined with the
	// owning identity's public attributes. Returns ErrNotFound when absent.
	Get(ctx context.Context, lookupID string) (Session, error)

	// UpdateExpiry moves the record's expiry to newExpiresAt. The update is
	// monotonic: implementations never shorten an expiry. Updating a record
	// that no longer exists is a silent no-op (race with sign-out).
	UpdateExpiry(ctx context.Context, lookupID string, newExpiresAt time.Time) error

	// Delete removes the record. Deleting an absent record is not an error.
	Delete(ctx context.Context, lookupID string) error

	// DeleteExpired removes all expired records and returns the count.
	// Intended for periodic out-of-band sweeps.
	DeleteExpired(ctx context.Context) (int64, error)
}
