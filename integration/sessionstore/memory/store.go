package memory

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrymomot/authkit/core/session"
)

// Store is an in-process session store backed by a map. Safe for concurrent
// use. Intended for tests and single-node development setups; records do not
// survive restarts.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]session.Session
}

// New creates an empty in-memory session store.
func New() *Store {
	return &Store{sessions: make(map[string]session.Session)}
}

// Put inserts or replaces the record keyed by its lookup identifier.
func (s *Store) Put(ctx context.Context, sess session.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.LookupID] = sess
	return nil
}

// Get returns the record for the lookup identifier or session.ErrNotFound.
func (s *Store) Get(ctx context.Context, lookupID string) (session.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[lookupID]
	if !ok {
		return session.Session{}, session.ErrNotFound
	}
	return sess, nil
}

// UpdateExpiry moves the record's expiry forward. Updates that would shorten
// the expiry and updates for absent records are silent no-ops.
func (s *Store) UpdateExpiry(ctx context.Context, lookupID string, newExpiresAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[lookupID]
	if !ok || !newExpiresAt.After(sess.ExpiresAt) {
		return nil
	}
	sess.ExpiresAt = newExpiresAt
	s.sessions[lookupID] = sess
	return nil
}

// Delete removes the record. Idempotent.
func (s *Store) Delete(ctx context.Context, lookupID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, lookupID)
	return nil
}

// DeleteExpired removes all expired records and returns the count.
func (s *Store) DeleteExpired(ctx context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	var n int64
	for id, sess := range s.sessions {
		if sess.IsExpired(now) {
			delete(s.sessions, id)
			n++
		}
	}
	return n, nil
}

// Len reports the number of stored records. Useful in tests.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
