package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/authkit/core/session"
)

const keyPrefix = "session:"

// record is the wire shape stored under each session key. The identity is
// embedded so a read resolves the subject without a second lookup.
type record struct {
	LookupID  string    `json:"lookup_id"`
	SubjectID string    `json:"subject_id"`
	Email     string    `json:"email"`
	IP        string    `json:"ip"`
	UserAgent string    `json:"user_agent"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

// Store persists sessions in Redis with key TTLs synced to each record's
// expiry, so expired sessions evict themselves without a sweeper.
type Store struct {
	client *goredis.Client
}

// New creates a Redis-backed session store on the given client.
func New(client *goredis.Client) *Store {
	return &Store{client: client}
}

func key(lookupID string) string {
	return keyPrefix + lookupID
}

// Put writes the session record and sets the key to expire at the session's
// expiry. Records already past expiry are dropped rather than written.
func (s *Store) Put(ctx context.Context, sess session.Session) error {
	ttl := time.Until(sess.ExpiresAt)
	if ttl <= 0 {
		return nil
	}

	data, err := json.Marshal(record{
		LookupID:  sess.LookupID,
		SubjectID: sess.Identity.SubjectID.String(),
		Email:     sess.Identity.Email,
		IP:        sess.IP,
		UserAgent: sess.UserAgent,
		ExpiresAt: sess.ExpiresAt,
		CreatedAt: sess.CreatedAt,
	})
	if err != nil {
		return fmt.Errorf("marshal session record: %w", err)
	}

	if err := s.client.Set(ctx, key(sess.LookupID), data, ttl).Err(); err != nil {
		return errors.Join(session.ErrStoreUnavailable, err)
	}
	return nil
}

// Get returns the session stored under the lookup ID.
func (s *Store) Get(ctx context.Context, lookupID string) (session.Session, error) {
	data, err := s.client.Get(ctx, key(lookupID)).Bytes()
	switch {
	case errors.Is(err, goredis.Nil):
		return session.Session{}, session.ErrNotFound
	case err != nil:
		return session.Session{}, errors.Join(session.ErrStoreUnavailable, err)
	}

	var rec record
	if err := json.Unmarshal(data, &rec); err != nil {
		return session.Session{}, fmt.Errorf("unmarshal session record: %w", err)
	}

	sess := session.Session{
		LookupID:  rec.LookupID,
		IP:        rec.IP,
		UserAgent: rec.UserAgent,
		ExpiresAt: rec.ExpiresAt,
		CreatedAt: rec.CreatedAt,
	}
	sess.Identity.Email = rec.Email
	if err := sess.Identity.SubjectID.UnmarshalText([]byte(rec.SubjectID)); err != nil {
		return session.Session{}, fmt.Errorf("unmarshal subject id: %w", err)
	}
	return sess, nil
}

// maxUpdateAttempts bounds optimistic-lock retries when the watched key is
// modified between the read and the transactional write.
const maxUpdateAttempts = 5

// UpdateExpiry rewrites the record with the new expiry and moves the key TTL
// along with it. Updates to an absent key and updates that would move the
// expiry backward are no-ops.
//
// The read-compare-write runs under WATCH/MULTI/EXEC so a concurrent delete
// (sign-out) or a competing renewal aborts the write instead of being
// overwritten: a revoked session is never written back, and the stored
// expiry only ever moves forward.
func (s *Store) UpdateExpiry(ctx context.Context, lookupID string, newExpiresAt time.Time) error {
	k := key(lookupID)

	update := func(tx *goredis.Tx) error {
		data, err := tx.Get(ctx, k).Bytes()
		switch {
		case errors.Is(err, goredis.Nil):
			return nil
		case err != nil:
			return err
		}

		var rec record
		if err := json.Unmarshal(data, &rec); err != nil {
			return fmt.Errorf("unmarshal session record: %w", err)
		}
		if !newExpiresAt.After(rec.ExpiresAt) {
			return nil
		}

		ttl := time.Until(newExpiresAt)
		if ttl <= 0 {
			return nil
		}

		rec.ExpiresAt = newExpiresAt
		updated, err := json.Marshal(rec)
		if err != nil {
			return fmt.Errorf("marshal session record: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
			pipe.Set(ctx, k, updated, ttl)
			return nil
		})
		return err
	}

	for attempt := 0; attempt < maxUpdateAttempts; attempt++ {
		err := s.client.Watch(ctx, update, k)
		switch {
		case err == nil:
			return nil
		case errors.Is(err, goredis.TxFailedErr):
			// Key changed under the watch; re-read and retry.
			continue
		default:
			return errors.Join(session.ErrStoreUnavailable, err)
		}
	}

	// Every attempt lost the race to a concurrent writer whose state stands.
	return nil
}

// Delete removes the record. Idempotent.
func (s *Store) Delete(ctx context.Context, lookupID string) error {
	if err := s.client.Del(ctx, key(lookupID)).Err(); err != nil {
		return errors.Join(session.ErrStoreUnavailable, err)
	}
	return nil
}

// DeleteExpired is a no-op: key TTLs already evict expired records. It
// reports zero so sweepers can run against any backend uniformly.
func (s *Store) DeleteExpired(ctx context.Context) (int64, error) {
	return 0, nil
}
