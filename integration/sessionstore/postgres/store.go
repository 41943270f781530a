package postgres

import (
	"context"
	"embed"
	"errors"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dmitrymomot/authkit/core/session"
	"github.com/dmitrymomot/authkit/integration/database/pg"
)

// Migrations holds the embedded schema for the sessions and identities
// tables. Apply with Store.Migrate or pg.Migrate directly.
//
//go:embed migrations/*.sql
var Migrations embed.FS

// querier is the subset of pgx operations the store needs, satisfied by both
// the pool and a transaction.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Store persists sessions in PostgreSQL. Reads join the owning identity's
// public attributes; all infrastructure failures surface as
// session.ErrStoreUnavailable.
type Store struct {
	pool *pgxpool.Pool
}

// New creates a PostgreSQL-backed session store on the given pool.
func New(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// Migrate applies the store's embedded schema migrations.
func (s *Store) Migrate(ctx context.Context, log *slog.Logger) error {
	return pg.Migrate(ctx, s.pool, Migrations, "migrations", log)
}

// conn returns the ambient transaction when one is attached to the context,
// falling back to the pool.
func (s *Store) conn(ctx context.Context) querier {
	if tx, ok := pg.TxFromContext(ctx); ok {
		return tx
	}
	return s.pool
}

// Put inserts or replaces the session record. The owning identity row is
// upserted in the same statement so the write stays atomic at the record
// level.
func (s *Store) Put(ctx context.Context, sess session.Session) error {
	const query = `
		WITH ident AS (
			INSERT INTO identities (id, email)
			VALUES ($2, $3)
			ON CONFLICT (id) DO UPDATE SET email = EXCLUDED.email
		)
		INSERT INTO sessions (lookup_id, subject_id, ip, user_agent, expires_at, created_at)
		VALUES ($1, $2, $4, $5, $6, $7)
		ON CONFLICT (lookup_id) DO UPDATE SET
			subject_id = EXCLUDED.subject_id,
			ip         = EXCLUDED.ip,
			user_agent = EXCLUDED.user_agent,
			expires_at = EXCLUDED.expires_at,
			created_at = EXCLUDED.created_at`

	_, err := s.conn(ctx).Exec(ctx, query,
		sess.LookupID,
		sess.Identity.SubjectID,
		sess.Identity.Email,
		sess.IP,
		sess.UserAgent,
		sess.ExpiresAt,
		sess.CreatedAt,
	)
	if err != nil {
		return errors.Join(session.ErrStoreUnavailable, err)
	}
	return nil
}

// Get returns the session joined with its identity's public attributes.
func (s *Store) Get(ctx context.Context, lookupID string) (session.Session, error) {
	const query = `
		SELECT s.lookup_id, s.subject_id, COALESCE(i.email, ''), s.ip, s.user_agent, s.expires_at, s.created_at
		FROM sessions s
		LEFT JOIN identities i ON i.id = s.subject_id
		WHERE s.lookup_id = $1`

	var sess session.Session
	err := s.conn(ctx).QueryRow(ctx, query, lookupID).Scan(
		&sess.LookupID,
		&sess.Identity.SubjectID,
		&sess.Identity.Email,
		&sess.IP,
		&sess.UserAgent,
		&sess.ExpiresAt,
		&sess.CreatedAt,
	)
	switch {
	case pg.IsNotFoundError(err):
		return session.Session{}, session.ErrNotFound
	case err != nil:
		return session.Session{}, errors.Join(session.ErrStoreUnavailable, err)
	}
	return sess, nil
}

// UpdateExpiry moves the record's expiry forward. The predicate keeps the
// update monotonic and makes updating an absent record a no-op.
func (s *Store) UpdateExpiry(ctx context.Context, lookupID string, newExpiresAt time.Time) error {
	const query = `
		UPDATE sessions
		SET expires_at = $2
		WHERE lookup_id = $1 AND expires_at < $2`

	if _, err := s.conn(ctx).Exec(ctx, query, lookupID, newExpiresAt); err != nil {
		return errors.Join(session.ErrStoreUnavailable, err)
	}
	return nil
}

// Delete removes the record. Idempotent.
func (s *Store) Delete(ctx context.Context, lookupID string) error {
	if _, err := s.conn(ctx).Exec(ctx, `DELETE FROM sessions WHERE lookup_id = $1`, lookupID); err != nil {
		return errors.Join(session.ErrStoreUnavailable, err)
	}
	return nil
}

// DeleteExpired removes all expired records and returns the count.
func (s *Store) DeleteExpired(ctx context.Context) (int64, error) {
	tag, err := s.conn(ctx).Exec(ctx, `DELETE FROM sessions WHERE expires_at <= now()`)
	if err != nil {
		return 0, errors.Join(session.ErrStoreUnavailable, err)
	}
	return tag.RowsAffected(), nil
}
