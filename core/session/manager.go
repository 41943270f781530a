package session

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/authkit/core/token"
	"github.com/dmitrymomot/authkit/pkg/async"
)

// detachedOpTimeout bounds best-effort writes issued off the request path
// (renewal, expiry cleanup) so they cannot hang forever on a stuck backend.
const detachedOpTimeout = 5 * time.Second

// Manager drives the session lifecycle: issuing on login, validating on each
// request with rolling renewal, and revoking on sign-out. It holds no state
// across requests; the store is the single source of truth.
type Manager struct {
	store         Store
	lifetime      time.Duration
	renewalWindow time.Duration
	failOpen      bool
	log           *slog.Logger
	now           func() time.Time
}

// Option configures a Manager.
type Option func(*Manager)

// WithLifetime sets the session validity duration applied on issue and renewal.
func WithLifetime(d time.Duration) Option {
	return func(m *Manager) { m.lifetime = d }
}

// WithRenewalWindow sets the trailing duration before expiry during which a
// validated session has its lifetime extended.
func WithRenewalWindow(d time.Duration) Option {
	return func(m *Manager) { m.renewalWindow = d }
}

// WithFailOpen makes Validate degrade to an anonymous result when the store is
// unavailable instead of failing the request. The default is fail-closed.
func WithFailOpen() Option {
	return func(m *Manager) { m.failOpen = true }
}

// WithLogger sets the logger for best-effort failure paths.
func WithLogger(log *slog.Logger) Option {
	return func(m *Manager) {
		if log != nil {
			m.log = log
		}
	}
}

// WithClock overrides the time source. Intended for tests.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) {
		if now != nil {
			m.now = now
		}
	}
}

// NewManager creates a session manager backed by the given store.
// Defaults: 30-day lifetime, 15-day renewal window, fail-closed, discarded logs.
func NewManager(store Store, opts ...Option) (*Manager, error) {
	m := &Manager{
		store:         store,
		lifetime:      30 * 24 * time.Hour,
		renewalWindow: 15 * 24 * time.Hour,
		log:           slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}

	if m.lifetime <= 0 {
		return nil, errors.Join(ErrInvalidConfig, errors.New("lifetime must be positive"))
	}
	if m.renewalWindow < 0 || m.renewalWindow > m.lifetime {
		return nil, errors.Join(ErrInvalidConfig, errors.New("renewal window must be within [0, lifetime]"))
	}

	return m, nil
}

// NewManagerFromConfig creates a Manager from environment-based configuration.
// Explicit options override config values.
func NewManagerFromConfig(store Store, cfg Config, opts ...Option) (*Manager, error) {
	base := []Option{
		WithLifetime(cfg.Lifetime),
		WithRenewalWindow(cfg.RenewalWindow),
	}
	if cfg.FailOpen {
		base = append(base, WithFailOpen())
	}
	return NewManager(store, append(base, opts...)...)
}

// Result is the outcome of validating a presented token.
// A nil Identity means the request proceeds anonymously.
type Result struct {
	// Identity of the authenticated subject, nil when anonymous.
	Identity *Identity
	// Session is the validated record; zero value when Identity is nil.
	Session Session
	// ClearCookie instructs the transport to drop a stale client cookie.
	ClearCookie bool
	// Renewed reports that a rolling renewal was issued. Session.ExpiresAt
	// already reflects the new expiry so transports can resync the cookie.
	Renewed bool
}

// Validate resolves a presented token into an identity, applying expiry and
// rolling-renewal policy. States are evaluated in order: no token, unknown or
// malformed token, expired, valid-and-renewing, valid.
//
// Renewal and expiry cleanup are fire-and-forget: they never block the request
// and their failures are logged, not surfaced. Only store unavailability
// during the primary lookup fails the request, and only in the default
// fail-closed mode.
func (m *Manager) Validate(ctx context.Context, tok string) (Result, error) {
	if tok == "" {
		return Result{}, nil
	}

	lookupID, err := token.DeriveLookupID(tok)
	if err != nil {
		// Malformed tokens are indistinguishable from unknown ones for the
		// caller, but the stale cookie should be dropped.
		return Result{ClearCookie: true}, nil
	}

	sess, err := m.store.Get(ctx, lookupID)
	switch {
	case errors.Is(err, ErrNotFound):
		return Result{ClearCookie: true}, nil
	case err != nil:
		if m.failOpen {
			m.log.ErrorContext(ctx, "session lookup failed, degrading to anonymous", "error", err)
			return Result{}, nil
		}
		return Result{}, err
	}

	now := m.now()

	if sess.IsExpired(now) {
		m.detach(ctx, "delete expired session", func(ctx context.Context) error {
			return m.store.Delete(ctx, lookupID)
		})
		return Result{ClearCookie: true}, nil
	}

	res := Result{Identity: &sess.Identity, Session: sess}

	if sess.InRenewalWindow(now, m.renewalWindow) {
		// Renewal is additive to now, never to the old expiry, which bounds
		// maximum lifetime drift across repeated renewals.
		newExpiry := now.Add(m.lifetime)
		m.detach(ctx, "renew session", func(ctx context.Context) error {
			return m.store.UpdateExpiry(ctx, lookupID, newExpiry)
		})
		res.Session.ExpiresAt = newExpiry
		res.Renewed = true
	}

	return res, nil
}

// Issue creates a new session for a verified identity and returns the record
// together with the raw token. The token is handed out exactly once; only its
// derived lookup identifier is stored.
func (m *Manager) Issue(ctx context.Context, identity Identity, meta Metadata) (Session, string, error) {
	if identity.SubjectID == uuid.Nil {
		return Session{}, "", ErrMissingSubject
	}

	tok, err := token.Generate()
	if err != nil {
		return Session{}, "", err
	}
	lookupID, err := token.DeriveLookupID(tok)
	if err != nil {
		return Session{}, "", err
	}

	now := m.now()
	sess := Session{
		LookupID:  lookupID,
		Identity:  identity,
		IP:        meta.IP,
		UserAgent: meta.UserAgent,
		ExpiresAt: now.Add(m.lifetime),
		CreatedAt: now,
	}

	if err := m.store.Put(ctx, sess); err != nil {
		return Session{}, "", err
	}

	return sess, tok, nil
}

// Revoke deletes the session for the presented token (sign-out). Empty or
// malformed tokens revoke to a no-op: there is nothing server-side to remove.
func (m *Manager) Revoke(ctx context.Context, tok string) error {
	if tok == "" {
		return nil
	}

	lookupID, err := token.DeriveLookupID(tok)
	if err != nil {
		return nil
	}

	return m.store.Delete(ctx, lookupID)
}

// CleanupExpired removes expired records that were never revisited and thus
// never lazily deleted during validation. Run it periodically to bound stale
// row growth.
func (m *Manager) CleanupExpired(ctx context.Context) (int64, error) {
	return m.store.DeleteExpired(ctx)
}

// Lifetime returns the configured session validity duration.
func (m *Manager) Lifetime() time.Duration {
	return m.lifetime
}

// detach runs a best-effort store write off the request path. The operation
// survives client disconnects but is bounded by its own timeout; failures are
// logged and dropped.
func (m *Manager) detach(ctx context.Context, op string, fn func(context.Context) error) {
	log := m.log
	async.Exec(context.WithoutCancel(ctx), op, func(ctx context.Context, op string) error {
		ctx, cancel := context.WithTimeout(ctx, detachedOpTimeout)
		defer cancel()

		if err := fn(ctx); err != nil {
			log.ErrorContext(ctx, "detached session write failed", "op", op, "error", err)
			return err
		}
		return nil
	})
}
