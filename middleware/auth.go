package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/authkit/core/cookie"
	"github.com/dmitrymomot/authkit/core/logger"
	"github.com/dmitrymomot/authkit/core/session"
	"github.com/dmitrymomot/authkit/pkg/clientip"
)

type identityContextKey struct{}

type sessionContextKey struct{}

// AuthConfig configures the authentication middleware.
type AuthConfig struct {
	// Manager validates presented tokens (required).
	Manager *session.Manager
	// Binder reads the session cookie and applies clear/resync side effects
	// (required).
	Binder *cookie.Binder
	// Logger for auth-indeterminate failures (default: discard).
	Logger *slog.Logger
	// Skip bypasses authentication for specific requests, e.g. health probes.
	Skip func(r *http.Request) bool
}

// Authenticate creates the request authentication middleware with defaults.
// It runs once per request: resolves the session cookie into an identity and
// attaches it to the request context for downstream handlers.
func Authenticate(manager *session.Manager, binder *cookie.Binder) func(http.Handler) http.Handler {
	return AuthenticateWithConfig(AuthConfig{Manager: manager, Binder: binder})
}

// AuthenticateWithConfig creates the request authentication middleware.
//
// Per request it:
//  1. Reads the session cookie; absence is a valid, common case.
//  2. Runs the lifecycle state machine (session.Manager.Validate).
//  3. Attaches the identity and session to the request context, read-only for
//     the request's lifetime.
//  4. Applies cookie side effects before handing off: clearing a stale cookie,
//     or resyncing Max-Age after a rolling renewal.
//
// Renewal is never awaited. The only request-visible failure is store
// unavailability under the manager's fail-closed policy, rendered as a bare
// 503 with no internal detail.
func AuthenticateWithConfig(cfg AuthConfig) func(http.Handler) http.Handler {
	if cfg.Manager == nil {
		panic("auth middleware: manager is required")
	}
	if cfg.Binder == nil {
		panic("auth middleware: binder is required")
	}
	if cfg.Logger == nil {
		cfg.Logger = logger.Discard()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if cfg.Skip != nil && cfg.Skip(r) {
				next.ServeHTTP(w, r)
				return
			}

			tok, err := cfg.Binder.Read(r)
			if err != nil && !errors.Is(err, cookie.ErrNoCookie) {
				tok = ""
			}

			res, err := cfg.Manager.Validate(r.Context(), tok)
			if err != nil {
				cfg.Logger.ErrorContext(r.Context(), "authentication indeterminate",
					logger.Component("middleware"),
					logger.ClientIP(clientip.GetIP(r)),
					logger.Error(err),
				)
				http.Error(w, http.StatusText(http.StatusServiceUnavailable), http.StatusServiceUnavailable)
				return
			}

			if res.ClearCookie {
				cfg.Binder.Clear(w)
			}

			ctx := r.Context()
			if res.Identity != nil {
				if res.Renewed {
					// Keep the client cookie's Max-Age in step with the
					// renewed server-side expiry.
					if err := cfg.Binder.Set(w, tok, res.Session.ExpiresAt); err != nil {
						cfg.Logger.WarnContext(ctx, "cookie resync after renewal failed",
							logger.Component("middleware"),
							logger.Error(err),
						)
					}
				}
				ctx = context.WithValue(ctx, identityContextKey{}, *res.Identity)
				ctx = context.WithValue(ctx, sessionContextKey{}, res.Session)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// MetadataFromRequest captures the request's audit attributes for session
// issuance. Intended for sign-in handlers calling Manager.Issue.
func MetadataFromRequest(r *http.Request) session.Metadata {
	return session.Metadata{
		IP:        clientip.GetIP(r),
		UserAgent: r.UserAgent(),
	}
}

// IdentityFromContext extracts the authenticated identity attached by the
// middleware. The second return value is false for anonymous requests.
func IdentityFromContext(ctx context.Context) (session.Identity, bool) {
	id, ok := ctx.Value(identityContextKey{}).(session.Identity)
	return id, ok
}

// SessionFromContext extracts the validated session attached by the
// middleware. Handlers must treat it as read-only request-lifetime data.
func SessionFromContext(ctx context.Context) (session.Session, bool) {
	sess, ok := ctx.Value(sessionContextKey{}).(session.Session)
	return sess, ok
}

// RequireIdentity guards a handler chain: anonymous requests get 401.
// Must run after Authenticate.
func RequireIdentity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := IdentityFromContext(r.Context()); !ok {
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireIdentityOrRedirect guards a handler chain for browser flows:
// anonymous requests are redirected to the login prompt instead of receiving
// a bare 401.
func RequireIdentityOrRedirect(loginURL string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := IdentityFromContext(r.Context()); !ok {
				http.Redirect(w, r, loginURL, http.StatusSeeOther)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
