package cookie

import (
	"errors"
	"net/http"
	"time"
)

// DefaultName is the session cookie name.
const DefaultName = "session"

// Binder binds session tokens to a client cookie with fixed security
// attributes, and clears it on sign-out. The cookie value is the raw opaque
// token; everything security-relevant lives server-side behind its hash.
type Binder struct {
	name     string
	defaults Options
}

// New creates a cookie binder. Defaults: name "session", root path,
// SameSite=Lax, not Secure (enable via WithSecure in production contexts).
// HttpOnly is unconditional: the token must never be script-readable.
func New(opts ...Option) *Binder {
	defaults := Options{
		Path:     "/",
		SameSite: http.SameSiteLaxMode,
	}

	return &Binder{
		name:     DefaultName,
		defaults: applyOptions(defaults, opts),
	}
}

// NewFromConfig creates a Binder from environment-based configuration.
// Explicit options override config values.
func NewFromConfig(cfg Config, opts ...Option) *Binder {
	configOpts := make([]Option, 0, 4)

	if cfg.Path != "" {
		configOpts = append(configOpts, WithPath(cfg.Path))
	}
	if cfg.Domain != "" {
		configOpts = append(configOpts, WithDomain(cfg.Domain))
	}
	if cfg.Secure {
		configOpts = append(configOpts, WithSecure(true))
	}
	if cfg.SameSite != 0 {
		configOpts = append(configOpts, WithSameSite(cfg.SameSite))
	}

	b := New(append(configOpts, opts...)...)
	if cfg.Name != "" {
		b.name = cfg.Name
	}
	return b
}

// Name returns the cookie name the binder operates on.
func (b *Binder) Name() string {
	return b.name
}

// Set attaches the session cookie with Max-Age and Expires synchronized to
// the session's expiry. Setting an already-expired session degrades to
// clearing the cookie: the client must never end up holding a credential the
// server already considers dead, and binding itself never fails.
func (b *Binder) Set(w http.ResponseWriter, token string, expiresAt time.Time) error {
	until := time.Until(expiresAt)
	if until <= 0 {
		b.Clear(w)
		return nil
	}

	http.SetCookie(w, &http.Cookie{
		Name:     b.name,
		Value:    token,
		Path:     b.defaults.Path,
		Domain:   b.defaults.Domain,
		Expires:  expiresAt,
		MaxAge:   int(until.Seconds()),
		Secure:   b.defaults.Secure,
		HttpOnly: true,
		SameSite: b.defaults.SameSite,
	})
	return nil
}

// Clear sets an empty, immediately-expired cookie with identical attribute
// flags so the client deterministically drops it.
func (b *Binder) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     b.name,
		Value:    "",
		Path:     b.defaults.Path,
		Domain:   b.defaults.Domain,
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		Secure:   b.defaults.Secure,
		HttpOnly: true,
		SameSite: b.defaults.SameSite,
	})
}

// Read extracts the session token from the request cookie.
// An absent cookie is a normal, common case and returns ErrNoCookie.
func (b *Binder) Read(r *http.Request) (string, error) {
	c, err := r.Cookie(b.name)
	if err != nil {
		if errors.Is(err, http.ErrNoCookie) {
			return "", ErrNoCookie
		}
		return "", err
	}
	return c.Value, nil
}
