package cookie

import "net/http"

// Options configures the mutable cookie attributes. HttpOnly is not an
// option: session cookies are always script-inaccessible.
type Options struct {
	Path     string
	Domain   string
	Secure   bool
	SameSite http.SameSite
}

// Option is a functional option for configuring the binder.
type Option func(*Options)

// WithPath sets the cookie path attribute.
func WithPath(path string) Option {
	return func(o *Options) {
		o.Path = path
	}
}

// WithDomain sets the cookie domain attribute.
func WithDomain(domain string) Option {
	return func(o *Options) {
		o.Domain = domain
	}
}

// WithSecure restricts the cookie to HTTPS. Enable in production contexts.
func WithSecure(secure bool) Option {
	return func(o *Options) {
		o.Secure = secure
	}
}

// WithSameSite sets the SameSite attribute. Lax is the default: it blocks
// cross-site subresource requests while permitting top-level navigation.
func WithSameSite(sameSite http.SameSite) Option {
	return func(o *Options) {
		o.SameSite = sameSite
	}
}

// applyOptions copies base options and applies modifications, preventing
// accidental mutation of shared defaults.
func applyOptions(base Options, opts []Option) Options {
	result := base
	for _, opt := range opts {
		opt(&result)
	}
	return result
}
