package cookie

import "net/http"

// Config provides environment-based configuration for the session cookie.
type Config struct {
	Name     string        `env:"SESSION_COOKIE_NAME" envDefault:"session"`
	Path     string        `env:"SESSION_COOKIE_PATH" envDefault:"/"`
	Domain   string        `env:"SESSION_COOKIE_DOMAIN" envDefault:""`
	Secure   bool          `env:"SESSION_COOKIE_SECURE" envDefault:"false"`
	SameSite http.SameSite `env:"SESSION_COOKIE_SAME_SITE" envDefault:"2"` // SameSiteLaxMode
}

// DefaultConfig returns a Config with secure defaults for development.
// Production deployments should set SESSION_COOKIE_SECURE=true.
func DefaultConfig() Config {
	return Config{
		Name:     DefaultName,
		Path:     "/",
		SameSite: http.SameSiteLaxMode,
	}
}
