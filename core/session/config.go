package session

import "time"

// Config holds session lifecycle policy loaded from the environment.
type Config struct {
	// Lifetime is the session validity duration from creation or renewal.
	Lifetime time.Duration `env:"SESSION_LIFETIME" envDefault:"720h"`
	// RenewalWindow is the trailing duration before expiry during which a
	// validated session is extended on use (sliding expiration).
	RenewalWindow time.Duration `env:"SESSION_RENEWAL_WINDOW" envDefault:"360h"`
	// FailOpen treats store unavailability during validation as anonymous
	// instead of failing the request. Availability-favoring; off by default.
	FailOpen bool `env:"SESSION_FAIL_OPEN" envDefault:"false"`
}

// DefaultConfig returns the default lifecycle policy: 30-day lifetime with a
// 15-day renewal window, fail-closed.
func DefaultConfig() Config {
	return Config{
		Lifetime:      30 * 24 * time.Hour,
		RenewalWindow: 15 * 24 * time.Hour,
		FailOpen:      false,
	}
}
