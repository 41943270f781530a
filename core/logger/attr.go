package logger

import (
	"log/slog"
	"time"
)

// Attribute helpers use the empty Attr pattern for nil safety: a call like
// log.Info("msg", logger.Error(err)) needs no explicit nil check.

// Error creates an attribute for a single error under the key "error".
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Duration creates an attribute for a duration.
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// Elapsed logs the duration since the start time.
func Elapsed(start time.Time) slog.Attr {
	return slog.Duration("elapsed", time.Since(start))
}

// Component identifies the emitting subsystem.
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Event names a discrete occurrence, e.g. "session_renewed".
func Event(name string) slog.Attr {
	return slog.String("event", name)
}

// RequestID tags records with the per-request correlation id.
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

// ClientIP records the originating client address.
func ClientIP(ip string) slog.Attr {
	if ip == "" {
		return slog.Attr{}
	}
	return slog.String("client_ip", ip)
}

// UserAgent records the client's User-Agent string.
func UserAgent(ua string) slog.Attr {
	if ua == "" {
		return slog.Attr{}
	}
	return slog.String("user_agent", ua)
}

// Subject tags records with the authenticated subject identifier.
func Subject(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("subject_id", id)
}

// LookupID tags records with a session lookup identifier. Safe to log:
// lookup identifiers are one-way derivations, never bearer credentials.
func LookupID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("lookup_id", id)
}

// Count creates a counter attribute with a custom key.
func Count(key string, n int64) slog.Attr {
	return slog.Int64(key, n)
}
