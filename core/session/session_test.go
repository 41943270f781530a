package session_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/authkit/core/session"
)

func TestSession_IsExpired(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	sess := session.Session{ExpiresAt: now.Add(time.Hour)}

	assert.False(t, sess.IsExpired(now))
	assert.False(t, sess.IsExpired(now.Add(time.Hour-time.Nanosecond)))
	assert.True(t, sess.IsExpired(now.Add(time.Hour)), "invalid at the expiry instant")
	assert.True(t, sess.IsExpired(now.Add(2*time.Hour)))
}

func TestSession_InRenewalWindow(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	window := 15 * time.Minute
	sess := session.Session{ExpiresAt: now.Add(time.Hour)}

	tests := []struct {
		name string
		at   time.Time
		want bool
	}{
		{name: "fresh", at: now, want: false},
		{name: "just before window", at: now.Add(45*time.Minute - time.Second), want: false},
		{name: "window boundary", at: now.Add(45 * time.Minute), want: true},
		{name: "inside window", at: now.Add(50 * time.Minute), want: true},
		{name: "at expiry", at: now.Add(time.Hour), want: false},
		{name: "past expiry", at: now.Add(2 * time.Hour), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, sess.InRenewalWindow(tt.at, window))
		})
	}
}

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := session.DefaultConfig()
	assert.Equal(t, 30*24*time.Hour, cfg.Lifetime)
	assert.Equal(t, 15*24*time.Hour, cfg.RenewalWindow)
	assert.False(t, cfg.FailOpen)
}
