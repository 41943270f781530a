package session_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/authkit/core/session"
)

// Concurrent validations inside the renewal window: every request must see a
// valid identity and the stored expiry must only ever move forward.
func TestConcurrentRenewal(t *testing.T) {
	t.Parallel()

	store := newMockStore()
	mgr, clock := newTestManager(t, store,
		session.WithLifetime(10*time.Hour),
		session.WithRenewalWindow(10*time.Hour),
	)

	sess, tok := issueSession(t, mgr, store)
	clock.Advance(time.Hour)

	const goroutines = 20
	var wg sync.WaitGroup
	wg.Add(goroutines)

	for range goroutines {
		go func() {
			defer wg.Done()

			res, err := mgr.Validate(context.Background(), tok)
			assert.NoError(t, err)
			assert.NotNil(t, res.Identity)
		}()
	}

	wg.Wait()

	// All detached renewals compute the same policy-derived target; wait for
	// the writes to drain and verify the final expiry.
	want := clock.Now().Add(10 * time.Hour)
	require.Eventually(t, func() bool {
		exp, ok := store.expiry(sess.LookupID)
		return ok && exp.Equal(want)
	}, time.Second, 5*time.Millisecond)
}

// A validation racing a sign-out resolves to either a validated request or an
// anonymous one. Never a panic, never a resurrected session.
func TestValidateRevokeRace(t *testing.T) {
	t.Parallel()

	store := newMockStore()
	mgr, _ := newTestManager(t, store)

	_, tok := issueSession(t, mgr, store)

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		_, err := mgr.Validate(context.Background(), tok)
		assert.NoError(t, err)
	}()

	go func() {
		defer wg.Done()
		assert.NoError(t, mgr.Revoke(context.Background(), tok))
	}()

	wg.Wait()

	// After the dust settles the session is gone for good.
	res, err := mgr.Validate(context.Background(), tok)
	require.NoError(t, err)
	assert.Nil(t, res.Identity)
}

// Issue from many goroutines: every session gets a distinct token and key.
func TestConcurrentIssue(t *testing.T) {
	t.Parallel()

	store := newMockStore()
	mgr, _ := newTestManager(t, store)

	const goroutines = 20
	tokens := make([]string, goroutines)
	errs := make([]error, goroutines)

	var wg sync.WaitGroup
	wg.Add(goroutines)
	for i := range goroutines {
		go func(i int) {
			defer wg.Done()
			// Assertions stay on the test goroutine; goroutines only record.
			_, tok, err := mgr.Issue(context.Background(), session.Identity{
				SubjectID: uuid.New(),
				Email:     "user@example.com",
			}, session.Metadata{})
			tokens[i], errs[i] = tok, err
		}(i)
	}
	wg.Wait()

	seen := make(map[string]struct{}, goroutines)
	for i, tok := range tokens {
		require.NoError(t, errs[i])
		require.NotEmpty(t, tok)
		_, dup := seen[tok]
		require.False(t, dup)
		seen[tok] = struct{}{}
	}
}
