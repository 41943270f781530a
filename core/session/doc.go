// Package session implements cookie-session lifecycle management with hashed
// token storage and rolling renewal.
//
// A session is created on login with a fresh opaque token and an absolute
// expiry. The store is keyed by a one-way derivation of the token (see
// core/token), so bearer credentials never exist at rest. On each request the
// Manager resolves the presented token through a small state machine:
//
//	no token                         -> anonymous
//	malformed or unknown token       -> anonymous, clear stale cookie
//	expired                          -> anonymous, clear cookie, detached delete
//	valid, inside renewal window     -> identity, detached expiry extension
//	valid, outside renewal window    -> identity, no store mutation
//
// Renewal is sliding expiration: within the trailing RenewalWindow before
// expiry, a validated session gets a new expiry of now+Lifetime. The write is
// fire-and-forget; a failed renewal never revokes the authentication already
// granted to the current request, it only risks an earlier future expiry.
//
// # Usage
//
//	store := memory.New()
//	manager, err := session.NewManager(store,
//		session.WithLifetime(30*24*time.Hour),
//		session.WithRenewalWindow(15*24*time.Hour),
//		session.WithLogger(log),
//	)
//	if err != nil {
//		// invalid policy configuration
//	}
//
//	// Login: mint a session after credentials are verified elsewhere.
//	sess, tok, err := manager.Issue(ctx, session.Identity{SubjectID: userID, Email: email}, session.Metadata{
//		IP:        clientip.GetIP(r),
//		UserAgent: r.UserAgent(),
//	})
//
//	// Per request: resolve the cookie token.
//	res, err := manager.Validate(ctx, tok)
//	switch {
//	case err != nil:
//		// store unavailable (fail-closed mode), reject the request
//	case res.Identity == nil:
//		// anonymous; res.ClearCookie says whether to drop a stale cookie
//	default:
//		// authenticated as res.Identity.SubjectID
//	}
//
//	// Sign-out.
//	_ = manager.Revoke(ctx, tok)
//
// # Concurrency
//
// The Manager holds no cross-request state and takes no locks; the Store is
// the only point of coordination. Two concurrent requests inside the renewal
// window may both issue a renewal; both compute now+Lifetime, and stores apply
// expiry updates monotonically, so last-write-wins is safe. A validation
// racing a sign-out resolves to either a validated request or an anonymous
// one, never a corrupt state.
//
// # Failure policy
//
// Store unavailability during the primary lookup is the only error Validate
// surfaces, and only in the default fail-closed mode; WithFailOpen trades that
// for availability. Every other failure degrades to anonymous plus a
// corrective clear-cookie instruction, with detached writes logged and
// dropped.
package session
