// Package middleware provides net/http middleware for request
// authentication.
//
// Authenticate is the per-request pipeline stage: it resolves the session
// cookie through the lifecycle manager and attaches the resulting identity to
// the request context. Handlers read it back with IdentityFromContext; the
// context value is immutable request-lifetime data, never a mutable global.
//
//	binder := cookie.New(cookie.WithSecure(true))
//	manager, _ := session.NewManager(store)
//
//	mux := http.NewServeMux()
//	mux.Handle("/dashboard", middleware.RequireIdentity(dashboardHandler))
//
//	handler := middleware.RequestID(
//		middleware.Authenticate(manager, binder)(mux),
//	)
//	http.ListenAndServe(":8080", handler)
//
// Guards compose after Authenticate: RequireIdentity for APIs (401),
// RequireIdentityOrRedirect for browser flows (303 to the login prompt).
package middleware
