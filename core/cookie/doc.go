// Package cookie binds session tokens to client cookies.
//
// The binder writes the raw opaque token as the cookie value with a fixed
// security posture: always HttpOnly, SameSite=Lax by default, root path, and
// Max-Age/Expires kept in sync with the server-side session expiry. Clearing
// emits an empty cookie with Max-Age=0 semantics and the same attribute flags
// so clients drop it deterministically.
//
//	binder := cookie.New(cookie.WithSecure(true))
//
//	// login
//	_ = binder.Set(w, tok, sess.ExpiresAt)
//
//	// each request
//	tok, err := binder.Read(r)
//	if errors.Is(err, cookie.ErrNoCookie) {
//		// anonymous request
//	}
//
//	// sign-out
//	binder.Clear(w)
package cookie
