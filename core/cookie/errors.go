package cookie

import "errors"

// ErrNoCookie indicates the request carries no session cookie.
// A normal outcome for anonymous requests, not a failure.
var ErrNoCookie = errors.New("session cookie not present")
