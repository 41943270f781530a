// Package token generates opaque bearer tokens and derives their server-side
// lookup identifiers.
//
// A token is 32 bytes from crypto/rand, base64url-encoded without padding.
// The raw token travels to the client (typically as a cookie value) and is
// never stored. Storage is indexed by DeriveLookupID, a SHA-256 digest of the
// token bytes, so a leaked database never yields usable credentials.
//
// Usage:
//
//	tok, err := token.Generate()
//	if err != nil {
//		// random source exhausted, treat as fatal
//	}
//
//	id, err := token.DeriveLookupID(tok)
//	if err != nil {
//		// token.ErrMalformed: treat like an unknown token
//	}
package token
