// Package credentials hashes and verifies passwords for the login path.
//
// Verification feeds the session manager: a successful VerifyPassword is what
// authorizes minting a new session for the subject. The package deliberately
// collapses all verification failures into one error so callers cannot leak
// whether an account exists, and provides VerifyDummy to equalize timing on
// account-lookup misses.
package credentials
