// Package mongo provides MongoDB client initialization and health checking.
//
// Connect establishes the client with retry logic and verifies connectivity
// with a primary ping before returning. Healthcheck returns a probe function
// for readiness endpoints.
package mongo
