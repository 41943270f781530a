package redis

import "errors"

var (
	// ErrEmptyConnectionURL indicates no Redis URL was provided.
	ErrEmptyConnectionURL = errors.New("empty redis connection URL")
	// ErrFailedToParseConnString indicates the Redis URL didn't parse.
	ErrFailedToParseConnString = errors.New("failed to parse redis connection string")
	// ErrNotReady indicates Redis did not become reachable within the
	// configured retry budget.
	ErrNotReady = errors.New("redis did not become ready within the given time period")
	// ErrHealthcheckFailed indicates the connectivity probe failed.
	ErrHealthcheckFailed = errors.New("redis healthcheck failed")
)
