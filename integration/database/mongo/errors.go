package mongo

import "errors"

var (
	// ErrEmptyConnectionURL indicates no MongoDB URL was provided.
	ErrEmptyConnectionURL = errors.New("empty mongodb connection URL")
	// ErrFailedToConnect indicates the client could not reach MongoDB within
	// the configured retry budget.
	ErrFailedToConnect = errors.New("failed to connect to mongodb")
	// ErrHealthcheckFailed indicates the connectivity probe failed.
	ErrHealthcheckFailed = errors.New("mongodb healthcheck failed")
)
