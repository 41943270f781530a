package pg

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrEmptyConnectionString indicates no connection string was provided.
	ErrEmptyConnectionString = errors.New("empty postgres connection string, use PG_CONN_URL env var")
	// ErrFailedToParseConfig indicates the connection string didn't parse.
	ErrFailedToParseConfig = errors.New("failed to parse postgres config")
	// ErrFailedToConnect indicates the pool could not be established after
	// all retry attempts.
	ErrFailedToConnect = errors.New("failed to connect to postgres")
	// ErrFailedToApplyMigrations indicates a goose migration run failed.
	ErrFailedToApplyMigrations = errors.New("failed to apply migrations")
	// ErrHealthcheckFailed indicates the connectivity probe failed.
	ErrHealthcheckFailed = errors.New("postgres healthcheck failed")
)

// IsNotFoundError reports whether err is a pgx no-rows result.
func IsNotFoundError(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

// IsDuplicateKeyError reports whether err is a unique constraint violation.
func IsDuplicateKeyError(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// IsForeignKeyViolationError reports whether err is a referential integrity
// violation.
func IsForeignKeyViolationError(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23503"
}

// IsTxClosedError reports whether err is use of an already-closed transaction.
func IsTxClosedError(err error) bool {
	return errors.Is(err, pgx.ErrTxClosed)
}
