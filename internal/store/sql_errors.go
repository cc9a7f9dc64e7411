package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
)

// OutageDetector reports whether a driver error means the database could
// not serve the request at all, as opposed to rejecting it.
type OutageDetector func(err error) bool

// PostgresOutage treats lost connections, rolled back transactions and a
// server that is starting or shutting down as an outage. Constraint, data
// and syntax errors are not.
func PostgresOutage(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	if pgerrcode.IsConnectionException(pgErr.Code) || pgerrcode.IsTransactionRollback(pgErr.Code) {
		return true
	}

	switch pgErr.Code {
	case pgerrcode.CannotConnectNow,
		pgerrcode.AdminShutdown,
		pgerrcode.CrashShutdown,
		pgerrcode.TooManyConnections:
		return true
	}
	return false
}

// SQLiteOutage treats a database file held by another writer past the busy
// timeout as an outage.
func SQLiteOutage(err error) bool {
	var liteErr sqlite3.Error
	if !errors.As(err, &liteErr) {
		return false
	}
	return liteErr.Code == sqlite3.ErrBusy || liteErr.Code == sqlite3.ErrLocked
}
