package store

import (
	"database/sql"

	"github.com/MKhiriev/go-time-diary/internal/logger"
	"github.com/MKhiriev/go-time-diary/migrations"
)

// DB wraps a database/sql connection together with the dialect it speaks.
type DB struct {
	*sql.DB
	dialect  migrations.Dialect
	isOutage OutageDetector
	logger   *logger.Logger
}

// Migrate applies the embedded migrations of the connection's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}
