// Package migrations embeds the SQL schema of the document table for every
// supported SQL dialect and applies it with goose.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

// Dialect names a SQL flavour with its own migration directory.
type Dialect string

const (
	DialectPostgres Dialect = "postgres"
	DialectSQLite   Dialect = "sqlite"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

// gooseDialects maps a dialect to the goose dialect name.
var gooseDialects = map[Dialect]string{
	DialectPostgres: "pgx",
	DialectSQLite:   "sqlite3",
}

// Migrate applies all pending migrations of dialect to db.
func Migrate(db *sql.DB, dialect Dialect) error {
	if db == nil {
		return errors.New("migration error: db is nil")
	}

	gooseDialect, ok := gooseDialects[dialect]
	if !ok {
		return fmt.Errorf("migration error: unsupported dialect %q", dialect)
	}

	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect(gooseDialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, string(dialect)); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
