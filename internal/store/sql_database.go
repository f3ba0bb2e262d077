package store

import (
	"database/sql"

	sq "github.com/Masterminds/squirrel"

	"github.com/mkarev/go-jwt-auth/internal/logger"
	"github.com/mkarev/go-jwt-auth/migrations"
)

// DB wraps the raw *sql.DB connection together with the pieces that
// depend on the concrete engine: the goose dialect, the squirrel
// placeholder format, and the retryability classifier.
type DB struct {
	*sql.DB

	dialect            string
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Migrate brings the schema of the connected database up to date.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// Builder returns a squirrel statement builder configured with the
// placeholder format of the connected engine ($1 for PostgreSQL, ? for
// SQLite).
func (db *DB) Builder() sq.StatementBuilderType {
	return db.builder
}
