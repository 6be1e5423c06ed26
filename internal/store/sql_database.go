package store

import (
	"database/sql"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-limerick-locker/internal/logger"
	"github.com/MKhiriev/go-limerick-locker/migrations"
)

// DB bundles an open SQL connection with the backend-specific pieces the
// repositories need: an error classifier for translating driver errors into
// sentinel errors, a squirrel statement builder carrying the backend's
// placeholder format, and the goose dialect used for migrations.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	builder            sq.StatementBuilderType
	dialect            string
	logger             *logger.Logger
}

// Migrate applies all embedded schema migrations to the connection using the
// dialect the connection was opened with.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}
