package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
)

// ErrorClassification is the result type returned by
// [ErrorClassificator.Classify]. It names the driver-independent category a
// low-level database error belongs to, so repositories can translate driver
// errors into sentinel errors without importing driver packages.
type ErrorClassification int

const (
	// Unclassified is the default for errors the classifier does not
	// recognise; repositories treat these as unexpected DB failures.
	Unclassified ErrorClassification = iota

	// UniqueViolation indicates that an INSERT broke a uniqueness
	// constraint (a duplicate username in this application).
	UniqueViolation
)

// ErrorClassificator maps backend-specific driver errors onto
// [ErrorClassification] values. Each supported SQL backend ships its own
// implementation.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// PostgresErrorClassifier implements [ErrorClassificator] for PostgreSQL.
// It inspects the pgconn error code returned by the pgx driver.
type PostgresErrorClassifier struct{}

// NewPostgresErrorClassifier constructs a [PostgresErrorClassifier] ready for use.
func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify implements [ErrorClassificator]. It attempts to unwrap err as a
// *pgconn.PgError and maps the unique_violation code (23505). If err is nil
// or is not a PostgreSQL driver error, [Unclassified] is returned.
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	if err == nil {
		return Unclassified
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		return UniqueViolation
	}

	return Unclassified
}

// SQLiteErrorClassifier implements [ErrorClassificator] for SQLite.
// It inspects the extended result code reported by mattn/go-sqlite3.
type SQLiteErrorClassifier struct{}

// NewSQLiteErrorClassifier constructs a [SQLiteErrorClassifier] ready for use.
func NewSQLiteErrorClassifier() *SQLiteErrorClassifier {
	return &SQLiteErrorClassifier{}
}

// Classify implements [ErrorClassificator]. SQLite reports a duplicate
// primary key either as SQLITE_CONSTRAINT_PRIMARYKEY or as
// SQLITE_CONSTRAINT_UNIQUE depending on the table definition, so both
// extended codes map to [UniqueViolation].
func (c *SQLiteErrorClassifier) Classify(err error) ErrorClassification {
	if err == nil {
		return Unclassified
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		if sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
			sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey {
			return UniqueViolation
		}
	}

	return Unclassified
}
