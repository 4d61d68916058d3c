package store

import (
	"database/sql"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/scies/greenchem/internal/logger"
	"github.com/scies/greenchem/migrations"
)

// ErrorClass is the result type returned by [ErrorClassifier.Classify].
// It maps driver-specific error codes to the handful of conditions the
// repositories care about.
type ErrorClass int

const (
	// ClassOther is the default classification for unrecognised errors.
	ClassOther ErrorClass = iota

	// ClassRetryable indicates that the failed operation may succeed if
	// attempted again (e.g. after a transient connection loss, a deadlock
	// rollback, or a busy SQLite file).
	ClassRetryable

	// ClassUniqueViolation indicates that the operation violated a unique
	// constraint, typically a duplicate username.
	ClassUniqueViolation
)

// ErrorClassifier maps driver-level errors to an [ErrorClass]. Each SQL
// backend supplies its own implementation so the repositories stay
// driver-agnostic.
type ErrorClassifier interface {
	Classify(err error) ErrorClass
}

// DB wraps a [sql.DB] connection together with the pieces that differ
// between the PostgreSQL and SQLite backends: the placeholder style used by
// the query builder, the error classifier, and the migration dialect.
type DB struct {
	*sql.DB
	builder    sq.StatementBuilderType
	classifier ErrorClassifier
	dialect    string
	logger     *logger.Logger
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// isPostgresDSN reports whether the DSN selects the PostgreSQL backend.
// Anything else is treated as a SQLite file path.
func isPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}
