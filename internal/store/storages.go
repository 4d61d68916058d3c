package store

import (
	"context"
	"fmt"

	"github.com/scies/greenchem/internal/config"
	"github.com/scies/greenchem/internal/logger"
)

// Storages groups all storage backends into a single value that can be
// passed around the service layer.
type Storages struct {
	// UserRepository is the SQL-backed repository for user accounts.
	UserRepository UserRepository

	// Dataset is the in-memory substance dataset. It is nil when the dataset
	// file failed to load; lookups are then unavailable but the rest of the
	// application keeps running.
	Dataset ChemicalDataset

	// QueryLog is the append-only file-backed audit log of lookup attempts.
	QueryLog QueryLogRepository
}

// NewStorages initialises the storage layer using the supplied configuration
// and logger. It performs the following steps:
//  1. Opens the credential database selected by the DSN: a "postgres://" URI
//     connects to PostgreSQL, anything else is treated as a SQLite file path
//     (created if it does not yet exist).
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Constructs the query log writer, creating its directory if needed.
//  4. Loads the substance dataset. A load failure is logged but does not
//     abort startup; the Dataset field is left nil.
//
// Returns an error if the database connection, migration, or query log setup
// fails.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	var db *DB
	var err error
	if isPostgresDSN(cfg.DB.DSN) {
		db, err = NewConnectPostgres(ctx, cfg.DB, logger)
	} else {
		db, err = NewConnectSQLite(ctx, cfg.DB, logger)
	}
	if err != nil {
		return nil, fmt.Errorf("database connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	queryLog, err := NewQueryLogCSV(cfg.QueryLog.Path, logger)
	if err != nil {
		return nil, fmt.Errorf("query log setup failed: %w", err)
	}

	dataset, err := NewChemicalDataset(cfg.Dataset.Path, logger)
	if err != nil {
		logger.Error().Err(err).Str("path", cfg.Dataset.Path).Msg("dataset load failed, lookups unavailable")
		dataset = nil
	}

	return &Storages{
		UserRepository: NewUserRepository(db, logger),
		Dataset:        dataset,
		QueryLog:       queryLog,
	}, nil
}
