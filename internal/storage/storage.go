package storage

import (
	"context"
	"database/sql"

	"github.com/codeforge/server/internal/config"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Backend holds the database handle for whichever engine configuration
// selected. Exactly one of the two fields is non-nil.
type Backend struct {
	Postgres *pgxpool.Pool
	SQLite   *sql.DB
}

// opens the backend selected by configuration: Postgres when a
// connection string is present, the embedded SQLite file otherwise
func Open(ctx context.Context, cfg *config.Config) (*Backend, error) {
	if cfg.DatabaseURL != "" {
		pool, err := OpenPostgres(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}

		return &Backend{Postgres: pool}, nil
	}

	db, err := OpenSQLite(cfg.SQLitePath)
	if err != nil {
		return nil, err
	}

	return &Backend{SQLite: db}, nil
}

// returns the engine name for logging
func (b *Backend) Name() string {
	if b.Postgres != nil {
		return "postgres"
	}

	return "sqlite"
}

// releases the underlying handle
func (b *Backend) Close() {
	if b.Postgres != nil {
		b.Postgres.Close()
		return
	}

	if b.SQLite != nil {
		b.SQLite.Close() //nolint:errcheck
	}
}
