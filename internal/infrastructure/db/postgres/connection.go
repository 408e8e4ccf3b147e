package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/KretovDmitry/bankaccount/internal/config"
	"github.com/KretovDmitry/bankaccount/pkg/logger"
	"github.com/jackc/pgx/v5/stdlib"
	sqldblogger "github.com/simukti/sqldb-logger"
)

// Connect opens the database, wraps the driver to log every query
// and checks connectivity.
func Connect(ctx context.Context, cfg *config.Config, logger logger.Logger) (*sql.DB, error) {
	// Log every query to the database.
	db := sqldblogger.OpenDriver(cfg.DSN, stdlib.GetDefaultDriver(), logger)

	// Check connectivity and DSN correctness.
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	return db, nil
}

// Migrate creates the tables used by the repositories of this package.
func Migrate(ctx context.Context, db *sql.DB) error {
	const query = `
		CREATE TABLE IF NOT EXISTS operations (
			seq        BIGSERIAL PRIMARY KEY,
			id         UUID      NOT NULL UNIQUE,
			kind       TEXT      NOT NULL CHECK (kind IN ('DEPOSIT', 'WITHDRAWAL')),
			amount     NUMERIC   NOT NULL CHECK (amount > 0),
			balance    NUMERIC   NOT NULL,
			created_at BIGINT    NOT NULL
		);
	`

	if _, err := db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("migrate operations: %w", err)
	}

	return nil
}
