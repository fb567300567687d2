package database

import (
	"context"
	"embed"
	"fmt"
	"io/fs"

	"github.com/jackc/pgx/v5"
	tern "github.com/jackc/tern/v2/migrate"
	"github.com/rs/zerolog"

	"github.com/tessdev/holiday-service/internal/config"
)

// Migrations ship inside the binary.
//
//go:embed migrations/*.sql
var migrations embed.FS

// versionTable records the applied migration version.
const versionTable = "schema_version"

// Migrate brings the PostgreSQL schema (the holidays table) up to date
// using jackc/tern over a single connection.
func Migrate(ctx context.Context, logger *zerolog.Logger, cfg *config.Config) error {
	if cfg.Database == nil {
		return fmt.Errorf("database config is missing")
	}

	conn, err := pgx.Connect(ctx, DSN(cfg.Database))
	if err != nil {
		return fmt.Errorf("connecting for migrations: %w", err)
	}
	defer conn.Close(ctx)

	m, err := tern.NewMigrator(ctx, conn, versionTable)
	if err != nil {
		return fmt.Errorf("constructing database migrator: %w", err)
	}

	subtree, err := fs.Sub(migrations, "migrations")
	if err != nil {
		return fmt.Errorf("retrieving database migrations subtree: %w", err)
	}

	if err := m.LoadMigrations(subtree); err != nil {
		return fmt.Errorf("loading database migrations: %w", err)
	}

	from, err := m.GetCurrentVersion(ctx)
	if err != nil {
		return fmt.Errorf("retrieving current database migration version: %w", err)
	}

	if err := m.Migrate(ctx); err != nil {
		return fmt.Errorf("applying database migrations: %w", err)
	}

	if from == int32(len(m.Migrations)) {
		logger.Info().Msgf("database schema up to date, version %d", len(m.Migrations))
	} else {
		logger.Info().Msgf("migrated database schema, from %d to %d", from, len(m.Migrations))
	}
	return nil
}

// sqliteSchema mirrors migrations/001_create_holidays.sql for SQLite,
// which tern cannot drive. Dates are YYYY-MM-DD text.
const sqliteSchema = `
CREATE TABLE IF NOT EXISTS holidays (
	id           INTEGER PRIMARY KEY AUTOINCREMENT,
	name         TEXT NOT NULL CHECK (length(trim(name)) > 0),
	holiday_date TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_holidays_holiday_date ON holidays (holiday_date);
`

// MigrateSQLite creates the holidays table in a SQLite file if missing.
func MigrateSQLite(ctx context.Context, logger *zerolog.Logger, db *SQLite) error {
	if _, err := db.DB.ExecContext(ctx, sqliteSchema); err != nil {
		return fmt.Errorf("applying sqlite schema: %w", err)
	}

	logger.Info().Msg("sqlite schema up to date")
	return nil
}
