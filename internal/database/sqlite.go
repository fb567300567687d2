package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rs/zerolog"
	// Registers the pure-Go "sqlite" driver.
	_ "modernc.org/sqlite"

	"github.com/tessdev/holiday-service/internal/config"
)

// sqlitePragmas keeps readers from failing while another process writes.
const sqlitePragmas = "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"

// SQLite wraps a database/sql handle on a SQLite file.
type SQLite struct {
	DB  *sql.DB
	log *zerolog.Logger
}

// OpenSQLite opens cfg.Path and pings it.
//
// The service never writes holiday data, but the file is opened
// read-write so `migrate` can create the schema for local setups.
func OpenSQLite(ctx context.Context, cfg *config.SQLiteConfig, logger *zerolog.Logger) (*SQLite, error) {
	if cfg == nil || cfg.Path == "" {
		return nil, fmt.Errorf("sqlite config is missing")
	}

	db, err := sql.Open("sqlite", cfg.Path+sqlitePragmas)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(4)

	pingCtx, cancel := context.WithTimeout(ctx, DatabasePingTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping sqlite database: %w", err)
	}

	logger.Info().Str("path", cfg.Path).Msg("opened sqlite database")

	return &SQLite{DB: db, log: logger}, nil
}

func (s *SQLite) Ping(ctx context.Context) error {
	return s.DB.PingContext(ctx)
}

func (s *SQLite) Close() error {
	s.log.Info().Msg("closing sqlite database")
	return s.DB.Close()
}
