// Package server defines the Server container that composes the app's
// shared dependencies and owns the HTTP server lifecycle.
//
// It owns:
//   - configuration
//   - logger + optional New Relic service wrapper
//   - the database handle behind a database-backed holiday source
//   - http.Server
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/tessdev/holiday-service/internal/config"
	"github.com/tessdev/holiday-service/internal/database"
	loggerPkg "github.com/tessdev/holiday-service/internal/logger"
)

// Store is a database handle the health check can ping.
type Store interface {
	Ping(ctx context.Context) error
	Close() error
}

// Server is the application container that holds shared resources.
//
// DB is set only for the postgres source and SQLite only for the sqlite
// source; both are nil otherwise.
type Server struct {
	Config        *config.Config
	Logger        *zerolog.Logger
	LoggerService *loggerPkg.LoggerService

	DB     *database.Database
	SQLite *database.SQLite

	httpServer *http.Server
}

// New constructs a Server and opens the database the configured holiday
// source needs. Startup fails if that database is unreachable.
//
// It does not start the HTTP server; see SetupHTTPServer and Start.
func New(cfg *config.Config, logger *zerolog.Logger, loggerService *loggerPkg.LoggerService) (*Server, error) {
	s := &Server{
		Config:        cfg,
		Logger:        logger,
		LoggerService: loggerService,
	}

	switch cfg.Holidays.Source {
	case config.SourcePostgres:
		db, err := database.New(cfg, logger, loggerService)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		s.DB = db

	case config.SourceSQLite:
		db, err := database.OpenSQLite(context.Background(), cfg.SQLite, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize sqlite database: %w", err)
		}
		s.SQLite = db
	}

	return s, nil
}

// Store returns the open database handle, or nil when the holiday source
// is not database backed.
func (s *Server) Store() Store {
	switch {
	case s.DB != nil:
		return s.DB
	case s.SQLite != nil:
		return s.SQLite
	default:
		return nil
	}
}

// SetupHTTPServer configures the internal net/http server around handler.
func (s *Server) SetupHTTPServer(handler http.Handler) {
	s.httpServer = &http.Server{
		Addr:         ":" + s.Config.Server.Port,
		Handler:      handler,
		ReadTimeout:  time.Duration(s.Config.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(s.Config.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(s.Config.Server.IdleTimeout) * time.Second,
	}
}

// Start blocks serving HTTP until the server is shut down.
// http.ErrServerClosed is returned after a graceful Shutdown.
func (s *Server) Start() error {
	if s.httpServer == nil {
		return errors.New("HTTP server not initialized")
	}

	s.Logger.Info().
		Str("port", s.Config.Server.Port).
		Str("env", s.Config.Primary.Env).
		Str("source", s.Config.Holidays.Source).
		Msg("starting server")

	return s.httpServer.ListenAndServe()
}

// Shutdown stops accepting requests, waits for in-flight ones until ctx
// expires and then closes the database handle.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			return fmt.Errorf("failed to shutdown HTTP server: %w", err)
		}
	}

	return s.Close()
}

// Close releases the database handle, if any.
func (s *Server) Close() error {
	if store := s.Store(); store != nil {
		if err := store.Close(); err != nil {
			return fmt.Errorf("failed to close database connection: %w", err)
		}
	}
	return nil
}
