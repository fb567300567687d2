// Package cli holds the holiday-service command line: serve (default),
// migrate and list.
package cli

import (
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/tessdev/holiday-service/internal/config"
	"github.com/tessdev/holiday-service/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:   "holiday-service",
	Short: "Serve the holiday list over HTTP",
	Long: `holiday-service exposes GET /holidays, the full list of holidays
produced by the configured source (static, calendar, file, remote,
postgres or sqlite).

Configuration is read from HOLIDAY_* environment variables and an
optional .env file. Without a subcommand the HTTP server is started.`,
	SilenceUsage: true,
	RunE:         runServe,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// app is what every command needs before doing its work.
type app struct {
	cfg           *config.Config
	loggerService *logger.LoggerService
	logger        zerolog.Logger
}

// bootstrap loads and validates configuration and builds the root logger
// writing to logOut.
func bootstrap(logOut io.Writer) (*app, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}

	loggerService := logger.NewLoggerService(cfg.Observability)
	log := logger.NewLoggerWithWriter(logOut, cfg.Observability, loggerService)

	return &app{cfg: cfg, loggerService: loggerService, logger: log}, nil
}

func (a *app) close() {
	a.loggerService.Shutdown()
}
