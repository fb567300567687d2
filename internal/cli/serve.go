package cli

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/tessdev/holiday-service/internal/handler"
	"github.com/tessdev/holiday-service/internal/repository"
	"github.com/tessdev/holiday-service/internal/router"
	"github.com/tessdev/holiday-service/internal/server"
	"github.com/tessdev/holiday-service/internal/service"
)

// shutdownTimeout bounds graceful shutdown.
const shutdownTimeout = 30 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	a, err := bootstrap(os.Stdout)
	if err != nil {
		return err
	}
	defer a.close()

	srv, err := server.New(a.cfg, &a.logger, a.loggerService)
	if err != nil {
		a.logger.Error().Err(err).Msg("failed to initialize server")
		return err
	}

	services, err := service.NewServices(srv, repository.NewRepositories(srv))
	if err != nil {
		a.logger.Error().Err(err).Msg("could not create services")
		_ = srv.Close()
		return err
	}

	r := router.NewRouter(srv, handler.NewHandlers(srv, services))
	srv.SetupHTTPServer(r)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			a.logger.Error().Err(err).Msg("server stopped unexpectedly")
			_ = srv.Close()
			return err
		}
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		a.logger.Error().Err(err).Msg("server forced to shutdown")
		return err
	}

	a.logger.Info().Msg("server exited properly")
	return nil
}
