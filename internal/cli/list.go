package cli

import (
	"github.com/spf13/cobra"

	"github.com/tessdev/holiday-service/internal/lib/utils"
	"github.com/tessdev/holiday-service/internal/repository"
	"github.com/tessdev/holiday-service/internal/server"
	"github.com/tessdev/holiday-service/internal/service"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the holiday list as JSON",
	Long: `Reads the configured source once and prints what GET /holidays
would return. Logs go to stderr so the output can be piped.`,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, _ []string) error {
	a, err := bootstrap(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer a.close()

	srv, err := server.New(a.cfg, &a.logger, a.loggerService)
	if err != nil {
		return err
	}
	defer srv.Close()

	services, err := service.NewServices(srv, repository.NewRepositories(srv))
	if err != nil {
		return err
	}

	holidays, err := services.Holidays.GetAll(cmd.Context())
	if err != nil {
		return err
	}

	return utils.PrintJSON(cmd.OutOrStdout(), holidays)
}
