package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tessdev/holiday-service/internal/config"
	"github.com/tessdev/holiday-service/internal/database"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the holidays table",
	Long: `Applies the embedded schema migrations to the database of the
configured source. Only the postgres and sqlite sources have a schema.`,
	RunE: runMigrate,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	a, err := bootstrap(os.Stdout)
	if err != nil {
		return err
	}
	defer a.close()

	ctx := cmd.Context()

	switch a.cfg.Holidays.Source {
	case config.SourcePostgres:
		return database.Migrate(ctx, &a.logger, a.cfg)

	case config.SourceSQLite:
		db, err := database.OpenSQLite(ctx, a.cfg.SQLite, &a.logger)
		if err != nil {
			return err
		}
		defer db.Close()
		return database.MigrateSQLite(ctx, &a.logger, db)

	default:
		return fmt.Errorf("holiday source %q has no database to migrate", a.cfg.Holidays.Source)
	}
}
