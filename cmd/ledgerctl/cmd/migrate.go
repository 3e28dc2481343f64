package cmd

import (
	"fmt"
	"log/slog"

	"github.com/SscSPs/books_ledger/pkg/database"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:       "migrate up|down",
	Short:     "Apply or roll back schema migrations",
	Long:      "migrate up applies every pending migration. migrate down rolls back the most recent one.",
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{string(database.MigrateUp), string(database.MigrateDown)},
	RunE:      runMigrate,
}

func runMigrate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	direction := database.MigrationDirection(args[0])
	slog.Info("Running migrations", "direction", direction, "path", cfg.MigrationsPath)

	changed, err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, direction)
	if err != nil {
		return err
	}
	if changed {
		fmt.Fprintf(cmd.OutOrStdout(), "migrate %s: schema updated\n", direction)
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "migrate %s: no change\n", direction)
	}
	return nil
}
