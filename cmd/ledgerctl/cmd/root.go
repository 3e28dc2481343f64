// Package cmd provides the ledgerctl commands.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	portssvc "github.com/SscSPs/books_ledger/internal/core/ports/services"
	"github.com/SscSPs/books_ledger/internal/core/services"
	"github.com/SscSPs/books_ledger/internal/platform/config"
	"github.com/SscSPs/books_ledger/internal/repositories/database/pgsql"
	"github.com/SscSPs/books_ledger/internal/repositories/lock"
	"github.com/SscSPs/books_ledger/pkg/database"
	"github.com/spf13/cobra"
)

// operatorUserID is recorded as the author of rows written from the command line.
const operatorUserID = "ledgerctl"

var (
	tenantID string
	envFile  string
	debug    bool
)

var rootCmd = &cobra.Command{
	Use:   "ledgerctl",
	Short: "Operate the books ledger database",
	Long: `ledgerctl runs maintenance tasks directly against the ledger database.

Example:
  ledgerctl migrate up
  ledgerctl seed-accounts --tenant t-1
  ledgerctl verify-postings --tenant t-1
  ledgerctl export trial-balance --tenant t-1 --period 2024-03 --out tb.xlsx`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logLevel := slog.LevelInfo
		if debug {
			logLevel = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})))
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.ExecuteContext(context.Background())
}

func init() {
	rootCmd.PersistentFlags().StringVar(&tenantID, "tenant", "", "tenant to operate on")
	rootCmd.PersistentFlags().StringVar(&envFile, "config-env", "", "env file to load (default is .env)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(seedAccountsCmd)
	rootCmd.AddCommand(verifyPostingsCmd)
	rootCmd.AddCommand(exportCmd)
}

func loadConfig() (*config.Config, error) {
	if envFile != "" {
		return config.LoadConfigFrom(envFile)
	}
	return config.LoadConfig()
}

func requireTenant() error {
	if tenantID == "" {
		return errors.New("--tenant is required")
	}
	return nil
}

// withServices opens the database, wires the operator services and runs fn.
func withServices(ctx context.Context, fn func(*portssvc.ServiceContainer) error) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	pool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, true)
	if err != nil {
		return err
	}
	defer database.ClosePgxPool(pool)

	container, err := services.NewOperatorServiceContainer(cfg, pgsql.NewRepositoryProvider(pool), lock.NewMemoryLocker(cfg.DocumentLockTTL))
	if err != nil {
		return err
	}
	return fn(container)
}
