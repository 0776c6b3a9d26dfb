package main

import (
	"fmt"
	"log/slog"

	"finance-ledger/internal/config"
	"finance-ledger/internal/database"

	"github.com/spf13/cobra"
)

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
		Long: `Apply the SQL migrations in db/migrations to the configured database.

With --seed the files in db/seeds are loaded afterwards.`,
		Args: cobra.NoArgs,
		RunE: runMigrate,
	}

	cmd.Flags().Bool("seed", false, "load seed data after migrating")
	cmd.Flags().Bool("status", false, "show the current migration version without applying changes")

	return cmd
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	seed, _ := cmd.Flags().GetBool("seed")
	status, _ := cmd.Flags().GetBool("status")

	cfg := config.Load()
	db, err := database.New(&cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	sqlDB, err := db.DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}

	runner := database.NewMigrationRunner(sqlDB).WithSeeds(seed)

	if !status {
		slog.Info("Running migrations", "database", cfg.Database.Name, "seed", seed)
		if err := runner.Run(); err != nil {
			return err
		}
	}

	version, dirty, err := runner.GetMigrationStatus()
	if err != nil {
		return fmt.Errorf("failed to read migration status: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "version: %d\ndirty:   %t\n", version, dirty)
	return nil
}
