// Package migrate implements the `fibernet migrate` command.
package migrate

import (
	"fmt"

	"github.com/spf13/cobra"

	"fibernet/internal/infrastructure/config"
	"fibernet/internal/infrastructure/database"
	"fibernet/internal/infrastructure/migration"
	"fibernet/internal/shared/logger"
)

var env string

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long:  `Apply database migrations and inspect the schema version.`,
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	cmd.AddCommand(newUpCommand(), newStatusCommand())

	return cmd
}

func newUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Run all pending migrations",
		RunE:  runUp,
	}
}

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the current schema version",
		RunE:  runStatus,
	}
}

func setup() (logger.Interface, *config.Config, error) {
	cfg, err := config.Load(env)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := logger.Init(&cfg.Logger); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	log := logger.NewLogger()
	if err := database.Init(&cfg.Database, log); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	return log, cfg, nil
}

func runUp(cmd *cobra.Command, args []string) error {
	log, cfg, err := setup()
	if err != nil {
		return err
	}
	defer database.Close()

	manager := migration.NewManager(cfg.Server.Mode, cfg.Database.Driver, log)
	if err := manager.Migrate(database.Get()); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	log.Infow("migrations applied")
	return nil
}

func runStatus(cmd *cobra.Command, args []string) error {
	log, _, err := setup()
	if err != nil {
		return err
	}
	defer database.Close()

	var version int64
	row := database.Get().Raw("SELECT COALESCE(MAX(version_id), 0) FROM goose_db_version").Row()
	if err := row.Scan(&version); err != nil {
		return fmt.Errorf("failed to read schema version (has migrate up been run?): %w", err)
	}

	log.Infow("schema version", "version", version)
	return nil
}
