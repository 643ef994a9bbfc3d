package main

import (
	"context"
	"database/sql"
	"fmt"
	root "outreach"
	"outreach/internal/config"
	"outreach/pkg/logger"

	"github.com/pressly/goose/v3"
	"github.com/riverqueue/river/riverdriver/riverdatabasesql"
	"github.com/riverqueue/river/rivermigrate"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// migrateSchema applies the embedded goose migrations (campaigns and inbox tables).
func migrateSchema(db *sql.DB) error {
	goose.SetBaseFS(root.Migrations)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("could not set goose dialect to postgres: %w", err)
	}
	if err := goose.Up(db, "migrations"); err != nil {
		return fmt.Errorf("could not migrate pgsql: %w", err)
	}

	return nil
}

// migrateQueue brings the River tables to the latest version and returns it.
func migrateQueue(ctx context.Context, db *sql.DB) (int, error) {
	migrator, err := rivermigrate.New(riverdatabasesql.New(db), nil)
	if err != nil {
		return 0, fmt.Errorf("could not create river queue migrator: %w", err)
	}

	migrations := migrator.AllVersions()
	latestVersion := migrations[len(migrations)-1].Version

	currentVersion := 0
	currentMigrations, err := migrator.ExistingVersions(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not get existing river queue migrations: %w", err)
	}
	if len(currentMigrations) > 0 {
		currentVersion = currentMigrations[len(currentMigrations)-1].Version
	}
	if latestVersion <= currentVersion {
		return currentVersion, nil
	}

	if _, err = migrator.Migrate(ctx, rivermigrate.DirectionUp, &rivermigrate.MigrateOpts{
		TargetVersion: latestVersion,
	}); err != nil {
		return 0, fmt.Errorf("could not migrate river queue database: %w", err)
	}

	return latestVersion, nil
}

// migrateCommand constructs the 'migrate' subcommand that applies both the
// service schema and the River queue schema.
func migrateCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Migrates database to the latest version",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			db := strg.DB.(*sql.DB) //nolint: forcetypeassert
			if err := migrateSchema(db); err != nil {
				logger.Fatal(ctx, "could not migrate schema", zap.Error(err))
			}

			version, err := migrateQueue(ctx, db)
			if err != nil {
				logger.Fatal(ctx, "could not migrate queue", zap.Error(err))
			}
			logger.Info(ctx, "database is up to date", zap.Int("riverVersion", version))
		},
	}

	return cmd
}
