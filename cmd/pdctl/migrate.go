package main

import (
	"errors"

	"github.com/SscSPs/patient_decisions_app/internal/platform/config"
	"github.com/SscSPs/patient_decisions_app/pkg/database"
	"github.com/spf13/cobra"
)

var errMemoryDriver = errors.New("migrations need STORAGE_DRIVER=postgres")

func newMigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply or roll back database migrations",
	}

	cmd.AddCommand(newMigrateDirectionCmd("up", "Apply all pending migrations", database.MigrateUp))
	cmd.AddCommand(newMigrateDirectionCmd("down", "Roll back every applied migration", database.MigrateDown))

	return cmd
}

func newMigrateDirectionCmd(use, short string, direction database.MigrateDirection) *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfg.StorageDriver != config.StorageDriverPostgres {
				return errMemoryDriver
			}
			if path == "" {
				path = cfg.MigrationsPath
			}
			return database.RunMigrations(cfg.DatabaseURL, path, direction, log)
		},
	}

	cmd.Flags().StringVar(&path, "path", "", "Migrations source URL (defaults to MIGRATIONS_PATH)")

	return cmd
}
