// Package main provides pdctl, the operator tool for the patient decisions
// store: schema migrations and offline bulk imports.
package main

import (
	"log/slog"
	"os"

	"github.com/SscSPs/patient_decisions_app/internal/platform/config"
	"github.com/SscSPs/patient_decisions_app/internal/platform/logger"
	"github.com/spf13/cobra"
)

var (
	version = "dev"

	// Global flags
	verbose bool

	cfg *config.Config
	log *slog.Logger
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "pdctl",
		Short: "Operator CLI for the patient decisions store",
		Long: `pdctl manages the patient decisions store directly, without going
through the HTTP API.

It reads the same environment (PGSQL_URL, STORAGE_DRIVER, BULK_BATCH_SIZE, ...)
as the server.`,
		Version: version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.LoadConfig()
			if err != nil {
				return err
			}
			cfg = loaded
			log = logger.New(os.Stderr, !verbose)
			slog.SetDefault(log)
			return nil
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(newMigrateCmd())
	rootCmd.AddCommand(newImportCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
