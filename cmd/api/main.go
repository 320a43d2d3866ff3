package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	_ "nexstock/docs" // Swagger docs
)

// @title       NexStock Inventory API
// @description Inventory dashboard backend: catalog, warehouses, AI assistant, reports and operations.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	rootCmd := &cobra.Command{
		Use:   "nexstock",
		Short: "NexStock inventory service",
		// Running without a subcommand serves the API.
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context())
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd.Context())
		},
	})

	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending PostgreSQL migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			dir, _ := cmd.Flags().GetString("dir")
			return runMigrations(cmd.Context(), dir)
		},
	}
	migrateCmd.Flags().String("dir", "", "Directory containing the migration files (defaults to database.migrations_dir)")
	rootCmd.AddCommand(migrateCmd)

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
