package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"opsdesk/internal/db"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "opsctl",
		Short:         "Utility for managing the opsdesk dashboard backend",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(newMigrateCommand())
	cmd.AddCommand(newSeedCommand())
	cmd.AddCommand(newExportCommand())
	return cmd
}

func newMigrateCommand() *cobra.Command {
	var dsn string

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			return db.Migrate(ctx, dsn)
		},
	}

	cmd.Flags().StringVar(&dsn, "dsn", os.Getenv("DB_DSN"), "PostgreSQL connection string")
	return cmd
}

func newSeedCommand() *cobra.Command {
	var (
		dsn  string
		file string
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load YAML fixtures into the database",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			fx, err := db.LoadFixtures(file)
			if err != nil {
				return err
			}

			database, err := db.Connect(ctx, dsn)
			if err != nil {
				return err
			}
			defer func() { _ = db.Close(database) }()

			return db.Seed(ctx, database, fx)
		},
	}

	cmd.Flags().StringVar(&dsn, "dsn", os.Getenv("DB_DSN"), "PostgreSQL connection string")
	cmd.Flags().StringVar(&file, "file", "fixtures.yaml", "Fixture file to load")
	return cmd
}

func newExportCommand() *cobra.Command {
	var (
		apiBase string
		report  string
		out     string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Download a report as CSV from a running opsdesk instance",
		RunE: func(cmd *cobra.Command, args []string) error {
			url := fmt.Sprintf("%s/v1/reports/%s/export", apiBase, report)
			resp, err := http.Get(url)
			if err != nil {
				return err
			}
			defer resp.Body.Close()

			if resp.StatusCode != http.StatusOK {
				body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
				return fmt.Errorf("export failed: %s: %s", resp.Status, body)
			}

			f, err := os.Create(out)
			if err != nil {
				return err
			}
			defer f.Close()

			if _, err := io.Copy(f, resp.Body); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", out)
			return nil
		},
	}

	cmd.Flags().StringVar(&apiBase, "api", "http://localhost:8080", "Base URL of the opsdesk API")
	cmd.Flags().StringVar(&report, "report", "inventory-status", "Report to export (daily-sales, inventory-status, customer-insights)")
	cmd.Flags().StringVar(&out, "out", "report.csv", "Destination file")
	return cmd
}
