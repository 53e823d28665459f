package main

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"starwarsapi/migrations"
)

// migrateCmd represents the migrate command
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database migrations",
	Long: `Run the embedded schema migrations.

Subcommands:
  up      - Apply pending migrations
  down    - Rollback all migrations
  status  - Show the current schema version`,
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply pending migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withMigrationDB(cmd.Context(), func(ctx context.Context, db *sql.DB) error {
			if err := migrations.Up(ctx, db); err != nil {
				return err
			}
			log.Info().Msg("migrations applied successfully")
			return nil
		})
	},
}

var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Rollback migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withMigrationDB(cmd.Context(), func(ctx context.Context, db *sql.DB) error {
			if err := migrations.Down(ctx, db); err != nil {
				return err
			}
			log.Info().Msg("migrations rolled back successfully")
			return nil
		})
	},
}

var migrateStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show migration status",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withMigrationDB(cmd.Context(), func(ctx context.Context, db *sql.DB) error {
			version, dirty, err := migrations.Version(ctx, db)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "version: %d\ndirty: %t\n", version, dirty)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
	migrateCmd.AddCommand(migrateUpCmd, migrateDownCmd, migrateStatusCmd)
}

// withMigrationDB runs fn against a lib/pq connection, the driver golang-migrate's
// postgres backend is built on.
func withMigrationDB(ctx context.Context, fn func(ctx context.Context, db *sql.DB) error) error {
	db, err := openWithRetry(ctx, "postgres", cfg.Database.URL)
	if err != nil {
		return err
	}
	defer db.Close()

	return fn(ctx, db)
}
