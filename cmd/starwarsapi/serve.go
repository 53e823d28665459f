package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"starwarsapi/internal/store"
	"starwarsapi/migrations"
)

var (
	// Serve flags
	autoMigrate bool
	seedDemo    bool
)

// serveCmd starts the HTTP API
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	Long: `Open the database, optionally apply migrations and seed demo data, then
serve the JSON API until SIGINT or SIGTERM.

Examples:
  starwarsapi serve
  starwarsapi serve --migrate --seed`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context(), cmd.Flags().Changed("migrate"), cmd.Flags().Changed("seed"))
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().BoolVar(&autoMigrate, "migrate", false, "Apply pending migrations before serving (AUTO_MIGRATE)")
	serveCmd.Flags().BoolVar(&seedDemo, "seed", false, "Insert demo data into empty tables (SEED_DEMO_DATA)")
}

func runServe(ctx context.Context, migrateSet, seedSet bool) error {
	if migrateSet {
		cfg.AutoMigrate = autoMigrate
	}
	if seedSet {
		cfg.SeedDemoData = seedDemo
	}

	db, err := openDatabase(ctx, cfg.Database.URL)
	if err != nil {
		return err
	}
	defer db.Close()

	if cfg.AutoMigrate {
		if err := migrations.Up(ctx, db); err != nil {
			return err
		}
		log.Info().Msg("migrations applied")
	}

	dataStore := store.New(db)

	if cfg.SeedDemoData {
		if err := seedDemoData(ctx, dataStore); err != nil {
			return err
		}
	}

	server := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           newHTTPHandler(cfg, dataStore),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Info().Str("addr", server.Addr).Msg("API listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info().Msg("server exited")
	return nil
}
