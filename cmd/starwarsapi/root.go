package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"starwarsapi/internal/config"
	"starwarsapi/internal/logging"
)

var (
	// Global flags
	dbURL string

	cfg    *config.Config
	logger *logging.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "starwarsapi",
	Short: "Star Wars catalogue REST API",
	Long: `starwarsapi serves a JSON API over users, people, planets and favorites
backed by PostgreSQL.

Configuration is read from the environment, optionally seeded from .env and
config/local.env.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config.LoadEnvFiles()
		if dbURL != "" {
			if err := os.Setenv("DATABASE_URL", dbURL); err != nil {
				return err
			}
		}

		loaded, err := config.Load()
		if err != nil {
			return err
		}
		cfg = loaded

		logger = logging.New(logging.Config{
			Level:  cfg.Logging.Level,
			Format: cfg.Logging.Format,
		})
		logging.SetGlobalLogger(logger)
		logger.Info("starting " + cmd.CommandPath())
		return nil
	},
}

// Execute runs the root command until it finishes or the process is interrupted.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		reportError(err)
		stop()
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbURL, "db", "", "Database connection URL (overrides DATABASE_URL)")
}

// reportError logs a failed command once logging is configured and falls back
// to stderr for failures that happen before that.
func reportError(err error) {
	if logger != nil {
		logger.Error(err, "command failed")
		return
	}
	fmt.Fprintln(os.Stderr, err)
}
