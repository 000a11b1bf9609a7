// Command migrate applies the embedded schema migrations and exits. It reads
// the same DB_* and LOG_* variables as the API server.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"favkart/internal/config"
	"favkart/internal/database"

	"github.com/caarlos0/env/v11"
)

type migrateConfig struct {
	Database config.DatabaseConfig `envPrefix:"DB_"`
	Logger   config.LoggerConfig   `envPrefix:"LOG_"`
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var cfg migrateConfig
	if err := env.Parse(&cfg); err != nil {
		return fmt.Errorf("failed to parse environment: %w", err)
	}

	logger := config.NewLogger(cfg.Logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := database.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer pool.Close()

	if err := database.Migrate(ctx, pool, logger); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	logger.Info().Str("database", cfg.Database.Database).Msg("migrations applied")
	return nil
}
