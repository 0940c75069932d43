package main

import (
	"context"
	"log"

	"survey-dialer/internal/config"
	"survey-dialer/internal/observability"
	"survey-dialer/internal/store"
)

// migrate applies pending schema migrations and exits. It is meant for
// Postgres deployments that run with DB_AUTO_MIGRATE disabled.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %s", err)
	}

	logger, err := observability.NewLoggerAtLevel(cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to create logger: %s", err)
	}
	defer logger.Sync()
	ctx := context.Background()

	dataStore, err := store.New(cfg.Database.Driver, cfg.Database.DataSourceName(), logger)
	if err != nil {
		logger.Fatal(ctx, "failed to connect to database", err)
	}
	defer dataStore.Close()

	if err := dataStore.Migrate(ctx); err != nil {
		logger.Fatal(ctx, "failed to migrate database", err)
	}
	logger.Info(ctx, "database schema is up to date")
}
