package main

import (
	"context"
	"log"

	"survey-dialer/internal/bootstrap"
	"survey-dialer/internal/config"
	"survey-dialer/internal/observability"
	"survey-dialer/internal/server"

	"github.com/gin-gonic/gin"
)

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

	gin.SetMode(gin.ReleaseMode)

	deps, err := bootstrap.Initialize(ctx, cfg, logger)
	if err != nil {
		logger.Fatal(ctx, "failed to initialize dependencies", err)
	}

	srv := server.New(cfg, deps, logger)
	srv.Setup()
	if err := srv.Start(ctx); err != nil {
		logger.Fatal(ctx, "failed to start server", err)
	}

	if err := srv.WaitForShutdown(ctx); err != nil {
		logger.Fatal(ctx, "failed to shut down server", err)
	}
}
