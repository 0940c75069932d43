package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	apisetup "survey-dialer/internal/api"
	"survey-dialer/internal/bootstrap"
	"survey-dialer/internal/config"
	"survey-dialer/internal/observability"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Server owns the HTTP listener for the dialer API and webhooks.
type Server struct {
	httpServer *http.Server
	router     *gin.Engine
	deps       *bootstrap.Dependencies
	config     *config.Config
	logger     *observability.Logger
}

func New(cfg *config.Config, deps *bootstrap.Dependencies, logger *observability.Logger) *Server {
	return &Server{
		config: cfg,
		deps:   deps,
		logger: logger,
	}
}

// Setup builds the gin engine, its middleware chain and every route.
func (s *Server) Setup() {
	s.router = gin.New()
	s.router.Use(cors.New(corsConfig(s.config.Server.AllowedOrigins)))
	s.router.Use(observability.Middleware(s.logger))

	api := apisetup.New(
		s.router.Group("/"),
		s.deps.AnalyticsHandler,
		s.deps.CampaignHandler,
		s.deps.ContactHandler,
		s.deps.CallFlowHandler,
	)
	api.WithWebhookGuards(s.deps.WebhookGuards...)
	api.WithHealthCheck(func(c *gin.Context) error {
		return s.deps.Store.Ping(c.Request.Context())
	})
	api.RegisterRoutes()
}

// corsConfig opens the API to the admin front-end. Without configured
// origins a local front-end is allowed in development and any origin in
// production.
func corsConfig(origins []string) cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowMethods = []string{http.MethodGet, http.MethodPost, http.MethodOptions}
	cfg.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "X-Request-ID"}

	switch {
	case len(origins) > 0:
		cfg.AllowOrigins = origins
	case os.Getenv("GO_ENV") != "production":
		cfg.AllowOrigins = []string{"http://localhost:3000"}
	default:
		cfg.AllowAllOrigins = true
	}
	return cfg
}

// Router returns the configured gin engine. Setup must be called first.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Start listens in the background. A listener failure exits the process.
func (s *Server) Start(ctx context.Context) error {
	if s.router == nil {
		return errors.New("server is not set up")
	}

	s.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", s.config.Server.Port),
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		s.logger.Info(ctx, fmt.Sprintf("survey dialer listening on :%d", s.config.Server.Port))
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error(ctx, "http listener stopped", err)
			os.Exit(1)
		}
	}()

	return nil
}

// WaitForShutdown blocks until SIGINT or SIGTERM, gives in-flight
// requests five seconds to finish and then releases dependencies.
func (s *Server) WaitForShutdown(ctx context.Context) error {
	sigCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-sigCtx.Done()
	s.logger.Info(ctx, "shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down http server: %w", err)
	}

	s.deps.Cleanup()
	s.logger.Info(ctx, "server stopped")
	return nil
}
