package bootstrap

import (
	"context"
	"fmt"
	"strings"

	"survey-dialer/internal/apierrors"
	"survey-dialer/internal/config"
	"survey-dialer/internal/observability"
	"survey-dialer/internal/store"

	analyticsHandler "survey-dialer/internal/analytics/handler"
	analyticsProcessor "survey-dialer/internal/analytics/processor"
	callflowHandler "survey-dialer/internal/callflow/handler"
	callflowProcessor "survey-dialer/internal/callflow/processor"
	campaignHandler "survey-dialer/internal/campaign/handler"
	campaignProcessor "survey-dialer/internal/campaign/processor"
	"survey-dialer/internal/clients/twilio"
	contactHandler "survey-dialer/internal/contact/handler"
	contactProcessor "survey-dialer/internal/contact/processor"

	"github.com/gin-gonic/gin"
)

// Telephony places calls and authenticates the provider's webhooks
type Telephony interface {
	campaignProcessor.CallPlacer
	callflowHandler.WebhookValidator
}

// Dependencies holds all initialized application dependencies
type Dependencies struct {
	// Core
	Store     store.Store
	Logger    *observability.Logger
	Telephony Telephony

	// Handlers
	AnalyticsHandler analyticsHandler.Handler
	CampaignHandler  campaignHandler.Handler
	ContactHandler   contactHandler.Handler
	CallFlowHandler  callflowHandler.Handler

	// WebhookGuards run before the provider webhooks
	WebhookGuards []gin.HandlerFunc
}

// Initialize sets up all application dependencies
func Initialize(ctx context.Context, cfg *config.Config, logger *observability.Logger) (*Dependencies, error) {
	// Initialize database store
	dataStore, err := store.New(cfg.Database.Driver, cfg.Database.DataSourceName(), logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := dataStore.Ping(ctx); err != nil {
		dataStore.Close()
		return nil, fmt.Errorf("failed to reach database: %w", err)
	}

	// SQLite databases are local files, so they are always brought up to date
	if cfg.Database.AutoMigrate || cfg.Database.Driver == config.DriverSQLite {
		if err := dataStore.Migrate(ctx); err != nil {
			dataStore.Close()
			return nil, fmt.Errorf("failed to migrate database: %w", err)
		}
	}

	// Initialize clients
	if missing := cfg.Twilio.MissingCredentials(); len(missing) > 0 {
		logger.Warn(ctx, fmt.Sprintf("Twilio is not configured, campaign launches will fail until %s are set", strings.Join(missing, ", ")))
	}
	twilioClient := twilio.NewClient(twilio.Config{
		AccountSID: cfg.Twilio.AccountSID,
		AuthToken:  cfg.Twilio.AuthToken,
		FromNumber: cfg.Twilio.FromNumber,
	}, logger)

	return Wire(cfg, dataStore, twilioClient, logger), nil
}

// Wire builds processors and handlers on top of an open store
func Wire(cfg *config.Config, dataStore store.Store, telephony Telephony, logger *observability.Logger) *Dependencies {
	apierrors.SetLogger(logger)

	deps := &Dependencies{
		Store:     dataStore,
		Logger:    logger,
		Telephony: telephony,
	}

	// Initialize call flow processor and handler
	script := callflowProcessor.Script{
		Language:      cfg.Survey.Language,
		GatherTimeout: cfg.Survey.GatherTimeout,
	}
	callFlowProc := callflowProcessor.New(&deps.Store, script, logger)
	deps.CallFlowHandler = callflowHandler.New(callFlowProc, logger)

	if cfg.Twilio.ValidateWebhooks {
		deps.WebhookGuards = append(deps.WebhookGuards,
			callflowHandler.SignatureMiddleware(telephony, cfg.Server.PublicBaseURL, logger))
	}

	// Initialize campaign processor and handler
	launch := campaignProcessor.LaunchConfig{
		Workers: cfg.Dispatch.Workers,
		Timeout: cfg.Dispatch.Timeout,
	}
	campaignProc := campaignProcessor.New(&deps.Store, telephony, launch, logger)
	deps.CampaignHandler = campaignHandler.New(campaignProc, cfg.Server.PublicBaseURL, logger)

	// Initialize contact processor and handler
	contactProc := contactProcessor.New(&deps.Store, logger)
	deps.ContactHandler = contactHandler.New(contactProc, logger)

	// Initialize analytics processor and handler
	analyticsProc := analyticsProcessor.New(&deps.Store, logger)
	deps.AnalyticsHandler = analyticsHandler.New(analyticsProc, logger)

	return deps
}

// Cleanup closes all resources that need cleanup
func (d *Dependencies) Cleanup() {
	if err := d.Store.Close(); err != nil {
		d.Logger.Error(context.Background(), "failed to close database", err)
	}
}
