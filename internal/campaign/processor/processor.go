package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"survey-dialer/internal/observability"
	"survey-dialer/internal/store"
)

var (
	ErrCampaignNotFound      = errors.New("campaign not found")
	ErrCampaignInactive      = errors.New("campaign is not active")
	ErrProviderNotConfigured = errors.New("telephony provider is not configured")
	ErrPlacementFailed       = errors.New("call placement failed")
)

type CampaignProcessor struct {
	store  CampaignStore
	placer CallPlacer
	launch LaunchConfig
	logger *observability.Logger
}

func New(store CampaignStore, placer CallPlacer, launch LaunchConfig, logger *observability.Logger) CampaignProcessor {
	return CampaignProcessor{
		store:  store,
		placer: placer,
		launch: launch,
		logger: logger,
	}
}

// CreateCampaignParams represents parameters for creating a campaign
type CreateCampaignParams struct {
	Name          string
	Description   string
	CandidateName string
	IsActive      bool
}

// CreateCampaign creates a new campaign
func (p *CampaignProcessor) CreateCampaign(ctx context.Context, params CreateCampaignParams) (store.Campaign, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "campaign_name", Value: params.Name})

	campaign, err := p.store.CreateCampaign(ctx, store.CreateCampaignParams{
		Name:          strings.TrimSpace(params.Name),
		Description:   strings.TrimSpace(params.Description),
		CandidateName: strings.TrimSpace(params.CandidateName),
		IsActive:      params.IsActive,
	})
	if err != nil {
		p.logger.Error(ctx, "failed to create campaign", err)
		return store.Campaign{}, fmt.Errorf("failed to create campaign: %w", err)
	}
	return campaign, nil
}

// GetCampaign retrieves a campaign by ID
func (p *CampaignProcessor) GetCampaign(ctx context.Context, campaignID int64) (store.Campaign, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "campaign_id", Value: campaignID})

	campaign, err := p.store.GetCampaignByID(ctx, campaignID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Campaign{}, ErrCampaignNotFound
		}
		p.logger.Error(ctx, "failed to get campaign", err)
		return store.Campaign{}, fmt.Errorf("failed to get campaign: %w", err)
	}
	return campaign, nil
}

// ListCampaigns returns all campaigns, newest first
func (p *CampaignProcessor) ListCampaigns(ctx context.Context) ([]store.Campaign, error) {
	campaigns, err := p.store.ListCampaigns(ctx)
	if err != nil {
		p.logger.Error(ctx, "failed to list campaigns", err)
		return nil, fmt.Errorf("failed to list campaigns: %w", err)
	}
	return campaigns, nil
}
