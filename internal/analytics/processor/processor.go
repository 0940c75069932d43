package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"
	"fmt"

	"survey-dialer/internal/observability"
	"survey-dialer/internal/store"
)

var (
	ErrCampaignNotFound  = errors.New("campaign not found")
	ErrCallNotFound      = errors.New("call not found")
	ErrInvalidCallStatus = errors.New("invalid call status")
)

// DefaultCallLimit caps a call listing when no limit is requested
const DefaultCallLimit = 200

// MaxCallLimit is the largest listing a caller may request
const MaxCallLimit = 1000

type AnalyticsProcessor struct {
	store  AnalyticsStore
	logger *observability.Logger
}

func New(store AnalyticsStore, logger *observability.Logger) AnalyticsProcessor {
	return AnalyticsProcessor{
		store:  store,
		logger: logger,
	}
}

// Dashboard holds global counters
type Dashboard struct {
	Campaigns     int                 `json:"campaigns"`
	Contacts      int                 `json:"contacts"`
	Calls         int                 `json:"calls"`
	CallsByStatus []store.StatusCount `json:"calls_by_status"`
}

// CampaignReport is the campaign detail view
type CampaignReport struct {
	Campaign      store.Campaign          `json:"campaign"`
	Calls         []store.CallDetail      `json:"calls"`
	CallsByStatus []store.StatusCount     `json:"calls_by_status"`
	Preferences   []store.PreferenceCount `json:"preferences"`
}

// CallReport is a call with every answer recorded during it
type CallReport struct {
	store.CallDetail
	Responses []store.Response `json:"responses"`
}

// ListCallsParams filters a call listing
type ListCallsParams struct {
	Status     string
	CampaignID *int64
	Limit      int
}

// GetDashboard returns global campaign, contact and call counts
func (p *AnalyticsProcessor) GetDashboard(ctx context.Context) (Dashboard, error) {
	campaigns, err := p.store.CountCampaigns(ctx)
	if err != nil {
		p.logger.Error(ctx, "failed to count campaigns", err)
		return Dashboard{}, fmt.Errorf("failed to count campaigns: %w", err)
	}
	contacts, err := p.store.CountContacts(ctx)
	if err != nil {
		p.logger.Error(ctx, "failed to count contacts", err)
		return Dashboard{}, fmt.Errorf("failed to count contacts: %w", err)
	}
	calls, err := p.store.CountCalls(ctx)
	if err != nil {
		p.logger.Error(ctx, "failed to count calls", err)
		return Dashboard{}, fmt.Errorf("failed to count calls: %w", err)
	}
	byStatus, err := p.store.CountCallsByStatus(ctx, nil)
	if err != nil {
		p.logger.Error(ctx, "failed to count calls by status", err)
		return Dashboard{}, fmt.Errorf("failed to count calls by status: %w", err)
	}

	return Dashboard{
		Campaigns:     campaigns,
		Contacts:      contacts,
		Calls:         calls,
		CallsByStatus: nonNil(byStatus),
	}, nil
}

// ListCalls returns the newest calls matching the filters. A zero limit
// means DefaultCallLimit and larger limits are capped at MaxCallLimit.
func (p *AnalyticsProcessor) ListCalls(ctx context.Context, params ListCallsParams) ([]store.CallDetail, error) {
	if params.Status != "" && !store.IsValidCallStatus(params.Status) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidCallStatus, params.Status)
	}

	limit := params.Limit
	switch {
	case limit <= 0:
		limit = DefaultCallLimit
	case limit > MaxCallLimit:
		limit = MaxCallLimit
	}

	if params.CampaignID != nil {
		ctx = observability.WithFields(ctx, observability.Field{Key: "campaign_id", Value: *params.CampaignID})
	}

	calls, err := p.store.ListCalls(ctx, store.ListCallsParams{
		Status:     params.Status,
		CampaignID: params.CampaignID,
		Limit:      limit,
	})
	if err != nil {
		p.logger.Error(ctx, "failed to list calls", err)
		return nil, fmt.Errorf("failed to list calls: %w", err)
	}
	return nonNil(calls), nil
}

// GetCampaignReport returns a campaign with its calls and aggregates
func (p *AnalyticsProcessor) GetCampaignReport(ctx context.Context, campaignID int64) (CampaignReport, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "campaign_id", Value: campaignID})

	campaign, err := p.store.GetCampaignByID(ctx, campaignID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return CampaignReport{}, ErrCampaignNotFound
		}
		p.logger.Error(ctx, "failed to get campaign", err)
		return CampaignReport{}, fmt.Errorf("failed to get campaign: %w", err)
	}

	calls, err := p.store.ListCallsByCampaign(ctx, campaignID)
	if err != nil {
		p.logger.Error(ctx, "failed to list campaign calls", err)
		return CampaignReport{}, fmt.Errorf("failed to list campaign calls: %w", err)
	}

	byStatus, err := p.store.CountCallsByStatus(ctx, &campaignID)
	if err != nil {
		p.logger.Error(ctx, "failed to count campaign calls by status", err)
		return CampaignReport{}, fmt.Errorf("failed to count campaign calls by status: %w", err)
	}

	preferences, err := p.store.CountPreferencesByCampaign(ctx, campaignID)
	if err != nil {
		p.logger.Error(ctx, "failed to count campaign preferences", err)
		return CampaignReport{}, fmt.Errorf("failed to count campaign preferences: %w", err)
	}

	return CampaignReport{
		Campaign:      campaign,
		Calls:         nonNil(calls),
		CallsByStatus: nonNil(byStatus),
		Preferences:   nonNil(preferences),
	}, nil
}

// GetCallReport returns one call with its recorded responses
func (p *AnalyticsProcessor) GetCallReport(ctx context.Context, callID int64) (CallReport, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "call_id", Value: callID})

	detail, err := p.store.GetCallDetail(ctx, callID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return CallReport{}, ErrCallNotFound
		}
		p.logger.Error(ctx, "failed to get call", err)
		return CallReport{}, fmt.Errorf("failed to get call: %w", err)
	}

	responses, err := p.store.ListResponsesByCall(ctx, callID)
	if err != nil {
		p.logger.Error(ctx, "failed to list call responses", err)
		return CallReport{}, fmt.Errorf("failed to list call responses: %w", err)
	}

	return CallReport{CallDetail: detail, Responses: nonNil(responses)}, nil
}

// nonNil keeps empty collections rendering as [] rather than null
func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
