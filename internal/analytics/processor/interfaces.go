package processor

import (
	"context"

	"survey-dialer/internal/store"
)

// AnalyticsStore defines the database operations required by AnalyticsProcessor
type AnalyticsStore interface {
	CountCampaigns(ctx context.Context) (int, error)
	CountContacts(ctx context.Context) (int, error)
	CountCalls(ctx context.Context) (int, error)
	CountCallsByStatus(ctx context.Context, campaignID *int64) ([]store.StatusCount, error)
	GetCampaignByID(ctx context.Context, campaignID int64) (store.Campaign, error)
	GetCallDetail(ctx context.Context, callID int64) (store.CallDetail, error)
	ListCalls(ctx context.Context, params store.ListCallsParams) ([]store.CallDetail, error)
	ListCallsByCampaign(ctx context.Context, campaignID int64) ([]store.CallDetail, error)
	ListResponsesByCall(ctx context.Context, callID int64) ([]store.Response, error)
	CountPreferencesByCampaign(ctx context.Context, campaignID int64) ([]store.PreferenceCount, error)
}
