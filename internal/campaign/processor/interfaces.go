package processor

import (
	"context"

	"survey-dialer/internal/clients/twilio"
	"survey-dialer/internal/store"
)

// CampaignStore defines the database operations required by CampaignProcessor
type CampaignStore interface {
	CreateCampaign(ctx context.Context, params store.CreateCampaignParams) (store.Campaign, error)
	GetCampaignByID(ctx context.Context, campaignID int64) (store.Campaign, error)
	ListCampaigns(ctx context.Context) ([]store.Campaign, error)
	ListContacts(ctx context.Context) ([]store.Contact, error)
	CreateCall(ctx context.Context, campaignID, contactID int64) (store.Call, error)
	MarkCallPlaced(ctx context.Context, callID int64, providerCallSID string) (store.Call, error)
	MarkCallFailed(ctx context.Context, callID int64, providerStatus string) (store.Call, error)
}

// CallPlacer places outbound calls with the telephony provider
type CallPlacer interface {
	CheckConfigured() error
	PlaceCall(ctx context.Context, params twilio.PlaceCallParams) (string, error)
}
