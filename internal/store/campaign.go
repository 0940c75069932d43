package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// CreateCampaignParams represents parameters for creating a campaign
type CreateCampaignParams struct {
	Name          string
	Description   string
	CandidateName string
	IsActive      bool
}

const sqlCreateCampaign = `
INSERT INTO campaigns (name, description, candidate_name, is_active, created_at)
VALUES (?, ?, ?, ?, ?)
RETURNING id
`

// CreateCampaign creates a new campaign
func (s *Store) CreateCampaign(ctx context.Context, params CreateCampaignParams) (Campaign, error) {
	var id int64
	err := s.db.GetContext(ctx, &id, s.db.Rebind(sqlCreateCampaign),
		params.Name,
		params.Description,
		params.CandidateName,
		params.IsActive,
		s.now(),
	)
	if err != nil {
		s.logger.Error(ctx, "failed to create campaign", err)
		return Campaign{}, fmt.Errorf("failed to create campaign: %w", err)
	}
	return s.GetCampaignByID(ctx, id)
}

const sqlGetCampaignByID = `
SELECT id, name, description, candidate_name, is_active, created_at
FROM campaigns
WHERE id = ?
`

// GetCampaignByID retrieves a campaign by ID
func (s *Store) GetCampaignByID(ctx context.Context, campaignID int64) (Campaign, error) {
	var campaign Campaign
	err := s.db.GetContext(ctx, &campaign, s.db.Rebind(sqlGetCampaignByID), campaignID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Campaign{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get campaign by id", err)
		return Campaign{}, fmt.Errorf("failed to get campaign by id: %w", err)
	}
	return campaign, nil
}

const sqlListCampaigns = `
SELECT id, name, description, candidate_name, is_active, created_at
FROM campaigns
ORDER BY created_at DESC, id DESC
`

// ListCampaigns returns all campaigns, newest first
func (s *Store) ListCampaigns(ctx context.Context) ([]Campaign, error) {
	campaigns := []Campaign{}
	err := s.db.SelectContext(ctx, &campaigns, sqlListCampaigns)
	if err != nil {
		s.logger.Error(ctx, "failed to list campaigns", err)
		return nil, fmt.Errorf("failed to list campaigns: %w", err)
	}
	return campaigns, nil
}

const sqlCountCampaigns = `SELECT COUNT(*) FROM campaigns`

// CountCampaigns returns the number of campaigns
func (s *Store) CountCampaigns(ctx context.Context) (int, error) {
	var count int
	err := s.db.GetContext(ctx, &count, sqlCountCampaigns)
	if err != nil {
		s.logger.Error(ctx, "failed to count campaigns", err)
		return 0, fmt.Errorf("failed to count campaigns: %w", err)
	}
	return count, nil
}
