package store

import (
	"context"
	"fmt"
)

const sqlCountPreferencesByCampaign = `
SELECT preference, loyalty_score, COUNT(*) AS total
FROM calls
WHERE campaign_id = ? AND preference IS NOT NULL
GROUP BY preference, loyalty_score
ORDER BY loyalty_score DESC, preference
`

// CountPreferencesByCampaign groups the answered calls of a campaign by
// preference label and loyalty score, strongest support first.
func (s *Store) CountPreferencesByCampaign(ctx context.Context, campaignID int64) ([]PreferenceCount, error) {
	counts := []PreferenceCount{}
	err := s.db.SelectContext(ctx, &counts, s.db.Rebind(sqlCountPreferencesByCampaign), campaignID)
	if err != nil {
		s.logger.Error(ctx, "failed to count preferences by campaign", err)
		return nil, fmt.Errorf("failed to count preferences by campaign: %w", err)
	}
	return counts, nil
}
