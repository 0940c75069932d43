package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"
)

const sqlCreateCall = `
INSERT INTO calls (campaign_id, contact_id, status, created_at, updated_at)
VALUES (?, ?, ?, ?, ?)
RETURNING id
`

// CreateCall creates a pending call for a campaign and contact
func (s *Store) CreateCall(ctx context.Context, campaignID, contactID int64) (Call, error) {
	now := s.now()
	var id int64
	err := s.db.GetContext(ctx, &id, s.db.Rebind(sqlCreateCall),
		campaignID,
		contactID,
		CallStatusPending,
		now,
		now,
	)
	if err != nil {
		s.logger.Error(ctx, "failed to create call", err)
		return Call{}, fmt.Errorf("failed to create call: %w", err)
	}
	return s.GetCallByID(ctx, id)
}

const sqlGetCallByID = `
SELECT id, campaign_id, contact_id, status, provider_call_sid, started_at, ended_at,
       preference, loyalty_score, last_provider_status, created_at, updated_at
FROM calls
WHERE id = ?
`

// GetCallByID retrieves a call by ID
func (s *Store) GetCallByID(ctx context.Context, callID int64) (Call, error) {
	var call Call
	err := s.db.GetContext(ctx, &call, s.db.Rebind(sqlGetCallByID), callID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Call{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get call by id", err)
		return Call{}, fmt.Errorf("failed to get call by id: %w", err)
	}
	return call, nil
}

const sqlSelectCallDetail = `
SELECT c.id, c.campaign_id, c.contact_id, c.status, c.provider_call_sid, c.started_at, c.ended_at,
       c.preference, c.loyalty_score, c.last_provider_status, c.created_at, c.updated_at,
       cp.name AS campaign_name,
       cp.candidate_name AS candidate_name,
       ct.name AS contact_name,
       ct.phone_number AS contact_phone,
       (SELECT COUNT(*) FROM responses r WHERE r.call_id = c.id) AS response_count
FROM calls c
JOIN campaigns cp ON cp.id = c.campaign_id
JOIN contacts ct ON ct.id = c.contact_id
`

// GetCallDetail retrieves a call with its campaign, contact and response count
func (s *Store) GetCallDetail(ctx context.Context, callID int64) (CallDetail, error) {
	var detail CallDetail
	query := s.db.Rebind(sqlSelectCallDetail + "WHERE c.id = ?")
	err := s.db.GetContext(ctx, &detail, query, callID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return CallDetail{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get call detail", err)
		return CallDetail{}, fmt.Errorf("failed to get call detail: %w", err)
	}
	return detail, nil
}

// UpdateCallParams represents a partial call update. Nil fields are left
// unchanged; an empty ProviderCallSID is ignored.
type UpdateCallParams struct {
	ProviderCallSID    string
	Status             *string
	LastProviderStatus *string
	StartedAt          *time.Time
	EndedAt            *time.Time
}

const sqlUpdateCall = `
UPDATE calls
SET provider_call_sid = CASE WHEN provider_call_sid = '' THEN ? ELSE provider_call_sid END,
    status = CASE WHEN ? > ` + sqlCallStatusRank + ` THEN ? ELSE status END,
    last_provider_status = COALESCE(?, last_provider_status),
    started_at = COALESCE(started_at, ?),
    ended_at = COALESCE(ended_at, ?),
    updated_at = ?
WHERE id = ?
`

// sqlCallStatusRank mirrors callStatusRank so the forward-only rule holds
// even when callbacks race with the launcher.
const sqlCallStatusRank = `(CASE status WHEN 'pending' THEN 0 WHEN 'calling' THEN 1 WHEN 'answered' THEN 2 WHEN 'failed' THEN 2 ELSE 3 END)`

// UpdateCall applies a partial update. The provider SID is only written
// while the call has none, status only moves forward and timestamps are
// never overwritten once set.
func (s *Store) UpdateCall(ctx context.Context, callID int64, params UpdateCallParams) (Call, error) {
	statusRank, status := -1, ""
	if params.Status != nil {
		rank, ok := callStatusRank[*params.Status]
		if !ok {
			return Call{}, fmt.Errorf("%w: %s", ErrInvalidCallStatus, *params.Status)
		}
		statusRank, status = rank, *params.Status
	}

	res, err := s.db.ExecContext(ctx, s.db.Rebind(sqlUpdateCall),
		params.ProviderCallSID,
		statusRank,
		status,
		params.LastProviderStatus,
		params.StartedAt,
		params.EndedAt,
		s.now(),
		callID,
	)
	if err != nil {
		s.logger.Error(ctx, "failed to update call", err)
		return Call{}, fmt.Errorf("failed to update call: %w", err)
	}
	if err := expectRow(res); err != nil {
		return Call{}, err
	}
	return s.GetCallByID(ctx, callID)
}

// MarkCallPlaced records a successful placement: the provider SID, the
// calling status and the start time.
func (s *Store) MarkCallPlaced(ctx context.Context, callID int64, providerCallSID string) (Call, error) {
	status := CallStatusCalling
	startedAt := s.now()
	return s.UpdateCall(ctx, callID, UpdateCallParams{
		ProviderCallSID: providerCallSID,
		Status:          &status,
		StartedAt:       &startedAt,
	})
}

// MarkCallFailed records a rejected placement
func (s *Store) MarkCallFailed(ctx context.Context, callID int64, providerStatus string) (Call, error) {
	status := CallStatusFailed
	return s.UpdateCall(ctx, callID, UpdateCallParams{
		Status:             &status,
		LastProviderStatus: &providerStatus,
	})
}

// ListCallsParams filters a call listing. Zero values disable a filter and
// a zero Limit returns every matching call.
type ListCallsParams struct {
	Status     string
	CampaignID *int64
	Limit      int
}

// ListCalls returns calls joined with campaign and contact, newest first
func (s *Store) ListCalls(ctx context.Context, params ListCallsParams) ([]CallDetail, error) {
	var (
		where []string
		args  []interface{}
	)
	if params.Status != "" {
		where = append(where, "c.status = ?")
		args = append(args, params.Status)
	}
	if params.CampaignID != nil {
		where = append(where, "c.campaign_id = ?")
		args = append(args, *params.CampaignID)
	}

	query := sqlSelectCallDetail
	if len(where) > 0 {
		query += "WHERE " + strings.Join(where, " AND ") + "\n"
	}
	query += "ORDER BY c.created_at DESC, c.id DESC"
	if params.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, params.Limit)
	}

	calls := []CallDetail{}
	err := s.db.SelectContext(ctx, &calls, s.db.Rebind(query), args...)
	if err != nil {
		s.logger.Error(ctx, "failed to list calls", err)
		return nil, fmt.Errorf("failed to list calls: %w", err)
	}
	return calls, nil
}

// ListCallsByCampaign returns every call of a campaign, newest first
func (s *Store) ListCallsByCampaign(ctx context.Context, campaignID int64) ([]CallDetail, error) {
	return s.ListCalls(ctx, ListCallsParams{CampaignID: &campaignID})
}

const sqlCountCalls = `SELECT COUNT(*) FROM calls`

// CountCalls returns the number of calls
func (s *Store) CountCalls(ctx context.Context) (int, error) {
	var count int
	err := s.db.GetContext(ctx, &count, sqlCountCalls)
	if err != nil {
		s.logger.Error(ctx, "failed to count calls", err)
		return 0, fmt.Errorf("failed to count calls: %w", err)
	}
	return count, nil
}

// CountCallsByStatus groups calls by status, optionally for one campaign
func (s *Store) CountCallsByStatus(ctx context.Context, campaignID *int64) ([]StatusCount, error) {
	query := "SELECT status, COUNT(*) AS total FROM calls"
	var args []interface{}
	if campaignID != nil {
		query += " WHERE campaign_id = ?"
		args = append(args, *campaignID)
	}
	query += " GROUP BY status ORDER BY status"

	counts := []StatusCount{}
	err := s.db.SelectContext(ctx, &counts, s.db.Rebind(query), args...)
	if err != nil {
		s.logger.Error(ctx, "failed to count calls by status", err)
		return nil, fmt.Errorf("failed to count calls by status: %w", err)
	}
	return counts, nil
}

func expectRow(res sql.Result) error {
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}
