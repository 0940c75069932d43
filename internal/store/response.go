package store

import (
	"context"
	"fmt"
)

// RecordAnswerParams holds a classified answer for a call
type RecordAnswerParams struct {
	CallID       int64
	QuestionText string
	AnswerRaw    string
	Preference   string
	LoyaltyScore int
}

const sqlInsertResponse = `
INSERT INTO responses (call_id, question_text, answer_raw, created_at)
VALUES (?, ?, ?, ?)
`

const sqlCompleteCall = `
UPDATE calls
SET preference = ?,
    loyalty_score = ?,
    status = ?,
    ended_at = COALESCE(ended_at, ?),
    updated_at = ?
WHERE id = ?
`

// RecordAnswer appends a response and completes the call with its
// preference and loyalty score in a single transaction.
func (s *Store) RecordAnswer(ctx context.Context, params RecordAnswerParams) (Call, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		s.logger.Error(ctx, "failed to begin transaction", err)
		return Call{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	now := s.now()
	res, err := tx.ExecContext(ctx, tx.Rebind(sqlCompleteCall),
		params.Preference,
		params.LoyaltyScore,
		CallStatusCompleted,
		now,
		now,
		params.CallID,
	)
	if err != nil {
		s.logger.Error(ctx, "failed to complete call", err)
		return Call{}, fmt.Errorf("failed to complete call: %w", err)
	}
	if err := expectRow(res); err != nil {
		return Call{}, err
	}

	_, err = tx.ExecContext(ctx, tx.Rebind(sqlInsertResponse),
		params.CallID,
		params.QuestionText,
		params.AnswerRaw,
		now,
	)
	if err != nil {
		s.logger.Error(ctx, "failed to insert response", err)
		return Call{}, fmt.Errorf("failed to insert response: %w", err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error(ctx, "failed to commit answer", err)
		return Call{}, fmt.Errorf("failed to commit answer: %w", err)
	}
	return s.GetCallByID(ctx, params.CallID)
}

const sqlListResponsesByCall = `
SELECT id, call_id, question_text, answer_raw, created_at
FROM responses
WHERE call_id = ?
ORDER BY created_at, id
`

// ListResponsesByCall returns the responses of a call in recording order
func (s *Store) ListResponsesByCall(ctx context.Context, callID int64) ([]Response, error) {
	responses := []Response{}
	err := s.db.SelectContext(ctx, &responses, s.db.Rebind(sqlListResponsesByCall), callID)
	if err != nil {
		s.logger.Error(ctx, "failed to list responses", err)
		return nil, fmt.Errorf("failed to list responses: %w", err)
	}
	return responses, nil
}

const sqlCountResponsesByCall = `SELECT COUNT(*) FROM responses WHERE call_id = ?`

// CountResponsesByCall returns the number of responses recorded for a call
func (s *Store) CountResponsesByCall(ctx context.Context, callID int64) (int, error) {
	var count int
	err := s.db.GetContext(ctx, &count, s.db.Rebind(sqlCountResponsesByCall), callID)
	if err != nil {
		s.logger.Error(ctx, "failed to count responses", err)
		return 0, fmt.Errorf("failed to count responses: %w", err)
	}
	return count, nil
}
