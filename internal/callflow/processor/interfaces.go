package processor

import (
	"context"

	"survey-dialer/internal/store"
)

// CallFlowStore defines the database operations required by CallFlowProcessor
type CallFlowStore interface {
	GetCallDetail(ctx context.Context, callID int64) (store.CallDetail, error)
	UpdateCall(ctx context.Context, callID int64, params store.UpdateCallParams) (store.Call, error)
	RecordAnswer(ctx context.Context, params store.RecordAnswerParams) (store.Call, error)
}
