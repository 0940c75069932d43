package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"survey-dialer/internal/observability"
	"survey-dialer/internal/store"
)

var (
	ErrCallNotFound = errors.New("call not found")
)

// Outcome describes which branch a voice callback took
type Outcome string

const (
	OutcomeAsked           Outcome = "asked"
	OutcomeRecorded        Outcome = "recorded"
	OutcomeUnusable        Outcome = "unusable"
	OutcomeAlreadyAnswered Outcome = "already_answered"
)

// Callback holds the provider fields of a webhook request. Every field is
// optional.
type Callback struct {
	CallSID    string
	CallStatus string
	Digits     string
	Speech     string
}

// Input returns the interaction carried by the callback
func (c Callback) Input() Input {
	return Input{Digits: c.Digits, Speech: c.Speech}
}

// Reply is the voice document returned to the provider
type Reply struct {
	Outcome Outcome
	TwiML   string
	Call    store.Call
}

type CallFlowProcessor struct {
	store  CallFlowStore
	script Script
	logger *observability.Logger
	now    func() time.Time
}

func New(store CallFlowStore, script Script, logger *observability.Logger) CallFlowProcessor {
	return CallFlowProcessor{
		store:  store,
		script: script,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// HandleVoiceCallback drives one step of the survey for a call. The call is
// re-read on every invocation; no state is kept between callbacks.
func (p *CallFlowProcessor) HandleVoiceCallback(ctx context.Context, callID int64, cb Callback) (Reply, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "call_id", Value: callID})

	detail, err := p.loadCall(ctx, callID)
	if err != nil {
		return Reply{}, err
	}

	detail, err = p.applyMetadata(ctx, detail, cb, voiceTransitions)
	if err != nil {
		return Reply{}, err
	}

	in := cb.Input()
	if detail.ResponseCount == 0 && !in.HasInteraction() {
		doc, err := p.script.Ask(detail.ID, detail.CandidateName)
		if err != nil {
			p.logger.Error(ctx, "failed to render question", err)
			return Reply{}, fmt.Errorf("failed to render question: %w", err)
		}
		return Reply{Outcome: OutcomeAsked, TwiML: doc, Call: detail.Call}, nil
	}

	if detail.ResponseCount > 0 && detail.IsAnswered() {
		p.logger.Info(ctx, "answer already recorded, closing call")
		return p.close(ctx, OutcomeAlreadyAnswered, detail.Call)
	}

	classification := Classify(detail.CandidateName, in)
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "answer_kind", Value: string(classification.Kind)},
		observability.Field{Key: "answer_source", Value: string(classification.Source)},
	)

	if !classification.Usable() {
		if classification.Preference != nil {
			ctx = observability.WithFields(ctx, observability.Field{Key: "answer_label", Value: *classification.Preference})
		}
		p.logger.Warn(ctx, "no usable answer received")
		return p.close(ctx, OutcomeUnusable, detail.Call)
	}

	call, err := p.store.RecordAnswer(ctx, store.RecordAnswerParams{
		CallID:       detail.ID,
		QuestionText: QuestionText,
		AnswerRaw:    classification.AnswerRaw,
		Preference:   *classification.Preference,
		LoyaltyScore: *classification.LoyaltyScore,
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return Reply{}, ErrCallNotFound
		}
		p.logger.Error(ctx, "failed to record answer", err)
		return Reply{}, fmt.Errorf("failed to record answer: %w", err)
	}

	p.logger.Info(ctx, "answer recorded")
	return p.close(ctx, OutcomeRecorded, call)
}

// HandleStatusCallback records provider metadata for a call without
// touching the survey flow.
func (p *CallFlowProcessor) HandleStatusCallback(ctx context.Context, callID int64, cb Callback) (store.Call, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "call_id", Value: callID},
		observability.Field{Key: "provider_status", Value: cb.CallStatus},
	)

	detail, err := p.loadCall(ctx, callID)
	if err != nil {
		return store.Call{}, err
	}

	detail, err = p.applyMetadata(ctx, detail, cb, statusTransitions)
	if err != nil {
		return store.Call{}, err
	}
	return detail.Call, nil
}

func (p *CallFlowProcessor) loadCall(ctx context.Context, callID int64) (store.CallDetail, error) {
	detail, err := p.store.GetCallDetail(ctx, callID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.CallDetail{}, ErrCallNotFound
		}
		p.logger.Error(ctx, "failed to get call", err)
		return store.CallDetail{}, fmt.Errorf("failed to get call: %w", err)
	}
	return detail, nil
}

// transitionSet selects which lifecycle moves a callback may apply.
type transitionSet int

const (
	// voiceTransitions only closes a call. Twilio reports in-progress on
	// every voice webhook, which must not move the call off calling.
	voiceTransitions transitionSet = iota
	// statusTransitions applies the full provider status mapping.
	statusTransitions
)

// applyMetadata records the provider SID and status. It is idempotent so
// duplicate provider callbacks are harmless.
func (p *CallFlowProcessor) applyMetadata(ctx context.Context, detail store.CallDetail, cb Callback, allowed transitionSet) (store.CallDetail, error) {
	var (
		params  store.UpdateCallParams
		changed bool
	)

	if cb.CallSID != "" && detail.ProviderCallSID == "" {
		params.ProviderCallSID = cb.CallSID
		changed = true
	}

	if cb.CallStatus != "" {
		providerStatus := cb.CallStatus
		params.LastProviderStatus = &providerStatus
		changed = true

		next, ok := lifecycleStatus(providerStatus)
		if ok && allowed == voiceTransitions && next != store.CallStatusCompleted {
			ok = false
		}
		if ok && store.CanTransitionCallStatus(detail.Status, next) {
			params.Status = &next
			if next == store.CallStatusCompleted {
				endedAt := p.now()
				params.EndedAt = &endedAt
			}
		}
	}

	if !changed {
		return detail, nil
	}

	call, err := p.store.UpdateCall(ctx, detail.ID, params)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.CallDetail{}, ErrCallNotFound
		}
		p.logger.Error(ctx, "failed to update call metadata", err)
		return store.CallDetail{}, fmt.Errorf("failed to update call metadata: %w", err)
	}
	detail.Call = call
	return detail, nil
}

func (p *CallFlowProcessor) close(ctx context.Context, outcome Outcome, call store.Call) (Reply, error) {
	render := p.script.Thanks
	if outcome == OutcomeUnusable {
		render = p.script.InvalidAnswer
	}
	doc, err := render()
	if err != nil {
		p.logger.Error(ctx, "failed to render closing message", err)
		return Reply{}, fmt.Errorf("failed to render closing message: %w", err)
	}
	return Reply{Outcome: outcome, TwiML: doc, Call: call}, nil
}

// lifecycleStatus maps a provider call status to the call lifecycle
func lifecycleStatus(providerStatus string) (string, bool) {
	switch strings.ToLower(providerStatus) {
	case "in-progress", "answered":
		return store.CallStatusAnswered, true
	case "busy", "no-answer", "failed", "canceled":
		return store.CallStatusFailed, true
	case "completed":
		return store.CallStatusCompleted, true
	default:
		return "", false
	}
}
