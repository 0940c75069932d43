package processor

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	callflow "survey-dialer/internal/callflow/processor"
	"survey-dialer/internal/clients/twilio"
	"survey-dialer/internal/observability"
	"survey-dialer/internal/store"
	"survey-dialer/internal/workers"
)

// LaunchConfig bounds the dispatch of a campaign launch
type LaunchConfig struct {
	Workers int
	Timeout time.Duration
}

// LaunchFailure describes one contact whose call could not be placed
type LaunchFailure struct {
	ContactID   int64  `json:"contact_id"`
	PhoneNumber string `json:"phone_number"`
	CallID      int64  `json:"call_id,omitempty"`
	Reason      string `json:"reason"`
}

// LaunchResult summarizes a campaign launch. Unfinished counts contacts
// not dialed, or interrupted, when the launch timeout expired.
type LaunchResult struct {
	CampaignID int64           `json:"campaign_id"`
	Total      int             `json:"total"`
	Placed     int             `json:"placed"`
	Failed     []LaunchFailure `json:"failed"`
	Unfinished int             `json:"unfinished"`
}

// LaunchCampaign creates a pending call for every contact and places it.
// A rejected placement marks that call failed and the batch continues.
// Provider configuration is checked before any call is created.
func (p *CampaignProcessor) LaunchCampaign(ctx context.Context, campaignID int64, baseURL string) (LaunchResult, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "campaign_id", Value: campaignID})

	campaign, err := p.GetCampaign(ctx, campaignID)
	if err != nil {
		return LaunchResult{}, err
	}
	if !campaign.IsActive {
		return LaunchResult{}, ErrCampaignInactive
	}

	if err := p.placer.CheckConfigured(); err != nil {
		p.logger.Warn(ctx, "refusing to launch campaign without provider configuration")
		return LaunchResult{}, fmt.Errorf("%w: %v", ErrProviderNotConfigured, err)
	}

	contacts, err := p.store.ListContacts(ctx)
	if err != nil {
		p.logger.Error(ctx, "failed to list contacts", err)
		return LaunchResult{}, fmt.Errorf("failed to list contacts: %w", err)
	}

	collector := &launchCollector{result: LaunchResult{CampaignID: campaignID, Total: len(contacts), Failed: []LaunchFailure{}}}
	if len(contacts) == 0 {
		return collector.snapshot(), nil
	}

	// Dialing continues if the operator's request is cancelled; Timeout bounds it.
	launchCtx := context.WithoutCancel(ctx)

	pool := workers.NewWorkerPool[*dialTask](workers.WorkerPoolConfig[*dialTask]{
		NumWorkers:   p.launch.Workers,
		QueueSize:    len(contacts),
		DrainTimeout: p.launch.Timeout,
		OnResult:     collector.record,
	}, &dialer{
		store:   p.store,
		placer:  p.placer,
		baseURL: strings.TrimRight(baseURL, "/"),
	}, p.logger)

	if err := pool.Start(launchCtx); err != nil {
		return LaunchResult{}, fmt.Errorf("failed to start dialer: %w", err)
	}
	for _, contact := range contacts {
		task := &dialTask{CampaignID: campaignID, Contact: contact}
		if err := pool.Submit(launchCtx, task); err != nil {
			collector.record(workers.ProcessingResult[*dialTask]{Task: task, Error: err})
		}
	}
	if err := pool.Drain(launchCtx); err != nil {
		if !errors.Is(err, workers.ErrDrainTimeout) {
			return collector.snapshot(), fmt.Errorf("failed to drain dialer: %w", err)
		}
		p.logger.WarnWithError(ctx, "campaign launch timed out before every contact was dialed", err)
	}

	result := collector.snapshot()
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "placed", Value: result.Placed},
		observability.Field{Key: "failed", Value: len(result.Failed)},
		observability.Field{Key: "unfinished", Value: result.Unfinished},
	)
	p.logger.Info(ctx, "campaign launched")
	return result, nil
}

type dialTask struct {
	CampaignID int64
	Contact    store.Contact
	CallID     int64
}

func (t *dialTask) Fields() []observability.Field {
	return []observability.Field{
		{Key: "campaign_id", Value: t.CampaignID},
		{Key: "contact_id", Value: t.Contact.ID},
	}
}

// dialer places the call of one contact
type dialer struct {
	store   CampaignStore
	placer  CallPlacer
	baseURL string
}

func (d *dialer) Name() string {
	return "campaign_dialer"
}

func (d *dialer) Process(ctx context.Context, task *dialTask) error {
	call, err := d.store.CreateCall(ctx, task.CampaignID, task.Contact.ID)
	if err != nil {
		return fmt.Errorf("failed to create call: %w", err)
	}
	task.CallID = call.ID

	sid, err := d.placer.PlaceCall(ctx, twilio.PlaceCallParams{
		To:                task.Contact.PhoneNumber,
		VoiceURL:          d.baseURL + callflow.CallPath(call.ID),
		StatusCallbackURL: d.baseURL + callflow.StatusPath(call.ID),
	})
	// The provider has answered, so its outcome is stored even if the
	// launch timed out meanwhile.
	settleCtx := context.WithoutCancel(ctx)
	if err != nil {
		placeErr := fmt.Errorf("%w: %v", ErrPlacementFailed, err)
		if _, markErr := d.store.MarkCallFailed(settleCtx, call.ID, store.ProviderStatusPlacementFailed); markErr != nil {
			return errors.Join(placeErr, markErr)
		}
		return placeErr
	}

	if _, err := d.store.MarkCallPlaced(settleCtx, call.ID, sid); err != nil {
		return fmt.Errorf("failed to mark call placed: %w", err)
	}
	return nil
}

// launchCollector gathers results from concurrent workers
type launchCollector struct {
	mu     sync.Mutex
	result LaunchResult
}

func (c *launchCollector) record(r workers.ProcessingResult[*dialTask]) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if r.Error == nil {
		c.result.Placed++
		return
	}
	// interrupted by the launch timeout, counted as unfinished
	if errors.Is(r.Error, context.Canceled) || errors.Is(r.Error, context.DeadlineExceeded) {
		return
	}
	c.result.Failed = append(c.result.Failed, LaunchFailure{
		ContactID:   r.Task.Contact.ID,
		PhoneNumber: r.Task.Contact.PhoneNumber,
		CallID:      r.Task.CallID,
		Reason:      r.Error.Error(),
	})
}

func (c *launchCollector) snapshot() LaunchResult {
	c.mu.Lock()
	defer c.mu.Unlock()

	result := c.result
	result.Failed = append([]LaunchFailure{}, c.result.Failed...)
	result.Unfinished = result.Total - result.Placed - len(result.Failed)
	return result
}
