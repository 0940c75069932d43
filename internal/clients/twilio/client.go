package twilio

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"survey-dialer/internal/observability"

	twiliogo "github.com/twilio/twilio-go"
	"github.com/twilio/twilio-go/client"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"
)

var (
	ErrNotConfigured     = errors.New("twilio is not configured")
	ErrPlacementRejected = errors.New("twilio rejected the call")
)

// statusCallbackEvents are the call progress events reported to the
// status callback URL
var statusCallbackEvents = []string{"initiated", "ringing", "answered", "completed"}

// Config holds the account credentials and the verified origin number
type Config struct {
	AccountSID string
	AuthToken  string
	FromNumber string
}

func (c Config) missing() []string {
	var missing []string
	if c.AccountSID == "" {
		missing = append(missing, "account SID")
	}
	if c.AuthToken == "" {
		missing = append(missing, "auth token")
	}
	if c.FromNumber == "" {
		missing = append(missing, "origin number")
	}
	return missing
}

// PlaceCallParams describes one outbound call
type PlaceCallParams struct {
	To                string
	VoiceURL          string
	StatusCallbackURL string
}

type callCreator interface {
	CreateCall(params *openapi.CreateCallParams) (*openapi.ApiV2010Call, error)
}

// Client places outbound calls and validates webhook signatures
type Client struct {
	calls     callCreator
	validator client.RequestValidator
	config    Config
	logger    *observability.Logger
}

// NewClient creates a Twilio client. Missing credentials are reported by
// CheckConfigured rather than here so the server can boot without them.
func NewClient(cfg Config, logger *observability.Logger) *Client {
	rest := twiliogo.NewRestClientWithParams(twiliogo.ClientParams{
		Username: cfg.AccountSID,
		Password: cfg.AuthToken,
	})
	return newClient(rest.Api, cfg, logger)
}

func newClient(calls callCreator, cfg Config, logger *observability.Logger) *Client {
	return &Client{
		calls:     calls,
		validator: client.NewRequestValidator(cfg.AuthToken),
		config:    cfg,
		logger:    logger,
	}
}

// CheckConfigured returns ErrNotConfigured naming every missing setting
func (c *Client) CheckConfigured() error {
	if missing := c.config.missing(); len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", ErrNotConfigured, strings.Join(missing, ", "))
	}
	return nil
}

// PlaceCall dials params.To from the configured number and returns the
// provider call SID
func (c *Client) PlaceCall(ctx context.Context, params PlaceCallParams) (string, error) {
	if err := c.CheckConfigured(); err != nil {
		return "", err
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "to", Value: params.To})

	req := &openapi.CreateCallParams{}
	req.SetTo(params.To)
	req.SetFrom(c.config.FromNumber)
	req.SetUrl(params.VoiceURL)
	req.SetMethod("POST")
	if params.StatusCallbackURL != "" {
		req.SetStatusCallback(params.StatusCallbackURL)
		req.SetStatusCallbackMethod("POST")
		req.SetStatusCallbackEvent(statusCallbackEvents)
	}

	resp, err := c.calls.CreateCall(req)
	if err != nil {
		var restErr *client.TwilioRestError
		if errors.As(err, &restErr) {
			ctx = observability.WithFields(ctx,
				observability.Field{Key: "twilio_code", Value: restErr.Code},
				observability.Field{Key: "twilio_status", Value: restErr.Status},
			)
			c.logger.Error(ctx, "twilio rejected call", err)
			return "", fmt.Errorf("%w: %d %s", ErrPlacementRejected, restErr.Code, restErr.Message)
		}
		c.logger.Error(ctx, "failed to create twilio call", err)
		return "", fmt.Errorf("failed to create twilio call: %w", err)
	}
	if resp == nil || resp.Sid == nil || *resp.Sid == "" {
		return "", fmt.Errorf("%w: response carried no call sid", ErrPlacementRejected)
	}

	return *resp.Sid, nil
}

// ValidateWebhook checks the X-Twilio-Signature of a form webhook
func (c *Client) ValidateWebhook(url string, params map[string]string, signature string) bool {
	if signature == "" || c.config.AuthToken == "" {
		return false
	}
	return c.validator.Validate(url, params, signature)
}
