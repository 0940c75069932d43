package apierrors

import (
	"errors"

	analyticsProcessor "survey-dialer/internal/analytics/processor"
	callflowProcessor "survey-dialer/internal/callflow/processor"
	campaignProcessor "survey-dialer/internal/campaign/processor"
	contactProcessor "survey-dialer/internal/contact/processor"
	"survey-dialer/internal/store"
)

// MapError converts domain/processor errors to APIErrors.
// If the error is already an APIError, it returns it as-is. Unknown errors
// become a sanitized InternalError (500).
func MapError(err error) *APIError {
	if err == nil {
		return nil
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}

	switch {
	case errors.Is(err, callflowProcessor.ErrCallNotFound),
		errors.Is(err, analyticsProcessor.ErrCallNotFound):
		return NotFound(CodeCallNotFound, "Call not found")

	case errors.Is(err, campaignProcessor.ErrCampaignNotFound),
		errors.Is(err, analyticsProcessor.ErrCampaignNotFound):
		return NotFound(CodeCampaignNotFound, "Campaign not found")

	case errors.Is(err, campaignProcessor.ErrCampaignInactive):
		return Conflict(CodeCampaignInactive, "Campaign is not active")

	case errors.Is(err, campaignProcessor.ErrProviderNotConfigured):
		return ServiceUnavailable(
			CodeProviderNotConfigured,
			"Telephony provider is not configured. Set the Twilio account SID, auth token and origin number.",
			err,
		)

	case errors.Is(err, contactProcessor.ErrPhoneNumberExists):
		return Conflict(CodePhoneExists, "A contact with this phone number already exists")

	case errors.Is(err, contactProcessor.ErrInvalidPhoneNumber):
		return BadRequest(CodeInvalidPhone, "Phone number must be in E.164 format, for example +34600111222")

	case errors.Is(err, analyticsProcessor.ErrInvalidCallStatus):
		return BadRequest(CodeInvalidStatus, "Unknown call status")

	case errors.Is(err, store.ErrNotFound):
		return NotFound(CodeNotFound, "Resource not found")

	default:
		return InternalError(err)
	}
}
