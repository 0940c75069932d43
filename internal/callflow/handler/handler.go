package handler

import (
	"net/http"
	"strings"

	"survey-dialer/internal/apierrors"
	"survey-dialer/internal/callflow/processor"
	"survey-dialer/internal/observability"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	processor processor.CallFlowProcessor
	logger    *observability.Logger
}

func New(processor processor.CallFlowProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// CallURI binds the call id path parameter
type CallURI struct {
	ID int64 `uri:"id" binding:"required,gt=0"`
}

// WebhookRequest is the Twilio form payload. Every field is optional.
type WebhookRequest struct {
	CallSid      string `form:"CallSid"`
	CallStatus   string `form:"CallStatus"`
	Digits       string `form:"Digits"`
	SpeechResult string `form:"SpeechResult"`
}

func (r WebhookRequest) callback() processor.Callback {
	return processor.Callback{
		CallSID:    strings.TrimSpace(r.CallSid),
		CallStatus: strings.TrimSpace(r.CallStatus),
		Digits:     r.Digits,
		Speech:     r.SpeechResult,
	}
}

// bind reads the path id and the form payload. A malformed payload is
// treated as empty so the call falls through the no-answer path.
func (h *Handler) bind(c *gin.Context) (int64, WebhookRequest, bool) {
	var uri CallURI
	if err := c.ShouldBindUri(&uri); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return 0, WebhookRequest{}, false
	}

	var req WebhookRequest
	if err := c.ShouldBind(&req); err != nil {
		h.logger.InfoWithError(c.Request.Context(), "ignoring malformed webhook payload", err)
		req = WebhookRequest{}
	}
	return uri.ID, req, true
}

// HandleVoiceWebhook answers a voice callback with the next TwiML document
func (h *Handler) HandleVoiceWebhook(c *gin.Context) {
	callID, req, ok := h.bind(c)
	if !ok {
		return
	}

	reply, err := h.processor.HandleVoiceCallback(c.Request.Context(), callID, req.callback())
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.Header("Content-Type", "text/xml")
	c.String(http.StatusOK, reply.TwiML)
}

// HandleStatusWebhook records a call progress event
func (h *Handler) HandleStatusWebhook(c *gin.Context) {
	callID, req, ok := h.bind(c)
	if !ok {
		return
	}

	if _, err := h.processor.HandleStatusCallback(c.Request.Context(), callID, req.callback()); err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
