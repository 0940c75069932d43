package handler

import (
	"net/http"

	"survey-dialer/internal/analytics/processor"
	"survey-dialer/internal/apierrors"
	"survey-dialer/internal/observability"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	processor processor.AnalyticsProcessor
	logger    *observability.Logger
}

func New(processor processor.AnalyticsProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// IDURI binds a numeric id path parameter
type IDURI struct {
	ID int64 `uri:"id" binding:"required,gt=0"`
}

// ListCallsQuery holds the call listing filters
type ListCallsQuery struct {
	Status     string `form:"status"`
	CampaignID *int64 `form:"campaign_id" binding:"omitempty,gt=0"`
	Limit      int    `form:"limit" binding:"omitempty,gte=0"`
}

// HandleGetDashboard returns global counters
func (h *Handler) HandleGetDashboard(c *gin.Context) {
	dashboard, err := h.processor.GetDashboard(c.Request.Context())
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dashboard)
}

// HandleListCalls returns the newest calls, optionally filtered
func (h *Handler) HandleListCalls(c *gin.Context) {
	var query ListCallsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	calls, err := h.processor.ListCalls(c.Request.Context(), processor.ListCallsParams{
		Status:     query.Status,
		CampaignID: query.CampaignID,
		Limit:      query.Limit,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"calls": calls})
}

// HandleGetCampaign returns the campaign detail report
func (h *Handler) HandleGetCampaign(c *gin.Context) {
	var uri IDURI
	if err := c.ShouldBindUri(&uri); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	report, err := h.processor.GetCampaignReport(c.Request.Context(), uri.ID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

// HandleGetCall returns one call with its responses
func (h *Handler) HandleGetCall(c *gin.Context) {
	var uri IDURI
	if err := c.ShouldBindUri(&uri); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	report, err := h.processor.GetCallReport(c.Request.Context(), uri.ID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}
