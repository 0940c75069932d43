package handler

import (
	"fmt"
	"net/http"
	"strings"

	"survey-dialer/internal/apierrors"
	callflowHandler "survey-dialer/internal/callflow/handler"
	"survey-dialer/internal/campaign/processor"
	"survey-dialer/internal/observability"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	processor     processor.CampaignProcessor
	publicBaseURL string
	logger        *observability.Logger
}

// New creates the campaign handler. publicBaseURL is the externally
// reachable address used for webhook URLs; when empty the request host is
// used.
func New(processor processor.CampaignProcessor, publicBaseURL string, logger *observability.Logger) Handler {
	return Handler{
		processor:     processor,
		publicBaseURL: publicBaseURL,
		logger:        logger,
	}
}

// CampaignURI binds the campaign id path parameter
type CampaignURI struct {
	ID int64 `uri:"id" binding:"required,gt=0"`
}

// CreateCampaignRequest represents the HTTP request for creating a campaign
type CreateCampaignRequest struct {
	Name          string `json:"name" form:"name" binding:"required,min=1,max=200"`
	Description   string `json:"description" form:"description" binding:"max=2000"`
	CandidateName string `json:"candidate_name" form:"candidate_name" binding:"required,min=1,max=200"`
	IsActive      *bool  `json:"is_active" form:"is_active"`
}

// HandleCreateCampaign creates a new campaign. Campaigns are active unless
// is_active is explicitly false.
func (h *Handler) HandleCreateCampaign(c *gin.Context) {
	ctx := c.Request.Context()

	var req CreateCampaignRequest
	if err := c.ShouldBind(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.CandidateName) == "" {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "name and candidate_name must not be blank"))
		return
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	campaign, err := h.processor.CreateCampaign(ctx, processor.CreateCampaignParams{
		Name:          req.Name,
		Description:   req.Description,
		CandidateName: req.CandidateName,
		IsActive:      isActive,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, campaign)
}

// HandleListCampaigns lists all campaigns, newest first
func (h *Handler) HandleListCampaigns(c *gin.Context) {
	campaigns, err := h.processor.ListCampaigns(c.Request.Context())
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"campaigns": campaigns})
}

// HandleLaunchCampaign dials every contact for the campaign. Browser form
// posts are redirected to the campaign detail; API clients asking for JSON
// get the launch result.
func (h *Handler) HandleLaunchCampaign(c *gin.Context) {
	ctx := c.Request.Context()

	var uri CampaignURI
	if err := c.ShouldBindUri(&uri); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "campaign_id", Value: uri.ID})

	baseURL := callflowHandler.RequestBaseURL(c, h.publicBaseURL)
	result, err := h.processor.LaunchCampaign(ctx, uri.ID, baseURL)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	if wantsJSON(c) {
		c.JSON(http.StatusOK, result)
		return
	}
	c.Redirect(http.StatusSeeOther, fmt.Sprintf("/api/campaigns/%d", uri.ID))
}

func wantsJSON(c *gin.Context) bool {
	return strings.Contains(c.GetHeader("Accept"), gin.MIMEJSON)
}
