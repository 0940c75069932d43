package api

import (
	"net/http"

	analyticsHandler "survey-dialer/internal/analytics/handler"
	callflowHandler "survey-dialer/internal/callflow/handler"
	campaignHandler "survey-dialer/internal/campaign/handler"
	contactHandler "survey-dialer/internal/contact/handler"

	"github.com/gin-gonic/gin"
)

type API struct {
	router           *gin.RouterGroup
	analyticsHandler analyticsHandler.Handler
	campaignHandler  campaignHandler.Handler
	contactHandler   contactHandler.Handler
	callflowHandler  callflowHandler.Handler
	webhookGuards    []gin.HandlerFunc
	healthCheck      func(c *gin.Context) error
}

func New(
	router *gin.RouterGroup,
	analyticsHandler analyticsHandler.Handler,
	campaignHandler campaignHandler.Handler,
	contactHandler contactHandler.Handler,
	callflowHandler callflowHandler.Handler,
) API {
	return API{
		router:           router,
		analyticsHandler: analyticsHandler,
		campaignHandler:  campaignHandler,
		contactHandler:   contactHandler,
		callflowHandler:  callflowHandler,
	}
}

// WithWebhookGuards runs the given middleware before every provider webhook
func (a *API) WithWebhookGuards(guards ...gin.HandlerFunc) {
	a.webhookGuards = append(a.webhookGuards, guards...)
}

// WithHealthCheck makes /health report 503 when check fails
func (a *API) WithHealthCheck(check func(c *gin.Context) error) {
	a.healthCheck = check
}

func (a *API) RegisterRoutes() {
	a.Health()
	apiGroup := a.router.Group("/api")
	{
		apiGroup.GET("/dashboard", a.analyticsHandler.HandleGetDashboard)

		apiGroup.GET("/campaigns", a.campaignHandler.HandleListCampaigns)
		apiGroup.POST("/campaigns", a.campaignHandler.HandleCreateCampaign)
		apiGroup.GET("/campaigns/:id", a.analyticsHandler.HandleGetCampaign)
		apiGroup.POST("/campaigns/:id/launch", a.campaignHandler.HandleLaunchCampaign)

		apiGroup.GET("/contacts", a.contactHandler.HandleListContacts)
		apiGroup.POST("/contacts", a.contactHandler.HandleCreateContact)

		apiGroup.GET("/calls", a.analyticsHandler.HandleListCalls)
		apiGroup.GET("/calls/:id", a.analyticsHandler.HandleGetCall)
	}

	twilioGroup := a.router.Group("/twilio", a.webhookGuards...)
	{
		twilioGroup.POST("/call/:id", a.callflowHandler.HandleVoiceWebhook)
		twilioGroup.POST("/call/:id/status", a.callflowHandler.HandleStatusWebhook)
	}
}

func (a *API) Health() {
	a.router.GET("/health", func(c *gin.Context) {
		if a.healthCheck != nil {
			if err := a.healthCheck(c); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"message": "unavailable"})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})
}
