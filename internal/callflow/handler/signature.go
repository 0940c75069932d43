package handler

import (
	"strings"

	"survey-dialer/internal/apierrors"
	"survey-dialer/internal/observability"

	"github.com/gin-gonic/gin"
)

// WebhookValidator checks a provider signature over the request URL and
// form parameters
type WebhookValidator interface {
	ValidateWebhook(url string, params map[string]string, signature string) bool
}

// SignatureMiddleware rejects webhooks whose X-Twilio-Signature does not
// match. publicBaseURL, when set, replaces the scheme and host seen by the
// server, which differ from the signed URL behind a proxy.
func SignatureMiddleware(validator WebhookValidator, publicBaseURL string, logger *observability.Logger) gin.HandlerFunc {
	publicBaseURL = strings.TrimRight(publicBaseURL, "/")

	return func(c *gin.Context) {
		if err := c.Request.ParseForm(); err != nil {
			logger.InfoWithError(c.Request.Context(), "failed to parse webhook form", err)
		}

		params := make(map[string]string, len(c.Request.PostForm))
		for key, values := range c.Request.PostForm {
			if len(values) > 0 {
				params[key] = values[0]
			}
		}

		url := RequestBaseURL(c, publicBaseURL) + c.Request.URL.RequestURI()
		if !validator.ValidateWebhook(url, params, c.GetHeader("X-Twilio-Signature")) {
			logger.Warn(c.Request.Context(), "rejected webhook with invalid signature")
			apierrors.RespondWithError(c, apierrors.Forbidden(apierrors.CodeInvalidSignature, "Invalid webhook signature"))
			return
		}
		c.Next()
	}
}

// RequestBaseURL returns publicBaseURL if set, otherwise the scheme and host
// the request arrived on
func RequestBaseURL(c *gin.Context, publicBaseURL string) string {
	if publicBaseURL != "" {
		return strings.TrimRight(publicBaseURL, "/")
	}
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	if forwarded := c.GetHeader("X-Forwarded-Proto"); forwarded != "" {
		scheme = forwarded
	}
	return scheme + "://" + c.Request.Host
}
