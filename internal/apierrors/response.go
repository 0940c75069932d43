package apierrors

import (
	"errors"
	"net/http"
	"sync/atomic"

	"survey-dialer/internal/observability"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

var responseLogger atomic.Pointer[observability.Logger]

func init() {
	responseLogger.Store(observability.NewLogger())
}

// SetLogger replaces the logger used to record error responses.
func SetLogger(l *observability.Logger) {
	if l != nil {
		responseLogger.Store(l)
	}
}

// ErrorResponse is the body of every non-2xx JSON reply.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// RespondWithError aborts the request with the client-facing form of err.
// 5xx responses are logged at error level with the internal cause.
//
//	if err != nil {
//	    apierrors.RespondWithError(c, err)
//	    return
//	}
func RespondWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	apiErr := MapError(err)
	ctx := observability.WithFields(c.Request.Context(),
		observability.Field{Key: "status_code", Value: apiErr.StatusCode},
		observability.Field{Key: "error_code", Value: apiErr.Code},
	)

	l := responseLogger.Load()
	if apiErr.StatusCode >= http.StatusInternalServerError {
		l.Error(ctx, "request failed", err)
	} else {
		l.InfoWithError(ctx, "request rejected", err)
	}

	c.AbortWithStatusJSON(apiErr.StatusCode, ErrorResponse{Error: apiErr.Message, Code: apiErr.Code})
}

// RespondWithValidationError reports a gin binding failure as 400.
// Validator errors carry per-field messages.
func RespondWithValidationError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		RespondWithError(c, ValidationError(validationErrs))
		return
	}
	RespondWithError(c, BadRequest(CodeInvalidInput, "Invalid request format."))
}
