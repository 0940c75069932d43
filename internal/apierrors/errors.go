package apierrors

import (
	"fmt"
	"net/http"
)

// Error codes returned to API clients
const (
	CodeInvalidInput          = "INVALID_INPUT"
	CodeNotFound              = "NOT_FOUND"
	CodeCallNotFound          = "CALL_NOT_FOUND"
	CodeCampaignNotFound      = "CAMPAIGN_NOT_FOUND"
	CodeCampaignInactive      = "CAMPAIGN_INACTIVE"
	CodePhoneExists           = "PHONE_NUMBER_EXISTS"
	CodeInvalidPhone          = "INVALID_PHONE_NUMBER"
	CodeInvalidStatus         = "INVALID_CALL_STATUS"
	CodeInvalidSignature      = "INVALID_SIGNATURE"
	CodeProviderNotConfigured = "PROVIDER_NOT_CONFIGURED"
	CodeInternal              = "INTERNAL_ERROR"
)

// APIError is an error that carries its HTTP representation. The wrapped
// internal error is logged but never sent to clients.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
	Internal   error
}

func (e *APIError) Error() string {
	if e.Internal != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Internal)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *APIError) Unwrap() error {
	return e.Internal
}

func BadRequest(code, message string) *APIError {
	return &APIError{StatusCode: http.StatusBadRequest, Code: code, Message: message}
}

func Forbidden(code, message string) *APIError {
	return &APIError{StatusCode: http.StatusForbidden, Code: code, Message: message}
}

func NotFound(code, message string) *APIError {
	return &APIError{StatusCode: http.StatusNotFound, Code: code, Message: message}
}

func Conflict(code, message string) *APIError {
	return &APIError{StatusCode: http.StatusConflict, Code: code, Message: message}
}

// ServiceUnavailable reports a dependency that cannot serve the request
func ServiceUnavailable(code, message string, internal error) *APIError {
	return &APIError{StatusCode: http.StatusServiceUnavailable, Code: code, Message: message, Internal: internal}
}

// InternalError returns a sanitized 500 - never exposes internal details
func InternalError(internal error) *APIError {
	return &APIError{
		StatusCode: http.StatusInternalServerError,
		Code:       CodeInternal,
		Message:    "An internal error occurred. Please try again later.",
		Internal:   internal,
	}
}
