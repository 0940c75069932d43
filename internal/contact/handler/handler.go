package handler

import (
	"net/http"

	"survey-dialer/internal/apierrors"
	"survey-dialer/internal/contact/processor"
	"survey-dialer/internal/observability"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	processor processor.ContactProcessor
	logger    *observability.Logger
}

func New(processor processor.ContactProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// CreateContactRequest represents the HTTP request for creating a contact
type CreateContactRequest struct {
	Name        string `json:"name" form:"name" binding:"max=200"`
	PhoneNumber string `json:"phone_number" form:"phone_number" binding:"required,max=32"`
}

// HandleCreateContact creates a new contact
func (h *Handler) HandleCreateContact(c *gin.Context) {
	var req CreateContactRequest
	if err := c.ShouldBind(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	contact, err := h.processor.CreateContact(c.Request.Context(), processor.CreateContactParams{
		Name:        req.Name,
		PhoneNumber: req.PhoneNumber,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, contact)
}

// HandleListContacts lists all contacts, newest first
func (h *Handler) HandleListContacts(c *gin.Context) {
	contacts, err := h.processor.ListContacts(c.Request.Context())
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"contacts": contacts})
}
