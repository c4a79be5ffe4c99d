package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/campushub/campuschat-server/internal/contact"
)

// ContactHandlers provides the contact-form HTTP endpoint.
type ContactHandlers struct {
	service *contact.Service
	log     *zerolog.Logger
}

// NewContactHandlers creates a new contact handlers instance.
func NewContactHandlers(service *contact.Service, logger *zerolog.Logger) *ContactHandlers {
	return &ContactHandlers{service: service, log: logger}
}

// ContactResponse is the response body for the contact endpoint.
type ContactResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Submit handles a contact-form submission.
// POST /api/contact
func (h *ContactHandlers) Submit(c *gin.Context) {
	var sub contact.Submission
	if err := c.ShouldBindJSON(&sub); err != nil {
		h.log.Debug().Err(err).Msg("invalid contact request")
		c.JSON(http.StatusBadRequest, ContactResponse{
			Success: false,
			Message: "All fields are required",
		})
		return
	}

	err := h.service.Submit(c.Request.Context(), sub)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, ContactResponse{
			Success: true,
			Message: "Your message has been sent successfully!",
		})
	case errors.Is(err, contact.ErrMissingFields):
		c.JSON(http.StatusBadRequest, ContactResponse{
			Success: false,
			Message: "All fields are required",
		})
	case errors.Is(err, contact.ErrSendTimeout):
		// Recorded but not yet mailed; tell the visitor not to resend.
		c.JSON(http.StatusAccepted, ContactResponse{
			Success: true,
			Message: "Message accepted and will be sent shortly. Please do not resend.",
		})
	default:
		h.log.Error().Err(err).Msg("contact submission failed")
		c.JSON(http.StatusInternalServerError, ContactResponse{
			Success: false,
			Message: "Something went wrong. Please try again.",
		})
	}
}
