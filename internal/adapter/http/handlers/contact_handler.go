package handlers

import (
	"errors"
	"net/http"

	request "coatingshop/internal/adapter/http/dto/request"
	response "coatingshop/internal/adapter/http/dto/response"
	"coatingshop/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	contactSuccessMessage = "Thank you for your message! We will get back to you soon."
	contactFailureMessage = "Failed to send message. Please try again later."
)

// ContactHandler serves the public contact form and the health probe.
type ContactHandler struct {
	usecase      usecase.IContactUseCase
	exposeErrors bool
	log          *zap.Logger
}

// NewContactHandler builds the handler. exposeErrors adds the failure detail
// to 500 responses and must be off in production.
func NewContactHandler(uc usecase.IContactUseCase, exposeErrors bool, log *zap.Logger) *ContactHandler {
	return &ContactHandler{usecase: uc, exposeErrors: exposeErrors, log: log.Named("contact")}
}

// SubmitContact
//
// @Summary  Send a contact message
// @Tags     contact
// @Param    body body request.ContactRequest true "Contact form"
// @Success  200 {object} response.ContactSuccessResponse
// @Failure  400 {object} response.ContactValidationResponse
// @Failure  500 {object} response.ContactErrorResponse
// @Router   /api/contact [post]
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	var payload request.ContactRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, response.ContactValidationResponse{
			Message: "Validation failed",
			Errors:  []usecase.FieldError{{Field: "body", Message: "Request body must be a JSON object"}},
		})
		return
	}

	err := h.usecase.Submit(c.Request.Context(), payload.ToEntity())
	if err == nil {
		c.JSON(http.StatusOK, response.ContactSuccessResponse{Success: true, Message: contactSuccessMessage})
		return
	}

	var invalid *usecase.ContactValidationError
	if errors.As(err, &invalid) {
		c.JSON(http.StatusBadRequest, response.ContactValidationResponse{Message: "Validation failed", Errors: invalid.Errors})
		return
	}

	h.log.Error("contact message not delivered", zap.Error(err))
	body := response.ContactErrorResponse{Success: false, Message: contactFailureMessage}
	if h.exposeErrors {
		body.Error = err.Error()
	}
	c.JSON(http.StatusInternalServerError, body)
}

// Health
//
// @Summary  Liveness probe
// @Tags     contact
// @Success  200 {object} response.HealthResponse
// @Router   /api/health [get]
func (h *ContactHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, response.HealthResponse{Status: "ok"})
}
