package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	request "coatingshop/internal/adapter/http/dto/request"
	response "coatingshop/internal/adapter/http/dto/response"
	"coatingshop/internal/adapter/http/middleware"
	"coatingshop/internal/usecase"
	"coatingshop/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// QuotePaymentHandler handles payments for approved quotes.
type QuotePaymentHandler struct {
	usecase usecase.IQuotePaymentUseCase
	log     *zap.Logger
}

func NewQuotePaymentHandler(uc usecase.IQuotePaymentUseCase, log *zap.Logger) *QuotePaymentHandler {
	return &QuotePaymentHandler{usecase: uc, log: log.Named("payment")}
}

// PayQuote charges the stored total of an approved quote.
//
// @Summary  Pay an approved quote
// @Tags     payments
// @Security Bearer
// @Param    id path string true "Quote ID"
// @Param    body body request.QuotePaymentRequest false "Provider payload"
// @Success  200 {object} response.QuotePaymentResponse
// @Router   /quotes/{id}/payments [post]
func (h *QuotePaymentHandler) PayQuote(c *gin.Context) {
	quoteID := c.Param("id")
	payload, err := readProviderPayload(c)
	if err != nil {
		// The use case decides whether an unusable payload is fatal.
		h.log.Info("unreadable payment payload", zap.String("quote_id", quoteID), zap.Error(err))
		payload = nil
	}

	created, err := h.usecase.Pay(c.Request.Context(), middleware.ActorFrom(c), quoteID, payload)
	if err != nil {
		h.log.Warn("payment failed", zap.String("quote_id", quoteID), zap.Error(err))
		writeError(c, mapQuotePaymentError(err))
		return
	}
	h.log.Info("payment created", zap.String("quote_id", quoteID), zap.String("payment_id", created.ID), zap.String("status", string(created.Status)))

	c.JSON(http.StatusOK, response.FromQuotePayment(created))
}

// GetLatestPayment returns the most recent payment of a quote.
//
// @Summary  Latest payment of a quote
// @Tags     payments
// @Security Bearer
// @Param    id path string true "Quote ID"
// @Success  200 {object} response.QuotePaymentResponse
// @Router   /quotes/{id}/payments [get]
func (h *QuotePaymentHandler) GetLatestPayment(c *gin.Context) {
	quoteID := c.Param("id")
	payments, err := h.usecase.ListByQuoteID(c.Request.Context(), middleware.ActorFrom(c), quoteID)
	if err != nil {
		writeError(c, mapQuotePaymentError(err))
		return
	}
	if len(payments) == 0 {
		writeError(c, mapQuotePaymentError(usecase.ErrPaymentNotFound))
		return
	}

	latest := payments[0]
	for _, p := range payments[1:] {
		if p.Date.After(latest.Date) {
			latest = p
		}
	}
	c.JSON(http.StatusOK, response.FromQuotePayment(latest))
}

// GetPayment
//
// @Summary  Get a payment
// @Tags     payments
// @Security Bearer
// @Param    payment_id path string true "Payment ID"
// @Success  200 {object} response.QuotePaymentResponse
// @Router   /payments/{payment_id} [get]
func (h *QuotePaymentHandler) GetPayment(c *gin.Context) {
	p, err := h.usecase.GetByID(c.Request.Context(), middleware.ActorFrom(c), c.Param("payment_id"))
	if err != nil {
		writeError(c, mapQuotePaymentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromQuotePayment(p))
}

// readProviderPayload accepts either {"provider_payload": {...}} or the bare
// provider payload. An empty body means an empty payload.
func readProviderPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if _, ok := envelope["provider_payload"]; ok {
			var wrapped request.QuotePaymentRequest
			if err := json.Unmarshal(raw, &wrapped); err != nil {
				return nil, err
			}
			inner := strings.TrimSpace(string(wrapped.ProviderPayload))
			if inner == "" || inner == "null" {
				return nil, errors.New("provider_payload cannot be empty")
			}
			return wrapped.ProviderPayload, nil
		}
	}

	return json.RawMessage(raw), nil
}

func mapQuotePaymentError(err error) *pkg.AppError {
	if appErr := mapAuthError(err); appErr != nil {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrInvalidQuoteID), errors.Is(err, usecase.ErrInvalidPaymentID), errors.Is(err, usecase.ErrInvalidPaymentPayload), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found for this Mercado Pago test context", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayInvalidUsers):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_INVALID_USERS", "Invalid users involved between seller token and payer test user", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusBadGateway)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuoteNotApproved):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_APPROVED", "Quote not approved", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	default:
		return internalError(err)
	}
}
