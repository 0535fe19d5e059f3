package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	request "coatingshop/internal/adapter/http/dto/request"
	response "coatingshop/internal/adapter/http/dto/response"
	"coatingshop/internal/adapter/http/middleware"
	"coatingshop/internal/domain/entities"
	"coatingshop/internal/usecase"
	"coatingshop/pkg"

	"github.com/gin-gonic/gin"
)

const sseHeartbeat = 25 * time.Second

// QuoteHandler serves submitted quotes: listing, status changes, owner edits
// and the live snapshot stream.
type QuoteHandler struct {
	usecase   usecase.IQuoteUseCase
	heartbeat time.Duration
}

func NewQuoteHandler(uc usecase.IQuoteUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc, heartbeat: sseHeartbeat}
}

// ListQuotes returns the caller's quotes, or every quote for admins.
//
// @Summary  List quotes
// @Tags     quotes
// @Security Bearer
// @Param    status query string false "Filter by status"
// @Success  200 {array} response.QuoteResponse
// @Router   /quotes [get]
func (h *QuoteHandler) ListQuotes(c *gin.Context) {
	filter := usecase.ListFilter{Status: entities.QuoteStatus(strings.TrimSpace(c.Query("status")))}
	quotes, err := h.usecase.List(c.Request.Context(), middleware.ActorFrom(c), filter)
	if err != nil {
		writeError(c, mapQuoteError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromQuotes(quotes))
}

// GetQuote
//
// @Summary  Get a quote
// @Tags     quotes
// @Security Bearer
// @Param    id path string true "Quote ID"
// @Success  200 {object} response.QuoteResponse
// @Router   /quotes/{id} [get]
func (h *QuoteHandler) GetQuote(c *gin.Context) {
	q, err := h.usecase.Get(c.Request.Context(), middleware.ActorFrom(c), c.Param("id"))
	if err != nil {
		writeError(c, mapQuoteError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(q))
}

// UpdateStatus moves a quote to any status (admin) or cancels it (owner).
//
// @Summary  Change quote status
// @Tags     quotes
// @Security Bearer
// @Param    id path string true "Quote ID"
// @Param    body body request.UpdateStatusRequest true "Target status"
// @Success  200 {object} response.QuoteResponse
// @Router   /quotes/{id}/status [patch]
func (h *QuoteHandler) UpdateStatus(c *gin.Context) {
	var payload request.UpdateStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	cmd := usecase.SetStatus{Status: entities.QuoteStatus(strings.TrimSpace(payload.Status))}
	h.apply(c, cmd)
}

// UpdateTracking
//
// @Summary  Set tracking number
// @Tags     quotes
// @Security Bearer
// @Param    id path string true "Quote ID"
// @Param    body body request.UpdateTrackingRequest true "Tracking number"
// @Success  200 {object} response.QuoteResponse
// @Router   /quotes/{id}/tracking [patch]
func (h *QuoteHandler) UpdateTracking(c *gin.Context) {
	var payload request.UpdateTrackingRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	h.apply(c, usecase.SetTracking{TrackingNumber: payload.TrackingNumber})
}

// UpdateContent replaces items, coating, services, promo code and contact.
//
// @Summary  Edit quote content
// @Tags     quotes
// @Security Bearer
// @Param    id path string true "Quote ID"
// @Param    body body request.QuoteContentRequest true "New content"
// @Success  200 {object} response.QuoteResponse
// @Router   /quotes/{id}/content [patch]
func (h *QuoteHandler) UpdateContent(c *gin.Context) {
	var payload request.QuoteContentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	h.apply(c, usecase.UpdateContent{Content: payload.ToDraft()})
}

func (h *QuoteHandler) apply(c *gin.Context, cmd usecase.QuoteCommand) {
	q, err := h.usecase.Apply(c.Request.Context(), middleware.ActorFrom(c), c.Param("id"), cmd)
	if err != nil {
		writeError(c, mapQuoteError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(q))
}

// CancelQuote
//
// @Summary  Cancel a quote
// @Tags     quotes
// @Security Bearer
// @Param    id path string true "Quote ID"
// @Success  200 {object} response.QuoteResponse
// @Router   /quotes/{id}/cancel [post]
func (h *QuoteHandler) CancelQuote(c *gin.Context) {
	q, err := h.usecase.Cancel(c.Request.Context(), middleware.ActorFrom(c), c.Param("id"))
	if err != nil {
		writeError(c, mapQuoteError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(q))
}

// DeleteQuote
//
// @Summary  Delete a quote
// @Tags     quotes
// @Security Bearer
// @Param    id path string true "Quote ID"
// @Success  204
// @Router   /quotes/{id} [delete]
func (h *QuoteHandler) DeleteQuote(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), middleware.ActorFrom(c), c.Param("id")); err != nil {
		writeError(c, mapQuoteError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// StreamQuote sends the current snapshot and every later one as server-sent
// events until the client goes away or the quote is deleted.
//
// @Summary  Stream quote changes
// @Tags     quotes
// @Security Bearer
// @Produce  text/event-stream
// @Param    id path string true "Quote ID"
// @Router   /quotes/{id}/events [get]
func (h *QuoteHandler) StreamQuote(c *gin.Context) {
	ctx := c.Request.Context()
	q, sub, err := h.usecase.Subscribe(ctx, middleware.ActorFrom(c), c.Param("id"))
	if err != nil {
		writeError(c, mapQuoteError(err))
		return
	}
	defer sub.Close()

	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")
	c.Status(http.StatusOK)
	c.SSEvent("snapshot", response.FromQuote(q))
	c.Writer.Flush()

	ticker := time.NewTicker(h.heartbeat)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.SSEvent("ping", time.Now().UTC().Format(time.RFC3339))
		case snap, ok := <-sub.C():
			if !ok {
				c.SSEvent("closed", gin.H{"id": q.ID})
				c.Writer.Flush()
				return
			}
			c.SSEvent("snapshot", response.FromQuote(snap))
		}
		c.Writer.Flush()
	}
}

func mapQuoteError(err error) *pkg.AppError {
	if appErr := mapAuthError(err); appErr != nil {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrInvalidQuoteID), errors.Is(err, usecase.ErrUnknownCommand):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrInvalidStatus):
		return pkg.NewDomainErrorSimple("INVALID_STATUS", "Invalid quote status", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidTracking):
		return pkg.NewDomainErrorSimple("INVALID_TRACKING_NUMBER", "Invalid tracking number", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidQuoteContent):
		return pkg.NewDomainErrorSimple("INVALID_QUOTE_CONTENT", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuoteNotEditable):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_EDITABLE", "Quote can no longer be edited", http.StatusConflict)
	case errors.Is(err, usecase.ErrQuoteNotCancellable):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_CANCELLABLE", "Quote can no longer be cancelled", http.StatusConflict)
	default:
		return internalError(err)
	}
}
