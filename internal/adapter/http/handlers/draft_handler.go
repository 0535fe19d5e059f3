package handlers

import (
	"errors"
	"net/http"
	"strconv"

	request "coatingshop/internal/adapter/http/dto/request"
	response "coatingshop/internal/adapter/http/dto/response"
	"coatingshop/internal/adapter/http/middleware"
	"coatingshop/internal/domain/builder"
	"coatingshop/internal/usecase"
	"coatingshop/pkg"

	"github.com/gin-gonic/gin"
)

// DraftHandler drives the four-step quote builder. Drafts are anonymous until
// submitted; the draft id is the only handle on them.
type DraftHandler struct {
	usecase usecase.IDraftUseCase
}

func NewDraftHandler(uc usecase.IDraftUseCase) *DraftHandler {
	return &DraftHandler{usecase: uc}
}

// StartDraft
//
// @Summary  Start a quote draft
// @Tags     drafts
// @Success  201 {object} response.DraftResponse
// @Router   /drafts [post]
func (h *DraftHandler) StartDraft(c *gin.Context) {
	d, err := h.usecase.Start(c.Request.Context())
	if err != nil {
		writeError(c, mapDraftError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromDraft(d))
}

// GetDraft
//
// @Summary  Get a quote draft
// @Tags     drafts
// @Param    id path string true "Draft ID"
// @Success  200 {object} response.DraftResponse
// @Router   /drafts/{id} [get]
func (h *DraftHandler) GetDraft(c *gin.Context) {
	d, err := h.usecase.Get(c.Request.Context(), c.Param("id"))
	h.respond(c, d, err)
}

// DiscardDraft
//
// @Summary  Discard a quote draft
// @Tags     drafts
// @Param    id path string true "Draft ID"
// @Success  204
// @Router   /drafts/{id} [delete]
func (h *DraftHandler) DiscardDraft(c *gin.Context) {
	if err := h.usecase.Discard(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, mapDraftError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *DraftHandler) SetItemForm(c *gin.Context) {
	var payload request.ItemFormRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	d, err := h.usecase.SetItemForm(c.Request.Context(), c.Param("id"), payload.ToForm())
	h.respond(c, d, err)
}

// SaveItem adds the item form to the draft, or replaces the item being edited.
// An invalid form is not an error: the response carries saved=false and the
// field errors.
func (h *DraftHandler) SaveItem(c *gin.Context) {
	d, saved, err := h.usecase.SaveItem(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapDraftError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromDraft(d).WithSaved(saved))
}

func (h *DraftHandler) EditItem(c *gin.Context) {
	index, ok := itemIndex(c)
	if !ok {
		return
	}
	d, err := h.usecase.EditItem(c.Request.Context(), c.Param("id"), index)
	h.respond(c, d, err)
}

func (h *DraftHandler) CancelEdit(c *gin.Context) {
	d, err := h.usecase.CancelEdit(c.Request.Context(), c.Param("id"))
	h.respond(c, d, err)
}

func (h *DraftHandler) RemoveItem(c *gin.Context) {
	index, ok := itemIndex(c)
	if !ok {
		return
	}
	d, err := h.usecase.RemoveItem(c.Request.Context(), c.Param("id"), index)
	h.respond(c, d, err)
}

func (h *DraftHandler) SetCoating(c *gin.Context) {
	var payload request.CoatingRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	d, err := h.usecase.SetCoating(c.Request.Context(), c.Param("id"), payload.ToEntity())
	h.respond(c, d, err)
}

func (h *DraftHandler) SetServices(c *gin.Context) {
	var payload request.AdditionalServicesRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	d, err := h.usecase.SetServices(c.Request.Context(), c.Param("id"), payload.ToEntity())
	h.respond(c, d, err)
}

func (h *DraftHandler) ToggleService(c *gin.Context) {
	d, err := h.usecase.ToggleService(c.Request.Context(), c.Param("id"), c.Param("service"))
	h.respond(c, d, err)
}

func (h *DraftHandler) ApplyPromoCode(c *gin.Context) {
	var payload request.PromoCodeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	d, err := h.usecase.ApplyPromoCode(c.Request.Context(), c.Param("id"), payload.Code)
	h.respond(c, d, err)
}

func (h *DraftHandler) SetContact(c *gin.Context) {
	var payload request.ContactInfoRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	d, err := h.usecase.SetContact(c.Request.Context(), c.Param("id"), payload.ToEntity())
	h.respond(c, d, err)
}

func (h *DraftHandler) Touch(c *gin.Context) {
	var payload request.TouchRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	d, err := h.usecase.Touch(c.Request.Context(), c.Param("id"), payload.Field)
	h.respond(c, d, err)
}

// Next validates the current step and advances when it passes. A blocked step
// answers 200 with advanced=false and the errors.
func (h *DraftHandler) Next(c *gin.Context) {
	d, advanced, err := h.usecase.Next(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapDraftError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromDraft(d).WithAdvanced(advanced))
}

func (h *DraftHandler) Previous(c *gin.Context) {
	d, err := h.usecase.Previous(c.Request.Context(), c.Param("id"))
	h.respond(c, d, err)
}

// SubmitDraft turns a complete draft into a pending quote owned by the caller.
//
// @Summary  Submit a quote draft
// @Tags     drafts
// @Security Bearer
// @Param    id path string true "Draft ID"
// @Success  201 {object} response.QuoteResponse
// @Failure  422 {object} map[string]any
// @Router   /drafts/{id}/submit [post]
func (h *DraftHandler) SubmitDraft(c *gin.Context) {
	q, err := h.usecase.Submit(c.Request.Context(), middleware.ActorFrom(c), c.Param("id"))
	if err != nil {
		var incomplete *usecase.IncompleteDraftError
		if errors.As(err, &incomplete) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"code":    "DRAFT_INCOMPLETE",
				"message": "Please complete all required fields",
				"errors":  incomplete.Errors,
			})
			return
		}
		writeError(c, mapDraftError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromQuote(q))
}

func (h *DraftHandler) respond(c *gin.Context, d usecase.Draft, err error) {
	if err != nil {
		writeError(c, mapDraftError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromDraft(d))
}

func itemIndex(c *gin.Context) (int, bool) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil || index < 0 {
		writeError(c, errInvalidRequest)
		return 0, false
	}
	return index, true
}

func mapDraftError(err error) *pkg.AppError {
	if appErr := mapAuthError(err); appErr != nil {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrInvalidDraftID):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrDraftNotFound):
		return pkg.NewDomainErrorSimple("DRAFT_NOT_FOUND", "Draft not found or expired", http.StatusNotFound)
	case errors.Is(err, builder.ErrItemIndex):
		return pkg.NewDomainErrorSimple("ITEM_NOT_FOUND", "Item not found", http.StatusNotFound)
	case errors.Is(err, builder.ErrUnknownService), errors.Is(err, builder.ErrUnknownField):
		return pkg.NewDomainErrorSimple("INVALID_FIELD", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrDraftIncomplete):
		return pkg.NewDomainErrorSimple("DRAFT_INCOMPLETE", "Please complete all required fields", http.StatusUnprocessableEntity)
	default:
		return mapQuoteError(err)
	}
}
