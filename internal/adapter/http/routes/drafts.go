package routes

import (
	"coatingshop/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathDrafts = "/drafts"

// addDraftRoutes mounts the quote builder. Drafts are anonymous; only submit
// needs a signed-in customer.
func addDraftRoutes(rg *gin.RouterGroup, h *handlers.DraftHandler, auth, online gin.HandlerFunc) {
	drafts := rg.Group(PathDrafts)
	{
		drafts.POST("", h.StartDraft)
		drafts.GET("/:id", h.GetDraft)
		drafts.DELETE("/:id", h.DiscardDraft)

		drafts.PUT("/:id/item-form", h.SetItemForm)
		drafts.POST("/:id/items", h.SaveItem)
		drafts.POST("/:id/items/cancel-edit", h.CancelEdit)
		drafts.POST("/:id/items/:index/edit", h.EditItem)
		drafts.DELETE("/:id/items/:index", h.RemoveItem)

		drafts.PUT("/:id/coating", h.SetCoating)
		drafts.PUT("/:id/services", h.SetServices)
		drafts.POST("/:id/services/:service/toggle", h.ToggleService)
		drafts.PUT("/:id/promo", h.ApplyPromoCode)
		drafts.PUT("/:id/contact", h.SetContact)

		drafts.POST("/:id/touch", h.Touch)
		drafts.POST("/:id/next", h.Next)
		drafts.POST("/:id/previous", h.Previous)
		drafts.POST("/:id/submit", auth, online, h.SubmitDraft)
	}
}
