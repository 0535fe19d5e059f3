package routes

import (
	"coatingshop/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

func addContactRoutes(rg *gin.RouterGroup, h *handlers.ContactHandler) {
	rg.GET("/health", h.Health)
	rg.POST("/contact", h.SubmitContact)
}

func addCatalogRoutes(rg *gin.RouterGroup, h *handlers.CatalogHandler) {
	rg.GET("/catalog", h.GetCatalog)
	rg.POST("/validate", h.ValidateField)
}
