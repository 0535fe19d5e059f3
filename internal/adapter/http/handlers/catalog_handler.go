package handlers

import (
	"net/http"

	request "coatingshop/internal/adapter/http/dto/request"
	response "coatingshop/internal/adapter/http/dto/response"
	"coatingshop/internal/domain/entities"
	"coatingshop/internal/domain/validation"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct{}

func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

// GetCatalog
//
// @Summary  Pricing catalog
// @Tags     catalog
// @Success  200 {object} response.CatalogResponse
// @Router   /catalog [get]
func (h *CatalogHandler) GetCatalog(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromCatalog(entities.DefaultCatalog()))
}

// ValidateField checks a single form value, e.g. on blur.
//
// @Summary  Validate one field
// @Tags     catalog
// @Param    body body request.ValidateFieldRequest true "Field and value"
// @Success  200 {object} response.ValidateFieldResponse
// @Router   /validate [post]
func (h *CatalogHandler) ValidateField(c *gin.Context) {
	var payload request.ValidateFieldRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	msg := validation.Field(payload.Field, payload.Value)
	c.JSON(http.StatusOK, response.ValidateFieldResponse{Field: payload.Field, Error: msg, Valid: msg == ""})
}
