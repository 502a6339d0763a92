// internal/handlers/storefront.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/crownshop/storefront/internal/repository"
	"github.com/crownshop/storefront/internal/services"
	"github.com/crownshop/storefront/internal/utils"
)

type StorefrontHandler struct {
	catalogService *services.CatalogService
}

func NewStorefrontHandler(catalogService *services.CatalogService) *StorefrontHandler {
	return &StorefrontHandler{catalogService: catalogService}
}

// GET /products
//
// category matches either the product category or its audience segment;
// search is a case-insensitive substring match over name and
// description. Both are applied on top of the cached catalog.
func (h *StorefrontHandler) GetProducts(c *gin.Context) {
	products, err := h.catalogService.ListProducts(c.Request.Context())
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	filtered := services.FilterProducts(products, c.Query("category"), c.Query("search"))
	utils.SuccessResponse(c, gin.H{
		"products": filtered,
		"total":    len(filtered),
	})
}

// GET /products/:id
func (h *StorefrontHandler) GetProduct(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid product ID", nil)
		return
	}

	product, err := h.catalogService.GetProduct(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			utils.NotFoundResponse(c, "Product")
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, product)
}
