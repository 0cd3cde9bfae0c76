package api

import (
	"github.com/labstack/echo/v4"

	"storefront-service/internal/service"
)

type CatalogHandler struct {
	catalogService *service.CatalogService
}

// NewCatalogHandler creates a new instance of CatalogHandler
func NewCatalogHandler(catalogService *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// GetCategories lists the menu categories --> /api/categories
func (h *CatalogHandler) GetCategories(c echo.Context) error {
	categories, err := h.catalogService.Categories(c.Request().Context())
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(200, categories)
}

// GetMenu lists products filtered by category and search --> /api/menu
func (h *CatalogHandler) GetMenu(c echo.Context) error {
	categoryID := c.QueryParam("categoryId")
	search := c.QueryParam("search")

	products, err := h.catalogService.Products(c.Request().Context(), categoryID, search)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(200, products)
}
