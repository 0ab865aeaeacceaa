package handlers

import (
	"github.com/gin-gonic/gin"

	"jaego/internal/core/apperror"
	"jaego/internal/domain/catalog"
)

// CatalogHandler serves the product and counterparty reference lists.
type CatalogHandler struct {
	*BaseHandler
	repo catalog.Repository
}

// NewCatalogHandler creates a catalog handler.
func NewCatalogHandler(base *BaseHandler, repo catalog.Repository) *CatalogHandler {
	return &CatalogHandler{BaseHandler: base, repo: repo}
}

// Products handles GET /catalog/products
func (h *CatalogHandler) Products(c *gin.Context) {
	category, ok := h.category(c)
	if !ok {
		return
	}

	products, err := h.repo.ListProducts(c.Request.Context(), category)
	if err != nil {
		h.Error(c, err)
		return
	}
	if products == nil {
		products = []catalog.Product{}
	}
	h.OK(c, products)
}

// Counterparties handles GET /catalog/counterparties
func (h *CatalogHandler) Counterparties(c *gin.Context) {
	category, ok := h.category(c)
	if !ok {
		return
	}

	counterparties, err := h.repo.ListCounterparties(c.Request.Context(), category)
	if err != nil {
		h.Error(c, err)
		return
	}
	if counterparties == nil {
		counterparties = []catalog.Counterparty{}
	}
	h.OK(c, counterparties)
}

func (h *CatalogHandler) category(c *gin.Context) (catalog.Category, bool) {
	category := catalog.Category(c.Query("category"))
	if !category.Valid() {
		h.Error(c, apperror.NewValidation("unknown category").
			WithDetail("category", string(category)))
		return "", false
	}
	return category, true
}

// RegisterRoutes registers catalog routes.
func (h *CatalogHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/products", h.Products)
	rg.GET("/counterparties", h.Counterparties)
}
