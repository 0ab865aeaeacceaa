package handlers

import (
	"github.com/gin-gonic/gin"

	"jaego/internal/core/apperror"
	"jaego/internal/domain/catalog"
	"jaego/internal/domain/stock"
)

// StockHandler serves the net-quantity rollup.
type StockHandler struct {
	*BaseHandler
	repo stock.Repository
}

// NewStockHandler creates a stock handler.
func NewStockHandler(base *BaseHandler, repo stock.Repository) *StockHandler {
	return &StockHandler{BaseHandler: base, repo: repo}
}

// List handles GET /stock/list
func (h *StockHandler) List(c *gin.Context) {
	category := catalog.Category(c.Query("category"))
	if !category.Valid() {
		h.Error(c, apperror.NewValidation("unknown category").
			WithDetail("category", string(category)))
		return
	}

	lines, err := h.repo.List(c.Request.Context(), category)
	if err != nil {
		h.Error(c, err)
		return
	}
	if lines == nil {
		lines = []stock.Line{}
	}
	h.OK(c, lines)
}

// RegisterRoutes registers stock routes.
func (h *StockHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/list", h.List)
}
