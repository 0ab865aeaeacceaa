package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"jaego/internal/core/apperror"
	"jaego/internal/core/dateutil"
	"jaego/internal/domain/ledger"
)

// LedgerService is the business-logic dependency of the ledger handler.
// Implemented by ledger.Service; narrowed here so tests can fake it.
type LedgerService interface {
	List(ctx context.Context, kind ledger.Kind, window dateutil.Window) ([]ledger.Record, error)
	Create(ctx context.Context, kind ledger.Kind, rec ledger.NewRecord) (string, error)
	Update(ctx context.Context, kind ledger.Kind, patch ledger.Patch) error
	Delete(ctx context.Context, kind ledger.Kind, id string) error
}

// LedgerHandler serves both ledgers; the kind is a path segment, so the
// production and shipment flows share every route.
type LedgerHandler struct {
	*BaseHandler
	service LedgerService
}

// NewLedgerHandler creates a ledger handler.
func NewLedgerHandler(base *BaseHandler, service LedgerService) *LedgerHandler {
	return &LedgerHandler{BaseHandler: base, service: service}
}

// List handles GET /ledger/:kind/list
func (h *LedgerHandler) List(c *gin.Context) {
	kind, ok := h.kind(c)
	if !ok {
		return
	}

	from, err := dateutil.Parse(c.Query("from"))
	if err != nil {
		h.Error(c, err)
		return
	}
	to, err := dateutil.Parse(c.Query("to"))
	if err != nil {
		h.Error(c, err)
		return
	}

	records, err := h.service.List(c.Request.Context(), kind, dateutil.NewWindow(from, to))
	if err != nil {
		h.Error(c, err)
		return
	}
	if records == nil {
		records = []ledger.Record{}
	}
	h.OK(c, records)
}

// Insert handles POST /ledger/:kind/insert
func (h *LedgerHandler) Insert(c *gin.Context) {
	kind, ok := h.kind(c)
	if !ok {
		return
	}

	var rec ledger.NewRecord
	if !h.BindJSON(c, &rec) {
		return
	}

	id, err := h.service.Create(c.Request.Context(), kind, rec)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.Created(c, id)
}

// Update handles PUT /ledger/:kind/update
func (h *LedgerHandler) Update(c *gin.Context) {
	kind, ok := h.kind(c)
	if !ok {
		return
	}

	var patch ledger.Patch
	if !h.BindJSON(c, &patch) {
		return
	}

	if err := h.service.Update(c.Request.Context(), kind, patch); err != nil {
		h.Error(c, err)
		return
	}
	h.NoContent(c)
}

// Delete handles DELETE /ledger/:kind/delete
func (h *LedgerHandler) Delete(c *gin.Context) {
	kind, ok := h.kind(c)
	if !ok {
		return
	}

	id := c.Query("id")
	if id == "" {
		h.Error(c, apperror.NewValidation("id is required"))
		return
	}

	if err := h.service.Delete(c.Request.Context(), kind, id); err != nil {
		h.Error(c, err)
		return
	}
	h.NoContent(c)
}

func (h *LedgerHandler) kind(c *gin.Context) (ledger.Kind, bool) {
	kind := ledger.Kind(c.Param("kind"))
	if !kind.Valid() {
		h.Error(c, apperror.NewValidation("unknown ledger kind").
			WithDetail("kind", string(kind)))
		return "", false
	}
	return kind, true
}

// RegisterRoutes registers ledger routes under /ledger/:kind.
func (h *LedgerHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/list", h.List)
	rg.POST("/insert", h.Insert)
	rg.PUT("/update", h.Update)
	rg.DELETE("/delete", h.Delete)
}
