// Package stock provides the derived net-quantity view: production inflow
// minus shipment outflow, rolled up per product. Lines are recomputed on
// every fetch and never persisted client-side.
package stock

import (
	"context"

	"jaego/internal/domain/catalog"
)

// Line is one product's net stock position.
type Line struct {
	ProductCode  string           `db:"product_code" json:"productCode"`
	ProductName  string           `db:"product_name" json:"productName"`
	CategoryCode catalog.Category `db:"category_code" json:"categoryCode"`
	NetQuantity  int              `db:"net_quantity" json:"netQuantity"`
}

// FilterFields implements the substring-search contract.
func (l Line) FilterFields() (code, name string) {
	return l.ProductCode, l.ProductName
}

// InStock reports whether the product has positive stock. Presentation
// classification only; it gates nothing.
func (l Line) InStock() bool {
	return l.NetQuantity > 0
}

// Repository defines the server-side rollup query.
type Repository interface {
	// List returns the point-in-time net position per product, optionally
	// limited to a category. Products without movements appear with zero.
	List(ctx context.Context, category catalog.Category) ([]Line, error)
}
