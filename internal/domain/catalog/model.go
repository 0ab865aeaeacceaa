// Package catalog provides the reference entities operators pick records
// against: products and counterparties. Both are immutable from the client's
// perspective; the backend owns their lifecycle.
package catalog

// Category classifies products. The codes come straight off the wire.
type Category string

const (
	// CategoryAll selects every category (empty query parameter).
	CategoryAll Category = ""
	// CategoryFinished is finished goods.
	CategoryFinished Category = "01"
	// CategoryMaterial is raw materials.
	CategoryMaterial Category = "02"
)

// Valid reports whether c is a known category selector.
func (c Category) Valid() bool {
	switch c {
	case CategoryAll, CategoryFinished, CategoryMaterial:
		return true
	}
	return false
}

// Product is a manufacturable item.
type Product struct {
	Code         string   `db:"code" json:"code"`
	Name         string   `db:"name" json:"name"`
	CategoryCode Category `db:"category_code" json:"categoryCode"`
}

// FilterFields implements the substring-search contract.
func (p Product) FilterFields() (code, name string) {
	return p.Code, p.Name
}

// Counterparty is a business partner records are shipped to.
type Counterparty struct {
	Code string `db:"code" json:"code"`
	Name string `db:"name" json:"name"`
}

// FilterFields implements the substring-search contract.
func (c Counterparty) FilterFields() (code, name string) {
	return c.Code, c.Name
}

// SalesCategory is the counterparty category the shipment flow selects
// from: sales counterparties only.
const SalesCategory Category = "01"
