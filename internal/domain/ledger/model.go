// Package ledger defines the transactional records at the heart of the
// system: production entries and shipment entries, both kept in one ledger
// parametrized by kind.
package ledger

import (
	"jaego/internal/core/apperror"
	"jaego/internal/core/dateutil"
)

// Kind selects the ledger variant. It appears as a path segment on the wire.
type Kind string

const (
	KindProduction Kind = "production"
	KindShipment   Kind = "shipment"
)

// Valid reports whether k names a known ledger.
func (k Kind) Valid() bool {
	return k == KindProduction || k == KindShipment
}

// RequiresCounterparty reports whether records of this kind must reference a
// counterparty. Only shipments do.
func (k Kind) RequiresCounterparty() bool {
	return k == KindShipment
}

// CodePrefix is the prefix of server-assigned record ids for this kind.
func (k Kind) CodePrefix() string {
	if k == KindShipment {
		return "S"
	}
	return "P"
}

// Record is a persisted ledger entry as returned by list queries. List rows
// carry display names so the collaborator never joins client-side.
// counterpartyName is the canonical name field; no legacy alias is emitted.
type Record struct {
	ID               string        `db:"id" json:"id"`
	OccurredOn       dateutil.Date `db:"occurred_on" json:"occurredOn"`
	ProductCode      string        `db:"product_code" json:"productCode"`
	ProductName      string        `db:"product_name" json:"productName"`
	CounterpartyCode string        `db:"counterparty_code" json:"counterpartyCode,omitempty"`
	CounterpartyName string        `db:"counterparty_name" json:"counterpartyName,omitempty"`
	Quantity         int           `db:"quantity" json:"quantity"`
	Note             string        `db:"note" json:"note,omitempty"`
}

// NewRecord is the payload for creating a record. The id is server-assigned
// and absent until persisted.
type NewRecord struct {
	OccurredOn       dateutil.Date `json:"occurredOn"`
	ProductCode      string        `json:"productCode"`
	CounterpartyCode string        `json:"counterpartyCode,omitempty"`
	Quantity         int           `json:"quantity"`
	Note             string        `json:"note,omitempty"`
}

// Validate checks completeness for the given kind. Date, product and (for
// shipments) counterparty are required; quantity must be at least 1.
func (n NewRecord) Validate(kind Kind) error {
	if !n.OccurredOn.Valid() {
		return apperror.NewValidation("invalid date, expected YYYYMMDD").
			WithDetail("field", "occurredOn")
	}
	if n.ProductCode == "" {
		return ErrMissingProduct()
	}
	if kind.RequiresCounterparty() && n.CounterpartyCode == "" {
		return ErrMissingCounterparty()
	}
	if n.Quantity < 1 {
		return apperror.NewValidation("quantity must be at least 1").
			WithDetail("field", "quantity")
	}
	return nil
}

// Patch is a partial update. Quantity and note are the only mutable fields;
// date, product and counterparty are immutable post-creation.
type Patch struct {
	ID       string  `json:"id"`
	Quantity int     `json:"quantity"`
	Note     *string `json:"note,omitempty"`
}

// Validate checks the patch before it goes on the wire.
func (p Patch) Validate() error {
	if p.ID == "" {
		return apperror.NewValidation("record id is required").
			WithDetail("field", "id")
	}
	if p.Quantity < 1 {
		return apperror.NewValidation("quantity must be at least 1").
			WithDetail("field", "quantity")
	}
	return nil
}

// ErrMissingProduct is the validation failure for a draft without a product.
func ErrMissingProduct() *apperror.AppError {
	return apperror.NewValidation("product is not selected").
		WithDetail("field", "productCode")
}

// ErrMissingCounterparty is the validation failure for a shipment draft
// without a counterparty.
func ErrMissingCounterparty() *apperror.AppError {
	return apperror.NewValidation("counterparty is not selected").
		WithDetail("field", "counterpartyCode")
}
