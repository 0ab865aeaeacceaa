package catalog

import "context"

// Repository defines server-side persistence for the catalog.
type Repository interface {
	// ListProducts returns products, optionally limited to a category.
	ListProducts(ctx context.Context, category Category) ([]Product, error)

	// ListCounterparties returns counterparties, optionally limited to a
	// category (the shipment flow asks for SalesCategory).
	ListCounterparties(ctx context.Context, category Category) ([]Counterparty, error)
}
