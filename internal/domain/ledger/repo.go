package ledger

import (
	"context"

	"jaego/internal/core/dateutil"
)

// Repository defines server-side persistence for ledger records.
type Repository interface {
	// List returns records of the given kind whose occurredOn falls inside
	// the window, bounds inclusive.
	List(ctx context.Context, kind Kind, window dateutil.Window) ([]Record, error)

	// Insert persists a new record under the given server-assigned id.
	Insert(ctx context.Context, kind Kind, id string, rec NewRecord) error

	// Update applies a partial update. Returns a not-found error when the id
	// does not exist for this kind.
	Update(ctx context.Context, kind Kind, patch Patch) error

	// Delete removes a record. Returns a not-found error when the id does
	// not exist for this kind.
	Delete(ctx context.Context, kind Kind, id string) error
}
