// Package ports defines the contracts between the escrow core and
// infrastructure: persistence, the external token ledger, event publishing,
// and time. These interfaces enable dependency inversion and testability.
package ports

import (
	"context"

	"coldchain/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
//
// Orders are never deleted; a settled order stays behind as an immutable
// audit record.
type OrderRepository interface {
	// NextID reserves the next order identifier. Identifiers come from a
	// single monotonic sequence and are never reused, even when the
	// surrounding transaction rolls back.
	NextID(ctx context.Context) (order.ID, error)

	// Add persists a new order aggregate under its reserved identifier.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by its identifier.
	// Returns an ObjectNotFoundError for an unknown id.
	Get(ctx context.Context, id order.ID) (*order.Order, error)

	// GetForUpdate retrieves an order and locks its row for the duration
	// of the surrounding transaction. Every lifecycle transition loads
	// through this method so that the state check and the mutation form
	// one atomic step and no transition reads stale state.
	GetForUpdate(ctx context.Context, id order.ID) (*order.Order, error)
}
