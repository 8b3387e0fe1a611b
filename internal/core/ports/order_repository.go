package ports

import (
	"context"

	"greenspace/internal/core/domain/model/kernel"
	"greenspace/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for ServiceOrder
// aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	Add(ctx context.Context, aggregate *order.ServiceOrder) error

	// Update persists changes to an existing order aggregate.
	Update(ctx context.Context, aggregate *order.ServiceOrder) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.ServiceOrder, error)

	// GetAllInShipping retrieves every order currently in a shipping status
	// with an assigned delivery code. Used to seed the shipment tracker on
	// boot.
	GetAllInShipping(ctx context.Context) ([]*order.ServiceOrder, error)
}
