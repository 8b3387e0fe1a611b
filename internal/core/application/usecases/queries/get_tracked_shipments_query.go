package queries

import (
	"errors"

	"greenspace/internal/core/domain/model/kernel"
	"greenspace/internal/pkg/guard"
)

var (
	ErrGetTrackedShipmentsQueryIsNotConstructed = errors.New(
		"GetTrackedShipmentsQuery must be created via NewGetTrackedShipmentsQuery constructor",
	)
)

// GetTrackedShipmentsQuery retrieves all orders currently on their shipping
// leg with an assigned carrier tracking code. Used by the operations
// dashboard and mirrors the set of orders the shipment tracker polls.
//
// Example:
//
//	query := NewGetTrackedShipmentsQuery()
//	handler := NewGetTrackedShipmentsQueryHandler(db)
//
//	shipments, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get shipments: %w", err)
//	}
//
//	fmt.Printf("%d shipments in flight\n", len(shipments))
type GetTrackedShipmentsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetTrackedShipmentsQuery creates a query to retrieve in-flight
// shipments. This is a parameterless query.
func NewGetTrackedShipmentsQuery() GetTrackedShipmentsQuery {
	return GetTrackedShipmentsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetTrackedShipmentsQueryIsNotConstructed if validation fails.
func (q GetTrackedShipmentsQuery) Validate() error {
	return q.guard.Validate(ErrGetTrackedShipmentsQueryIsNotConstructed)
}

// GetTrackedShipmentsQueryResponse represents one in-flight shipment.
type GetTrackedShipmentsQueryResponse struct {
	ID           kernel.UUID
	Status       string
	DeliveryCode string
}
