package queries

import (
	"errors"

	"greenspace/internal/core/domain/model/kernel"
	"greenspace/internal/pkg/guard"
)

var (
	ErrGetServiceOrderQueryIsNotConstructed = errors.New(
		"GetServiceOrderQuery must be created via NewGetServiceOrderQuery constructor",
	)
)

// GetServiceOrderQuery retrieves a single service order with its material
// line items. Used by the order detail endpoint where every role reads the
// current state of an engagement.
//
// Example:
//
//	query, err := NewGetServiceOrderQuery(orderID)
//	if err != nil {
//	    return err
//	}
//	handler := NewGetServiceOrderQueryHandler(db)
//
//	detail, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get order: %w", err)
//	}
//
//	fmt.Printf("Order %s is %s\n", detail.ID, detail.Status)
type GetServiceOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetServiceOrderQuery creates a query for the given order identifier.
func NewGetServiceOrderQuery(orderID kernel.UUID) (GetServiceOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetServiceOrderQuery{}, err
	}

	return GetServiceOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// OrderID returns the identifier of the order to retrieve.
func (q GetServiceOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetServiceOrderQueryIsNotConstructed if validation fails.
func (q GetServiceOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetServiceOrderQueryIsNotConstructed)
}

// GetServiceOrderQueryResponse represents the full read model of a service
// order: lifecycle position, pricing, role notes, and material line items.
type GetServiceOrderQueryResponse struct {
	ID               kernel.UUID
	ServiceType      string
	Status           string
	DesignPrice      int64
	MaterialPrice    int64
	Report           string
	ReportManager    string
	ReportAccountant string
	DeliveryCode     string
	LineItems        []LineItemResponse
}

// LineItemResponse represents one material line of an order.
type LineItemResponse struct {
	ProductID kernel.UUID
	Quantity  int
	UnitPrice int64
}
