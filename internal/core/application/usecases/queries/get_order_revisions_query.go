package queries

import (
	"errors"
	"time"

	"greenspace/internal/core/domain/model/kernel"
	"greenspace/internal/pkg/guard"
)

var (
	ErrGetOrderRevisionsQueryIsNotConstructed = errors.New(
		"GetOrderRevisionsQuery must be created via NewGetOrderRevisionsQuery constructor",
	)
)

// GetOrderRevisionsQuery retrieves the revision history of an order: every
// sketch and design batch submitted so far, oldest first. The customer uses
// it to browse and pick a revision; the designer uses it to see how many
// rework rounds remain.
type GetOrderRevisionsQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderRevisionsQuery creates a query for the given order identifier.
func NewGetOrderRevisionsQuery(orderID kernel.UUID) (GetOrderRevisionsQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderRevisionsQuery{}, err
	}

	return GetOrderRevisionsQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// OrderID returns the identifier of the order whose history is requested.
func (q GetOrderRevisionsQuery) OrderID() kernel.UUID {
	return q.orderID
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderRevisionsQueryIsNotConstructed if validation fails.
func (q GetOrderRevisionsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderRevisionsQueryIsNotConstructed)
}

// GetOrderRevisionsQueryResponse represents one revision record of an order.
type GetOrderRevisionsQueryResponse struct {
	ID         kernel.UUID
	Kind       string
	Phase      int
	Images     []string
	IsSelected bool
	CreatedAt  time.Time
}
