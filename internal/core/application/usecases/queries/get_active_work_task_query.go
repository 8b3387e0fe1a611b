package queries

import (
	"errors"
	"time"

	"greenspace/internal/core/domain/model/kernel"
	"greenspace/internal/pkg/guard"
)

var (
	ErrGetActiveWorkTaskQueryIsNotConstructed = errors.New(
		"GetActiveWorkTaskQuery must be created via NewGetActiveWorkTaskQuery constructor",
	)
)

// GetActiveWorkTaskQuery retrieves the active field task of an order: the
// most recently booked appointment. Earlier bookings for the same order are
// superseded and not returned.
type GetActiveWorkTaskQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetActiveWorkTaskQuery creates a query for the given order identifier.
func NewGetActiveWorkTaskQuery(orderID kernel.UUID) (GetActiveWorkTaskQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetActiveWorkTaskQuery{}, err
	}

	return GetActiveWorkTaskQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// OrderID returns the identifier of the order whose task is requested.
func (q GetActiveWorkTaskQuery) OrderID() kernel.UUID {
	return q.orderID
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetActiveWorkTaskQueryIsNotConstructed if validation fails.
func (q GetActiveWorkTaskQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveWorkTaskQueryIsNotConstructed)
}

// GetActiveWorkTaskQueryResponse represents the active field task of an
// order.
type GetActiveWorkTaskQueryResponse struct {
	ID          kernel.UUID
	UserID      kernel.UUID
	Appointment time.Time
	Status      string
	Note        string
	CreatedAt   time.Time
}
