package ports

import (
	"greenspace/internal/core/domain/model/kernel"
)

// ShipmentTracker schedules and cancels the periodic carrier reconciliation
// for individual orders. Implemented by the jobs layer.
type ShipmentTracker interface {
	// Track starts polling the carrier for the order's shipment. Tracking an
	// already tracked order is a no-op.
	Track(serviceOrderID kernel.UUID) error

	// Cancel stops polling for the order. Cancelling an untracked order is a
	// no-op.
	Cancel(serviceOrderID kernel.UUID)
}
