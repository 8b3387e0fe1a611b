// Package carrier defines the external shipping carrier's status vocabulary
// and its mapping into the canonical order status catalog.
//
// The carrier's wire format is out of scope; only the status strings it
// reports and their canonical meaning are modelled here. Reconciliation is
// the process of translating a reported carrier status into a canonical
// order status and applying it through the order state machine.
package carrier

import (
	"fmt"

	"greenspace/internal/core/domain/model/order"
	"greenspace/internal/pkg/errs"
)

// Status is one of the six states the carrier reports for a tracking code.
type Status string

const (
	// StatusReadyToPick means the carrier accepted the package for pickup.
	StatusReadyToPick Status = "ready_to_pick"

	// StatusDelivering means the package is on its way.
	StatusDelivering Status = "delivering"

	// StatusDeliveryFail means a delivery attempt failed.
	StatusDeliveryFail Status = "delivery_fail"

	// StatusReturn means the package is being returned for another attempt.
	StatusReturn Status = "return"

	// StatusDelivered means the package arrived.
	StatusDelivered Status = "delivered"

	// StatusCancel means the shipment was cancelled.
	StatusCancel Status = "cancel"
)

// orderStatusByCarrier is the fixed reconciliation table from the carrier's
// vocabulary into the canonical catalog.
func orderStatusByCarrier() map[Status]order.Status {
	return map[Status]order.Status{
		StatusReadyToPick:  order.Processing,
		StatusDelivering:   order.PickedPackageAndDelivery,
		StatusDeliveryFail: order.DeliveryFail,
		StatusReturn:       order.ReDelivery,
		StatusDelivered:    order.DeliveredSuccessfully,
		StatusCancel:       order.OrderCancelled,
	}
}

// Validate checks that the Status is one of the six reported states.
func (s Status) Validate() error {
	if _, ok := orderStatusByCarrier()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"carrier status",
			fmt.Errorf("%q is not a known carrier status", string(s)),
		)
	}
	return nil
}

// String returns the carrier's wire name for the status.
func (s Status) String() string {
	return string(s)
}

// OrderStatus maps the carrier status into the canonical order status.
func (s Status) OrderStatus() (order.Status, error) {
	mapped, ok := orderStatusByCarrier()[s]
	if !ok {
		return order.Unknown, s.Validate()
	}
	return mapped, nil
}
