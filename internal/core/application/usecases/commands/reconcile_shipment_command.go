package commands

import (
	"errors"

	"greenspace/internal/core/domain/model/kernel"
	"greenspace/internal/pkg/guard"
)

var (
	ErrReconcileShipmentCommandIsNotConstructed = errors.New(
		"ReconcileShipmentCommand must be created via NewReconcileShipmentCommand constructor",
	)

	// ErrTrackingComplete signals that the shipment needs no further polling:
	// the order reached the end of its shipping leg or left the shipping
	// statuses entirely. The tracker removes the order's entry on seeing it.
	ErrTrackingComplete = errors.New("shipment tracking complete")
)

// ReconcileShipmentCommand represents one reconciliation tick for an order's
// shipment: ask the carrier, map the answer into the canonical catalog, and
// absorb any difference.
type ReconcileShipmentCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewReconcileShipmentCommand creates a command to reconcile one order's
// shipment status.
func NewReconcileShipmentCommand(orderID kernel.UUID) (ReconcileShipmentCommand, error) {
	cmd := ReconcileShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return ReconcileShipmentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ReconcileShipmentCommand) Validate() error {
	return c.guard.Validate(ErrReconcileShipmentCommandIsNotConstructed)
}

// OrderID returns the order whose shipment is reconciled.
func (c ReconcileShipmentCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *ReconcileShipmentCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
