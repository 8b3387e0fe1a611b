package commands

import (
	"context"

	"greenspace/internal/core/domain/model/order"
	"greenspace/internal/core/ports"
	"greenspace/internal/pkg/errs"
)

// ReconcileShipmentCommandHandler performs one reconciliation tick. It asks
// the carrier for the shipment's current status, maps it into the canonical
// catalog, and applies the difference through the order state machine as the
// system actor.
//
// The handler is idempotent: when the carrier reports what the order already
// says, nothing is written. A carrier failure is returned as an external
// service failure and the caller retries on its own schedule; the last known
// order status is never dropped. ErrTrackingComplete tells the caller to
// stop polling this order.
type ReconcileShipmentCommandHandler struct {
	uowFactory    OrderUoWFactory
	carrierClient ports.CarrierClient
}

// NewReconcileShipmentCommandHandler creates a handler for reconciliation
// ticks.
func NewReconcileShipmentCommandHandler(
	uowFactory OrderUoWFactory,
	carrierClient ports.CarrierClient,
) ReconcileShipmentCommandHandler {
	return ReconcileShipmentCommandHandler{
		uowFactory:    uowFactory,
		carrierClient: carrierClient,
	}
}

// Handle processes one tick for the order's shipment.
func (h *ReconcileShipmentCommandHandler) Handle(ctx context.Context, cmd ReconcileShipmentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	serviceOrder, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if serviceOrder.DeliveryCode() == "" || !isTrackable(serviceOrder.Status()) {
		return ErrTrackingComplete
	}

	carrierStatus, err := h.carrierClient.Track(ctx, serviceOrder.DeliveryCode())
	if err != nil {
		return errs.NewExternalServiceFailureError("carrier", err)
	}

	mapped, err := carrierStatus.OrderStatus()
	if err != nil {
		return errs.NewExternalServiceFailureError("carrier", err)
	}

	if mapped == serviceOrder.Status() {
		return nil
	}

	if err = serviceOrder.Apply(order.RoleSystem, mapped, order.Payload{}); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, serviceOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if !isTrackable(serviceOrder.Status()) {
		return ErrTrackingComplete
	}
	return nil
}

// isTrackable reports whether the order is still on its shipping leg.
// DeliveredSuccessfully and the terminal statuses end the polling.
func isTrackable(status order.Status) bool {
	switch status {
	case order.Processing, order.PickedPackageAndDelivery, order.DeliveryFail, order.ReDelivery:
		return true
	default:
		return false
	}
}
