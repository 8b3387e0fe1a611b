package commands

import (
	"context"

	"greenspace/internal/core/domain/model/order"
	"greenspace/internal/core/ports"
	"greenspace/internal/pkg/errs"
)

// StartShipmentCommandHandler registers a shipment with the external carrier
// and moves the order into Processing carrying the carrier's tracking code.
// On success the shipment tracker starts polling the carrier for the order.
type StartShipmentCommandHandler struct {
	uowFactory    OrderUoWFactory
	carrierClient ports.CarrierClient
	tracker       ports.ShipmentTracker
}

// NewStartShipmentCommandHandler creates a handler for shipment start
// operations.
func NewStartShipmentCommandHandler(
	uowFactory OrderUoWFactory,
	carrierClient ports.CarrierClient,
	tracker ports.ShipmentTracker,
) StartShipmentCommandHandler {
	return StartShipmentCommandHandler{
		uowFactory:    uowFactory,
		carrierClient: carrierClient,
		tracker:       tracker,
	}
}

// Handle processes the shipment start. The carrier call happens before the
// transaction opens; a carrier failure leaves the order untouched and is
// reported as an external service failure.
func (h *StartShipmentCommandHandler) Handle(ctx context.Context, cmd StartShipmentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	deliveryCode, err := h.carrierClient.CreateShipment(
		ctx,
		cmd.RecipientName(),
		cmd.RecipientPhone(),
		cmd.RecipientAddress(),
	)
	if err != nil {
		return errs.NewExternalServiceFailureError("carrier", err)
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	serviceOrder, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	err = serviceOrder.Apply(order.RoleSystem, order.Processing, order.Payload{
		DeliveryCode: &deliveryCode,
	})
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, serviceOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return h.tracker.Track(serviceOrder.ID())
}
