package commands

import (
	"context"

	"greenspace/internal/core/domain/model/order"
	"greenspace/internal/core/ports"
)

// ApplyOrderTransitionCommandHandler handles direct lifecycle moves. The
// order aggregate enforces the transition graph, role authorization, and
// preconditions; the handler only persists the result and stops shipment
// tracking when the order reaches a terminal status.
type ApplyOrderTransitionCommandHandler struct {
	uowFactory OrderUoWFactory
	tracker    ports.ShipmentTracker
}

// NewApplyOrderTransitionCommandHandler creates a handler for direct
// transition operations. The tracker may be nil when shipment tracking is
// not wired, e.g. in tests.
func NewApplyOrderTransitionCommandHandler(
	uowFactory OrderUoWFactory,
	tracker ports.ShipmentTracker,
) ApplyOrderTransitionCommandHandler {
	return ApplyOrderTransitionCommandHandler{
		uowFactory: uowFactory,
		tracker:    tracker,
	}
}

// Handle processes the transition.
func (h *ApplyOrderTransitionCommandHandler) Handle(ctx context.Context, cmd ApplyOrderTransitionCommand) error {
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

	err = serviceOrder.Apply(cmd.Actor(), cmd.Target(), order.Payload{
		AccountantNote: cmd.AccountantNote(),
		MaterialPrice:  cmd.MaterialPrice(),
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

	if h.tracker != nil && serviceOrder.IsTerminated() {
		h.tracker.Cancel(serviceOrder.ID())
	}
	return nil
}
