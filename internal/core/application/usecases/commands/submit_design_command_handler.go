package commands

import (
	"context"

	"greenspace/internal/core/domain/model/order"
	"greenspace/internal/core/domain/model/revision"
	"greenspace/internal/core/domain/services"
)

// SubmitDesignCommandHandler handles a designer's detailed-design
// submission. A design phase is consumed through the RevisionPhaseTracker
// and the order enters DeterminingMaterialPrice carrying the submitted line
// items.
type SubmitDesignCommandHandler struct {
	uowFactory OrderRevisionUoWFactory
	tracker    services.RevisionPhaseTracker
}

// NewSubmitDesignCommandHandler creates a handler for design submissions.
func NewSubmitDesignCommandHandler(uowFactory OrderRevisionUoWFactory) SubmitDesignCommandHandler {
	return SubmitDesignCommandHandler{
		uowFactory: uowFactory,
		tracker:    services.NewRevisionPhaseTracker(),
	}
}

// Handle processes the design submission. The new revision record and the
// order's status change persist in one transaction.
func (h *SubmitDesignCommandHandler) Handle(ctx context.Context, cmd SubmitDesignCommand) error {
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

	history, err := uow.RevisionRepository().GetAllForOrder(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	result, err := h.tracker.Submit(cmd.OrderID(), revision.KindDesign, cmd.Images(), history)
	if err != nil {
		return err
	}

	err = serviceOrder.Apply(order.RoleDesigner, order.DeterminingMaterialPrice, order.Payload{
		Details: cmd.Details(),
	})
	if err != nil {
		return err
	}

	if err = uow.RevisionRepository().Add(ctx, result.Record); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, serviceOrder); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
