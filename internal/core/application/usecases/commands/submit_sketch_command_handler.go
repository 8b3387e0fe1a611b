package commands

import (
	"context"

	"greenspace/internal/core/domain/model/order"
	"greenspace/internal/core/domain/services"
	"greenspace/internal/pkg/errs"
)

// SubmitSketchCommandHandler handles a designer's sketch and price
// submission. The PriceApprovalGate decides whether the submission is the
// first proposal or a resubmission after rejection; either way a new sketch
// phase is consumed and the order enters DeterminingDesignPrice.
type SubmitSketchCommandHandler struct {
	uowFactory OrderRevisionUoWFactory
	gate       services.PriceApprovalGate
}

// NewSubmitSketchCommandHandler creates a handler for sketch submissions.
func NewSubmitSketchCommandHandler(uowFactory OrderRevisionUoWFactory) SubmitSketchCommandHandler {
	return SubmitSketchCommandHandler{
		uowFactory: uowFactory,
		gate:       services.NewPriceApprovalGate(),
	}
}

// Handle processes the sketch submission. The new revision record and the
// order's status change persist in one transaction.
func (h *SubmitSketchCommandHandler) Handle(ctx context.Context, cmd SubmitSketchCommand) error {
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

	var result services.SubmitResult
	if serviceOrder.Status() == order.ReDeterminingDesignPrice {
		result, err = h.gate.Resubmit(serviceOrder, history, cmd.Adjustment(), cmd.Price(), cmd.Images())
	} else {
		if cmd.Adjustment() != services.AdjustmentBoth {
			return errs.NewPreconditionFailedError("only a rejected proposal can be partially adjusted")
		}
		result, err = h.gate.Propose(serviceOrder, history, cmd.Images(), *cmd.Price(), cmd.Report())
	}
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
