package commands

import (
	"context"

	"greenspace/internal/core/domain/services"
)

// ReviewDesignPriceCommandHandler applies the manager's price verdict
// through the PriceApprovalGate: approval moves the order to
// DoneDeterminingDesignPrice, rejection to ReDeterminingDesignPrice with the
// rationale attached.
type ReviewDesignPriceCommandHandler struct {
	uowFactory OrderUoWFactory
	gate       services.PriceApprovalGate
}

// NewReviewDesignPriceCommandHandler creates a handler for price review
// operations.
func NewReviewDesignPriceCommandHandler(uowFactory OrderUoWFactory) ReviewDesignPriceCommandHandler {
	return ReviewDesignPriceCommandHandler{
		uowFactory: uowFactory,
		gate:       services.NewPriceApprovalGate(),
	}
}

// Handle processes the manager's verdict.
func (h *ReviewDesignPriceCommandHandler) Handle(ctx context.Context, cmd ReviewDesignPriceCommand) error {
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

	if cmd.Approved() {
		err = h.gate.Approve(serviceOrder)
	} else {
		err = h.gate.Reject(serviceOrder, cmd.Rationale())
	}
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, serviceOrder); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
