package commands

import (
	"context"

	"greenspace/internal/core/domain/services"
)

// SelectRevisionCommandHandler marks one revision record as the customer's
// final pick. The single-selection invariant is enforced by the
// RevisionPhaseTracker: picking a record clears the flag on every other
// record of the same kind, and all touched records persist in one
// transaction.
type SelectRevisionCommandHandler struct {
	uowFactory RevisionUoWFactory
	tracker    services.RevisionPhaseTracker
}

// NewSelectRevisionCommandHandler creates a handler for revision selection.
func NewSelectRevisionCommandHandler(uowFactory RevisionUoWFactory) SelectRevisionCommandHandler {
	return SelectRevisionCommandHandler{
		uowFactory: uowFactory,
		tracker:    services.NewRevisionPhaseTracker(),
	}
}

// Handle processes the selection.
func (h *SelectRevisionCommandHandler) Handle(ctx context.Context, cmd SelectRevisionCommand) error {
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

	history, err := uow.RevisionRepository().GetAllForOrder(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = h.tracker.Select(history, cmd.RecordID()); err != nil {
		return err
	}

	for _, record := range history {
		if err = uow.RevisionRepository().Update(ctx, record); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
