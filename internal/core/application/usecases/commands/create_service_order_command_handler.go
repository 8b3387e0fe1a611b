package commands

import (
	"context"

	"greenspace/internal/core/domain/model/kernel"
	"greenspace/internal/core/domain/model/order"
	"greenspace/internal/core/domain/model/revision"
)

// CreateServiceOrderCommandHandler handles the business logic for order
// creation. New orders start in Pending status; the customer's reference
// images, when present, are stored as the phase-0 sketch record.
type CreateServiceOrderCommandHandler struct {
	uowFactory OrderRevisionUoWFactory
}

// NewCreateServiceOrderCommandHandler creates a handler for order creation
// operations.
func NewCreateServiceOrderCommandHandler(uowFactory OrderRevisionUoWFactory) CreateServiceOrderCommandHandler {
	return CreateServiceOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command.
// Uses a transaction so the order and its phase-0 record persist together.
func (h *CreateServiceOrderCommandHandler) Handle(ctx context.Context, cmd CreateServiceOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	serviceOrder, err := order.NewServiceOrder(cmd.OrderID(), cmd.ServiceType())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, serviceOrder); err != nil {
		return err
	}

	if len(cmd.ReferenceImages()) > 0 {
		reference, recordErr := revision.NewRecord(
			kernel.NewUUID(),
			serviceOrder.ID(),
			revision.KindSketch,
			0,
			cmd.ReferenceImages(),
		)
		if recordErr != nil {
			return recordErr
		}

		if err = uow.RevisionRepository().Add(ctx, reference); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
