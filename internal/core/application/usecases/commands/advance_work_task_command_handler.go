package commands

import (
	"context"
	"time"

	"greenspace/internal/core/domain/services"
)

// AdvanceWorkTaskCommandHandler handles a field worker's progress report.
// The WorkTaskCoordinator moves the task and the owning order together; the
// handler persists both under one transaction so the pair never diverges.
type AdvanceWorkTaskCommandHandler struct {
	uowFactory  OrderTaskUoWFactory
	coordinator services.WorkTaskCoordinator
}

// NewAdvanceWorkTaskCommandHandler creates a handler for task progress
// operations.
func NewAdvanceWorkTaskCommandHandler(uowFactory OrderTaskUoWFactory) AdvanceWorkTaskCommandHandler {
	return AdvanceWorkTaskCommandHandler{
		uowFactory:  uowFactory,
		coordinator: services.NewWorkTaskCoordinator(),
	}
}

// Handle processes the progress report.
func (h *AdvanceWorkTaskCommandHandler) Handle(ctx context.Context, cmd AdvanceWorkTaskCommand) error {
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

	task, err := uow.WorkTaskRepository().Get(ctx, cmd.TaskID())
	if err != nil {
		return err
	}

	serviceOrder, err := uow.OrderRepository().Get(ctx, task.ServiceOrderID())
	if err != nil {
		return err
	}

	err = h.coordinator.Advance(task, serviceOrder, cmd.NewStatus(), cmd.Actor(), time.Now().UTC())
	if err != nil {
		return err
	}

	if cmd.Note() != nil {
		task.SetNote(*cmd.Note())
	}

	if err = uow.WorkTaskRepository().Update(ctx, task); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, serviceOrder); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
