package commands

import (
	"context"

	"greenspace/internal/core/domain/model/order"
	"greenspace/internal/core/domain/model/worktask"
	"greenspace/internal/pkg/errs"
)

// ScheduleWorkTaskCommandHandler books a field task for an order. A Pending
// order moves to WaitForScheduling in the same transaction so the booking
// is visible in the order's lifecycle.
type ScheduleWorkTaskCommandHandler struct {
	uowFactory OrderTaskUoWFactory
}

// NewScheduleWorkTaskCommandHandler creates a handler for task booking
// operations.
func NewScheduleWorkTaskCommandHandler(uowFactory OrderTaskUoWFactory) ScheduleWorkTaskCommandHandler {
	return ScheduleWorkTaskCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the booking.
func (h *ScheduleWorkTaskCommandHandler) Handle(ctx context.Context, cmd ScheduleWorkTaskCommand) error {
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

	if serviceOrder.IsTerminated() {
		return errs.NewPreconditionFailedError("order lifecycle is finished")
	}

	task, err := worktask.NewWorkTask(
		cmd.TaskID(),
		cmd.OrderID(),
		cmd.UserID(),
		cmd.Appointment(),
		cmd.Note(),
	)
	if err != nil {
		return err
	}

	if err = uow.WorkTaskRepository().Add(ctx, task); err != nil {
		return err
	}

	if serviceOrder.Status() == order.Pending {
		if err = serviceOrder.Apply(order.RoleManager, order.WaitForScheduling, order.Payload{}); err != nil {
			return err
		}
		if err = uow.OrderRepository().Update(ctx, serviceOrder); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
