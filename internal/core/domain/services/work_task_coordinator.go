package services

import (
	"fmt"
	"time"

	"greenspace/internal/core/domain/model/order"
	"greenspace/internal/core/domain/model/worktask"
	"greenspace/internal/pkg/errs"
)

// AppointmentWindow is how long after the booked appointment an on-site
// action may still start.
const AppointmentWindow = 30 * time.Minute

// WorkTaskCoordinator keeps a field WorkTask and its owning ServiceOrder
// changing together. Every advanceable task status maps to exactly one order
// status; Advance either mutates both aggregates or neither.
//
// The coordinator only mutates in memory. The command handler persists both
// aggregates through a single unit of work so the pair never diverges in
// storage either.
type WorkTaskCoordinator struct{}

// NewWorkTaskCoordinator creates a new WorkTaskCoordinator instance.
func NewWorkTaskCoordinator() WorkTaskCoordinator {
	return WorkTaskCoordinator{}
}

// orderStatusByTaskStatus is the canonical coupling table. Task statuses
// absent here (Assigned) never advance the order.
func orderStatusByTaskStatus() map[worktask.Status]order.Status {
	return map[worktask.Status]order.Status{
		worktask.Consulting:     order.ConsultingAndSketching,
		worktask.DoneConsulting: order.DeterminingDesignPrice,
		worktask.Completed:      order.Successfully,
		worktask.Installing:     order.Installing,
		worktask.DoneInstalling: order.DoneInstalling,
		worktask.ReInstall:      order.ReInstall,
	}
}

// OrderStatusFor returns the order status coupled to a task status, and
// whether the task status advances the order at all.
func (c WorkTaskCoordinator) OrderStatusFor(taskStatus worktask.Status) (order.Status, bool) {
	mapped, ok := orderStatusByTaskStatus()[taskStatus]
	return mapped, ok
}

// Advance moves the task to newStatus and the owning order to the coupled
// order status in one in-memory mutation. On any failure neither aggregate
// changes. An order already at the coupled status is left alone, so a task
// can catch up with an order another flow advanced first.
//
// On-site starts (Consulting, Installing) are only permitted within
// [appointment, appointment+AppointmentWindow]; outside that range the
// action is rejected with OutsideAppointmentWindowError before the order
// state machine is consulted.
func (c WorkTaskCoordinator) Advance(
	task *worktask.WorkTask,
	serviceOrder *order.ServiceOrder,
	newStatus worktask.Status,
	actor order.Role,
	now time.Time,
) error {
	if err := task.Validate(); err != nil {
		return err
	}
	if err := serviceOrder.Validate(); err != nil {
		return err
	}
	if err := newStatus.Validate(); err != nil {
		return err
	}

	if !task.ServiceOrderID().IsEqual(serviceOrder.ID()) {
		return errs.NewPreconditionFailedError(
			fmt.Sprintf("work task %s does not belong to order %s", task.ID(), serviceOrder.ID()),
		)
	}

	if newStatus.IsOnSiteStart() {
		windowStart := task.Appointment()
		windowEnd := windowStart.Add(AppointmentWindow)
		if now.Before(windowStart) || now.After(windowEnd) {
			return errs.NewOutsideAppointmentWindowError(windowStart, windowEnd)
		}
	}

	mapped, ok := orderStatusByTaskStatus()[newStatus]
	if !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"task status",
			fmt.Errorf("%s does not advance the order", newStatus),
		)
	}

	// The order transition carries the authorization and precondition
	// checks; the task only changes after the order accepted the move.
	// When the order already sits at the coupled status (a sketch
	// submission may have moved it there ahead of the task) only the
	// task advances.
	if serviceOrder.Status() != mapped {
		if err := serviceOrder.Apply(actor, mapped, order.Payload{}); err != nil {
			return err
		}
	}
	return task.ChangeStatus(newStatus)
}
