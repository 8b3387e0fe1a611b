package commands

import (
	"errors"

	"greenspace/internal/core/domain/model/kernel"
	"greenspace/internal/core/domain/model/order"
	"greenspace/internal/pkg/guard"
)

var (
	ErrApplyOrderTransitionCommandIsNotConstructed = errors.New(
		"ApplyOrderTransitionCommand must be created via NewApplyOrderTransitionCommand constructor",
	)
)

// ApplyOrderTransitionCommand represents a direct lifecycle move requested
// by an actor: deposit confirmation, cancellation, customer confirmation and
// the other transitions that carry no sketch, task, or shipment side effect.
type ApplyOrderTransitionCommand struct { //nolint:recvcheck //using for validation
	orderID        kernel.UUID
	actor          order.Role
	target         order.Status
	accountantNote *string
	materialPrice  *kernel.Money

	guard guard.ConstructorGuard
}

// NewApplyOrderTransitionCommand creates a command to move an order to the
// target status on behalf of the actor. The accountant note and material
// price override are optional.
func NewApplyOrderTransitionCommand(
	orderID kernel.UUID,
	actor order.Role,
	target order.Status,
	accountantNote *string,
	materialPrice *kernel.Money,
) (ApplyOrderTransitionCommand, error) {
	cmd := ApplyOrderTransitionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActor(actor),
		cmd.setTarget(target),
	); err != nil {
		return ApplyOrderTransitionCommand{}, err
	}

	cmd.accountantNote = accountantNote
	cmd.materialPrice = materialPrice
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ApplyOrderTransitionCommand) Validate() error {
	return c.guard.Validate(ErrApplyOrderTransitionCommandIsNotConstructed)
}

// OrderID returns the order to move.
func (c ApplyOrderTransitionCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Actor returns the role driving the transition.
func (c ApplyOrderTransitionCommand) Actor() order.Role {
	return c.actor
}

// Target returns the requested status.
func (c ApplyOrderTransitionCommand) Target() order.Status {
	return c.target
}

// AccountantNote returns the accountant's note, nil when absent.
func (c ApplyOrderTransitionCommand) AccountantNote() *string {
	return c.accountantNote
}

// MaterialPrice returns the material price override, nil when absent.
func (c ApplyOrderTransitionCommand) MaterialPrice() *kernel.Money {
	return c.materialPrice
}

func (c *ApplyOrderTransitionCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ApplyOrderTransitionCommand) setActor(actor order.Role) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *ApplyOrderTransitionCommand) setTarget(target order.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}

	c.target = target
	return nil
}
