package commands

import (
	"errors"

	"greenspace/internal/core/domain/model/kernel"
	"greenspace/internal/pkg/guard"
)

var (
	ErrSelectRevisionCommandIsNotConstructed = errors.New(
		"SelectRevisionCommand must be created via NewSelectRevisionCommand constructor",
	)
)

// SelectRevisionCommand represents the customer's final pick among the
// revision records of an order.
type SelectRevisionCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	recordID kernel.UUID

	guard guard.ConstructorGuard
}

// NewSelectRevisionCommand creates a command to mark a revision record as
// the customer's pick.
func NewSelectRevisionCommand(orderID, recordID kernel.UUID) (SelectRevisionCommand, error) {
	cmd := SelectRevisionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setRecordID(recordID),
	); err != nil {
		return SelectRevisionCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SelectRevisionCommand) Validate() error {
	return c.guard.Validate(ErrSelectRevisionCommandIsNotConstructed)
}

// OrderID returns the order whose history is being picked from.
func (c SelectRevisionCommand) OrderID() kernel.UUID {
	return c.orderID
}

// RecordID returns the picked revision record.
func (c SelectRevisionCommand) RecordID() kernel.UUID {
	return c.recordID
}

func (c *SelectRevisionCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *SelectRevisionCommand) setRecordID(recordID kernel.UUID) error {
	if err := recordID.Validate(); err != nil {
		return err
	}

	c.recordID = recordID
	return nil
}
