package commands

import (
	"errors"

	"greenspace/internal/core/domain/model/kernel"
	"greenspace/internal/core/domain/model/order"
	"greenspace/internal/core/domain/model/worktask"
	"greenspace/internal/pkg/guard"
)

var (
	ErrAdvanceWorkTaskCommandIsNotConstructed = errors.New(
		"AdvanceWorkTaskCommand must be created via NewAdvanceWorkTaskCommand constructor",
	)
)

// AdvanceWorkTaskCommand represents a field worker reporting progress on an
// on-site task: starting the consultation or installation, finishing it, or
// marking the work for redo.
type AdvanceWorkTaskCommand struct { //nolint:recvcheck //using for validation
	taskID    kernel.UUID
	newStatus worktask.Status
	actor     order.Role
	note      *string

	guard guard.ConstructorGuard
}

// NewAdvanceWorkTaskCommand creates a command to advance a field task.
func NewAdvanceWorkTaskCommand(
	taskID kernel.UUID,
	newStatus worktask.Status,
	actor order.Role,
	note *string,
) (AdvanceWorkTaskCommand, error) {
	cmd := AdvanceWorkTaskCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setTaskID(taskID),
		cmd.setNewStatus(newStatus),
		cmd.setActor(actor),
	); err != nil {
		return AdvanceWorkTaskCommand{}, err
	}

	cmd.note = note
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AdvanceWorkTaskCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceWorkTaskCommandIsNotConstructed)
}

// TaskID returns the task to advance.
func (c AdvanceWorkTaskCommand) TaskID() kernel.UUID {
	return c.taskID
}

// NewStatus returns the reported task status.
func (c AdvanceWorkTaskCommand) NewStatus() worktask.Status {
	return c.newStatus
}

// Actor returns the role reporting the progress.
func (c AdvanceWorkTaskCommand) Actor() order.Role {
	return c.actor
}

// Note returns the worker's note, nil when absent.
func (c AdvanceWorkTaskCommand) Note() *string {
	return c.note
}

func (c *AdvanceWorkTaskCommand) setTaskID(taskID kernel.UUID) error {
	if err := taskID.Validate(); err != nil {
		return err
	}

	c.taskID = taskID
	return nil
}

func (c *AdvanceWorkTaskCommand) setNewStatus(newStatus worktask.Status) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}

	c.newStatus = newStatus
	return nil
}

func (c *AdvanceWorkTaskCommand) setActor(actor order.Role) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}
