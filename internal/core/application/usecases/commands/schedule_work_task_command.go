package commands

import (
	"errors"
	"time"

	"greenspace/internal/core/domain/model/kernel"
	"greenspace/internal/pkg/guard"
)

var (
	ErrScheduleWorkTaskCommandIsNotConstructed = errors.New(
		"ScheduleWorkTaskCommand must be created via NewScheduleWorkTaskCommand constructor",
	)
	ErrAppointmentIsRequired = errors.New("appointment time is required")
)

// ScheduleWorkTaskCommand represents the manager booking an on-site
// appointment for a designer or contractor. Booking again for the same order
// supersedes the previous task.
type ScheduleWorkTaskCommand struct { //nolint:recvcheck //using for validation
	taskID      kernel.UUID
	orderID     kernel.UUID
	userID      kernel.UUID
	appointment time.Time
	note        string

	guard guard.ConstructorGuard
}

// NewScheduleWorkTaskCommand creates a command to book a field task.
func NewScheduleWorkTaskCommand(
	taskID kernel.UUID,
	orderID kernel.UUID,
	userID kernel.UUID,
	appointment time.Time,
	note string,
) (ScheduleWorkTaskCommand, error) {
	cmd := ScheduleWorkTaskCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setTaskID(taskID),
		cmd.setOrderID(orderID),
		cmd.setUserID(userID),
		cmd.setAppointment(appointment),
	); err != nil {
		return ScheduleWorkTaskCommand{}, err
	}

	cmd.note = note
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ScheduleWorkTaskCommand) Validate() error {
	return c.guard.Validate(ErrScheduleWorkTaskCommandIsNotConstructed)
}

// TaskID returns the identifier for the new task.
func (c ScheduleWorkTaskCommand) TaskID() kernel.UUID {
	return c.taskID
}

// OrderID returns the order the task serves.
func (c ScheduleWorkTaskCommand) OrderID() kernel.UUID {
	return c.orderID
}

// UserID returns the assigned designer or contractor.
func (c ScheduleWorkTaskCommand) UserID() kernel.UUID {
	return c.userID
}

// Appointment returns the booked on-site time.
func (c ScheduleWorkTaskCommand) Appointment() time.Time {
	return c.appointment
}

// Note returns the booking note, possibly empty.
func (c ScheduleWorkTaskCommand) Note() string {
	return c.note
}

func (c *ScheduleWorkTaskCommand) setTaskID(taskID kernel.UUID) error {
	if err := taskID.Validate(); err != nil {
		return err
	}

	c.taskID = taskID
	return nil
}

func (c *ScheduleWorkTaskCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ScheduleWorkTaskCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}

func (c *ScheduleWorkTaskCommand) setAppointment(appointment time.Time) error {
	if appointment.IsZero() {
		return ErrAppointmentIsRequired
	}

	c.appointment = appointment
	return nil
}
