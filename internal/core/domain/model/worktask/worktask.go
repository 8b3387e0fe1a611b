// Package worktask contains the WorkTask aggregate: a scheduled, assignee-owned
// field activity (consultation or installation) tied to one service order.
//
// A WorkTask's status never changes alone: the WorkTaskCoordinator domain
// service advances it together with the owning order's status, and the
// command layer persists both halves in one transaction. Reassignment never
// edits a task in place; a new task is created and the old one is superseded
// by recency.
package worktask

import (
	"errors"
	"time"

	"greenspace/internal/core/domain/model/kernel"
	"greenspace/internal/pkg/errs"
)

var (
	// ErrWorkTaskIsNotConstructed is returned when a WorkTask instance was not
	// created through NewWorkTask or RestoreWorkTask.
	ErrWorkTaskIsNotConstructed = errors.New(
		"WorkTask must be created via NewWorkTask or RestoreWorkTask",
	)
)

// WorkTask is a field assignment owned by exactly one ServiceOrder.
type WorkTask struct {
	id             kernel.UUID
	serviceOrderID kernel.UUID
	userID         kernel.UUID
	appointment    time.Time
	status         Status
	note           string
	createdAt      time.Time

	isConstructed bool
}

// NewWorkTask books a field task for an assignee at the given appointment.
// The task starts in Assigned status.
func NewWorkTask(
	id kernel.UUID,
	serviceOrderID kernel.UUID,
	userID kernel.UUID,
	appointment time.Time,
	note string,
) (*WorkTask, error) {
	if err := errors.Join(
		id.Validate(),
		serviceOrderID.Validate(),
		userID.Validate(),
	); err != nil {
		return nil, err
	}
	if appointment.IsZero() {
		return nil, errs.NewValueIsRequiredError("appointment")
	}

	return &WorkTask{
		id:             id,
		serviceOrderID: serviceOrderID,
		userID:         userID,
		appointment:    appointment,
		status:         Assigned,
		note:           note,
		createdAt:      time.Now().UTC(),
		isConstructed:  true,
	}, nil
}

// RestoreWorkTask reconstructs a WorkTask from persistence.
func RestoreWorkTask(
	id kernel.UUID,
	serviceOrderID kernel.UUID,
	userID kernel.UUID,
	appointment time.Time,
	status Status,
	note string,
	createdAt time.Time,
) (*WorkTask, error) {
	if err := errors.Join(
		id.Validate(),
		serviceOrderID.Validate(),
		userID.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	return &WorkTask{
		id:             id,
		serviceOrderID: serviceOrderID,
		userID:         userID,
		appointment:    appointment,
		status:         status,
		note:           note,
		createdAt:      createdAt,
		isConstructed:  true,
	}, nil
}

// Validate ensures the WorkTask instance was properly constructed.
func (t *WorkTask) Validate() error {
	if t == nil || !t.isConstructed {
		return ErrWorkTaskIsNotConstructed
	}
	return nil
}

// ID returns the task's unique identifier.
func (t *WorkTask) ID() kernel.UUID {
	return t.id
}

// ServiceOrderID returns the owning order.
func (t *WorkTask) ServiceOrderID() kernel.UUID {
	return t.serviceOrderID
}

// UserID returns the assigned designer or contractor.
func (t *WorkTask) UserID() kernel.UUID {
	return t.userID
}

// Appointment returns the booked appointment time.
func (t *WorkTask) Appointment() time.Time {
	return t.appointment
}

// Status returns the current task status.
func (t *WorkTask) Status() Status {
	return t.status
}

// Note returns the free-text note attached to the task.
func (t *WorkTask) Note() string {
	return t.note
}

// CreatedAt returns the creation time, used to pick the active task among
// superseded ones.
func (t *WorkTask) CreatedAt() time.Time {
	return t.createdAt
}

// ChangeStatus moves the task to a new status. Callers must go through the
// WorkTaskCoordinator so the owning order advances in the same unit of work.
func (t *WorkTask) ChangeStatus(newStatus Status) error {
	if err := t.Validate(); err != nil {
		return err
	}
	if err := newStatus.Validate(); err != nil {
		return err
	}

	t.status = newStatus
	return nil
}

// SetNote replaces the task note.
func (t *WorkTask) SetNote(note string) {
	t.note = note
}
