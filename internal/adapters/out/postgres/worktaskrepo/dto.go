// Package worktaskrepo provides data transfer objects and mapping functions
// for work task persistence.
package worktaskrepo

import (
	"time"

	"greenspace/internal/core/domain/model/kernel"
	"greenspace/internal/core/domain/model/worktask"

	"github.com/google/uuid"
)

// WorkTaskDTO represents the database structure for persisting WorkTask
// aggregates.
type WorkTaskDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID `gorm:"type:uuid;index"`
	UserID      uuid.UUID `gorm:"type:uuid;index"`
	Appointment time.Time
	Status      int
	Note        string
	CreatedAt   time.Time
}

// TableName specifies the database table name for work task entities.
func (WorkTaskDTO) TableName() string {
	return "work_tasks"
}

// fromDomain converts a WorkTask aggregate to its database representation.
func fromDomain(aggregate *worktask.WorkTask) WorkTaskDTO {
	return WorkTaskDTO{
		ID:          aggregate.ID().Bytes(),
		OrderID:     aggregate.ServiceOrderID().Bytes(),
		UserID:      aggregate.UserID().Bytes(),
		Appointment: aggregate.Appointment(),
		Status:      aggregate.Status().Code(),
		Note:        aggregate.Note(),
		CreatedAt:   aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO back into a WorkTask aggregate using
// RestoreWorkTask.
func toDomain(dto WorkTaskDTO) (*worktask.WorkTask, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	status, err := worktask.StatusFromCode(dto.Status)
	if err != nil {
		return nil, err
	}

	return worktask.RestoreWorkTask(
		id,
		orderID,
		userID,
		dto.Appointment,
		status,
		dto.Note,
		dto.CreatedAt,
	)
}
