package ports

import (
	"context"

	"greenspace/internal/core/domain/model/kernel"
	"greenspace/internal/core/domain/model/worktask"
)

// WorkTaskRepository defines the persistence contract for WorkTask
// aggregates.
type WorkTaskRepository interface {
	// Add persists a new work task to storage.
	Add(ctx context.Context, aggregate *worktask.WorkTask) error

	// Update persists changes to an existing work task.
	Update(ctx context.Context, aggregate *worktask.WorkTask) error

	// Get retrieves a work task by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*worktask.WorkTask, error)

	// GetActiveForOrder retrieves the most recently booked task for an
	// order. A rescheduled order keeps its prior tasks; the latest booking
	// supersedes them.
	GetActiveForOrder(ctx context.Context, serviceOrderID kernel.UUID) (*worktask.WorkTask, error)
}
