package ports

import (
	"context"

	"greenspace/internal/core/domain/model/kernel"
	"greenspace/internal/core/domain/model/revision"
)

// RevisionRepository defines the persistence contract for revision records.
// Records are append-only; Update only touches the selection flag.
type RevisionRepository interface {
	// Add persists a new revision record.
	Add(ctx context.Context, record *revision.Record) error

	// Update persists the selection flag of an existing record.
	Update(ctx context.Context, record *revision.Record) error

	// GetAllForOrder retrieves an order's full revision history, every kind
	// and phase, oldest first.
	GetAllForOrder(ctx context.Context, serviceOrderID kernel.UUID) ([]*revision.Record, error)
}
