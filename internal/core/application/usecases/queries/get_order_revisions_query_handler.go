package queries

import (
	"context"
	"time"

	"greenspace/internal/core/domain/model/kernel"
	"greenspace/internal/core/domain/model/revision"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// GetOrderRevisionsQueryHandler retrieves revision history from the
// database. Records come back oldest first so the phase progression reads
// top to bottom.
type GetOrderRevisionsQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderRevisionsQueryHandler creates a handler for revision history
// queries. Requires a GORM database connection for query execution.
func NewGetOrderRevisionsQueryHandler(db *gorm.DB) GetOrderRevisionsQueryHandler {
	return GetOrderRevisionsQueryHandler{db: db}
}

// Handle executes the query and returns the full revision history of the
// order. An order without revisions yields an empty slice, not an error.
func (h GetOrderRevisionsQueryHandler) Handle(
	ctx context.Context,
	query GetOrderRevisionsQuery,
) ([]GetOrderRevisionsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			kind,
			phase,
			images,
			is_selected,
			created_at
		FROM revisions
		WHERE order_id = ?
		ORDER BY created_at
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]GetOrderRevisionsQueryResponse, 0)

	for rows.Next() {
		var record GetOrderRevisionsQueryResponse
		var id uuid.UUID
		var kind int
		var images pq.StringArray
		var createdAt time.Time

		err = rows.Scan(
			&id,
			&kind,
			&record.Phase,
			&images,
			&record.IsSelected,
			&createdAt,
		)
		if err != nil {
			return nil, err
		}

		recordID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		record.ID = recordID
		record.Kind = revision.Kind(kind).String()
		record.Images = []string(images)
		record.CreatedAt = createdAt

		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}
