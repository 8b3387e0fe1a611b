package queries

import (
	"context"
	"database/sql"
	"errors"

	"greenspace/internal/core/domain/model/kernel"
	"greenspace/internal/core/domain/model/worktask"
	"greenspace/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetActiveWorkTaskQueryHandler retrieves the latest field task of an order
// from the database.
type GetActiveWorkTaskQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveWorkTaskQueryHandler creates a handler for active task
// queries. Requires a GORM database connection for query execution.
func NewGetActiveWorkTaskQueryHandler(db *gorm.DB) GetActiveWorkTaskQueryHandler {
	return GetActiveWorkTaskQueryHandler{db: db}
}

// Handle executes the query and returns the most recently booked task.
// Returns an object-not-found error when the order has no tasks.
func (h GetActiveWorkTaskQueryHandler) Handle(
	ctx context.Context,
	query GetActiveWorkTaskQuery,
) (GetActiveWorkTaskQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetActiveWorkTaskQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			user_id,
			appointment,
			status,
			note,
			created_at
		FROM work_tasks
		WHERE order_id = ?
		ORDER BY created_at DESC
		LIMIT 1
	`, query.OrderID().Bytes()).Row()

	var (
		id         uuid.UUID
		userID     uuid.UUID
		statusCode int
		response   GetActiveWorkTaskQueryResponse
	)

	err := row.Scan(
		&id,
		&userID,
		&response.Appointment,
		&statusCode,
		&response.Note,
		&response.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetActiveWorkTaskQueryResponse{}, errs.NewObjectNotFoundError("work task", query.OrderID().String())
		}
		return GetActiveWorkTaskQueryResponse{}, err
	}

	taskID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetActiveWorkTaskQueryResponse{}, err
	}
	response.ID = taskID

	assigneeID, err := kernel.UUIDFromBytes(userID[:])
	if err != nil {
		return GetActiveWorkTaskQueryResponse{}, err
	}
	response.UserID = assigneeID

	status, err := worktask.StatusFromCode(statusCode)
	if err != nil {
		return GetActiveWorkTaskQueryResponse{}, err
	}
	response.Status = status.String()

	return response, nil
}
