package queries

import (
	"context"

	"greenspace/internal/core/domain/model/kernel"
	"greenspace/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetTrackedShipmentsQueryHandler retrieves in-flight shipments from the
// database. The filter matches the reconciler's notion of trackable: a
// shipping-leg status plus a non-empty delivery code.
type GetTrackedShipmentsQueryHandler struct {
	db *gorm.DB
}

// NewGetTrackedShipmentsQueryHandler creates a handler for shipment list
// queries. Requires a GORM database connection for query execution.
func NewGetTrackedShipmentsQueryHandler(db *gorm.DB) GetTrackedShipmentsQueryHandler {
	return GetTrackedShipmentsQueryHandler{db: db}
}

// Handle executes the query to retrieve all orders with active shipments.
// Results are sorted by order ID for consistent output.
func (h GetTrackedShipmentsQueryHandler) Handle(
	ctx context.Context,
	query GetTrackedShipmentsQuery,
) ([]GetTrackedShipmentsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	shipments := make([]GetTrackedShipmentsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			status,
			delivery_code
		FROM orders
		WHERE status IN ? AND delivery_code <> ''
		ORDER BY id
	`, []int{
		order.Processing.Code(),
		order.PickedPackageAndDelivery.Code(),
		order.DeliveryFail.Code(),
		order.ReDelivery.Code(),
	}).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var shipment GetTrackedShipmentsQueryResponse
		var id uuid.UUID
		var statusCode int

		err = rows.Scan(&id, &statusCode, &shipment.DeliveryCode)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		shipment.ID = orderID

		status, statusErr := order.StatusFromCode(statusCode)
		if statusErr != nil {
			return nil, statusErr
		}
		shipment.Status = status.String()

		shipments = append(shipments, shipment)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return shipments, nil
}
