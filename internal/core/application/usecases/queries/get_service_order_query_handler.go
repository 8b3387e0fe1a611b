package queries

import (
	"context"
	"database/sql"
	"errors"

	"greenspace/internal/core/domain/model/kernel"
	"greenspace/internal/core/domain/model/order"
	"greenspace/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetServiceOrderQueryHandler retrieves a service order read model from the
// database. The material price mirrors the domain rule: an explicit override
// wins, otherwise the price derives from the line items.
type GetServiceOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetServiceOrderQueryHandler creates a handler for order detail queries.
// Requires a GORM database connection for query execution.
func NewGetServiceOrderQueryHandler(db *gorm.DB) GetServiceOrderQueryHandler {
	return GetServiceOrderQueryHandler{db: db}
}

// Handle executes the query and returns the order detail.
// Returns an object-not-found error when no order exists with the given ID.
func (h GetServiceOrderQueryHandler) Handle(
	ctx context.Context,
	query GetServiceOrderQuery,
) (GetServiceOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetServiceOrderQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			service_type,
			status,
			design_price,
			material_price,
			report,
			report_manager,
			report_accountant,
			delivery_code
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Row()

	var (
		id            uuid.UUID
		serviceType   int
		statusCode    int
		designPrice   int64
		materialPrice sql.NullInt64
		response      GetServiceOrderQueryResponse
	)

	err := row.Scan(
		&id,
		&serviceType,
		&statusCode,
		&designPrice,
		&materialPrice,
		&response.Report,
		&response.ReportManager,
		&response.ReportAccountant,
		&response.DeliveryCode,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetServiceOrderQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
		}
		return GetServiceOrderQueryResponse{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetServiceOrderQueryResponse{}, err
	}
	response.ID = orderID

	status, err := order.StatusFromCode(statusCode)
	if err != nil {
		return GetServiceOrderQueryResponse{}, err
	}
	response.Status = status.String()
	response.ServiceType = order.ServiceType(serviceType).String()
	response.DesignPrice = designPrice

	items, derivedPrice, err := h.lineItems(ctx, id)
	if err != nil {
		return GetServiceOrderQueryResponse{}, err
	}
	response.LineItems = items

	if materialPrice.Valid {
		response.MaterialPrice = materialPrice.Int64
	} else {
		response.MaterialPrice = derivedPrice
	}

	return response, nil
}

// lineItems loads the material lines of an order in submission order and
// returns the derived material price alongside them.
func (h GetServiceOrderQueryHandler) lineItems(
	ctx context.Context,
	orderID uuid.UUID,
) ([]LineItemResponse, int64, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			product_id,
			quantity,
			unit_price
		FROM order_line_items
		WHERE order_id = ?
		ORDER BY position
	`, orderID).Rows()
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	items := make([]LineItemResponse, 0)
	var derivedPrice int64

	for rows.Next() {
		var item LineItemResponse
		var productID uuid.UUID

		err = rows.Scan(&productID, &item.Quantity, &item.UnitPrice)
		if err != nil {
			return nil, 0, err
		}

		id, idErr := kernel.UUIDFromBytes(productID[:])
		if idErr != nil {
			return nil, 0, idErr
		}
		item.ProductID = id

		derivedPrice += int64(item.Quantity) * item.UnitPrice
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, err
	}

	return items, derivedPrice, nil
}
