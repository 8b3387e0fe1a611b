// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. This package implements the repository pattern for the
// ServiceOrder aggregate, handling the conversion between domain entities and
// database representations.
package orderrepo

import (
	"greenspace/internal/core/domain/model/kernel"
	"greenspace/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting ServiceOrder
// aggregates. The material line items live in their own table and are loaded
// and written together with the order row.
type OrderDTO struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	ServiceType      int
	Status           int `gorm:"index"`
	DesignPrice      int64
	MaterialPrice    *int64
	Report           string
	ReportManager    string
	ReportAccountant string
	DeliveryCode     string `gorm:"index"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// LineItemDTO represents one material line item row belonging to an order.
// Position preserves the submission order of the items.
type LineItemDTO struct {
	OrderID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Position  int       `gorm:"primaryKey"`
	ProductID uuid.UUID `gorm:"type:uuid"`
	Quantity  int
	UnitPrice int64
}

// TableName specifies the database table name for line item rows.
func (LineItemDTO) TableName() string {
	return "order_line_items"
}

// fromDomain converts a ServiceOrder aggregate to its database
// representation: one order row plus one row per line item.
func fromDomain(aggregate *order.ServiceOrder) (OrderDTO, []LineItemDTO) {
	var materialPrice *int64
	if total := aggregate.MaterialPrice(); len(aggregate.Details()) == 0 && !total.IsZero() {
		amount := total.Amount()
		materialPrice = &amount
	}

	dto := OrderDTO{
		ID:               aggregate.ID().Bytes(),
		ServiceType:      int(aggregate.ServiceType()),
		Status:           aggregate.Status().Code(),
		DesignPrice:      aggregate.DesignPrice().Amount(),
		MaterialPrice:    materialPrice,
		Report:           aggregate.Report(),
		ReportManager:    aggregate.ReportManager(),
		ReportAccountant: aggregate.ReportAccountant(),
		DeliveryCode:     aggregate.DeliveryCode(),
	}

	items := make([]LineItemDTO, 0, len(aggregate.Details()))
	for i, item := range aggregate.Details() {
		items = append(items, LineItemDTO{
			OrderID:   dto.ID,
			Position:  i,
			ProductID: item.ProductID().Bytes(),
			Quantity:  item.Quantity(),
			UnitPrice: item.UnitPrice().Amount(),
		})
	}

	return dto, items
}

// toDomain converts the database rows back into a ServiceOrder aggregate
// using RestoreServiceOrder.
func toDomain(dto OrderDTO, itemDTOs []LineItemDTO) (*order.ServiceOrder, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromCode(dto.Status)
	if err != nil {
		return nil, err
	}

	designPrice, err := kernel.NewMoney(dto.DesignPrice)
	if err != nil {
		return nil, err
	}

	var materialPrice *kernel.Money
	if dto.MaterialPrice != nil {
		price, priceErr := kernel.NewMoney(*dto.MaterialPrice)
		if priceErr != nil {
			return nil, priceErr
		}
		materialPrice = &price
	}

	items := make([]order.LineItem, 0, len(itemDTOs))
	for _, itemDTO := range itemDTOs {
		productID, itemErr := kernel.UUIDFromBytes(itemDTO.ProductID[:])
		if itemErr != nil {
			return nil, itemErr
		}

		unitPrice, itemErr := kernel.NewMoney(itemDTO.UnitPrice)
		if itemErr != nil {
			return nil, itemErr
		}

		item, itemErr := order.NewLineItem(productID, itemDTO.Quantity, unitPrice)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreServiceOrder(
		id,
		order.ServiceType(dto.ServiceType),
		status,
		designPrice,
		materialPrice,
		items,
		dto.Report,
		dto.ReportManager,
		dto.ReportAccountant,
		dto.DeliveryCode,
	)
}
