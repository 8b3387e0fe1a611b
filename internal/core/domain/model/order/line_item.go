package order

import (
	"errors"
	"fmt"

	"greenspace/internal/core/domain/model/kernel"
	"greenspace/internal/pkg/errs"
)

var (
	// ErrLineItemIsNotConstructed is returned when a LineItem was not created
	// through the NewLineItem factory method.
	ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem constructor")
)

// LineItem is one material position of a service order: a product, a quantity
// and the unit price at the time the designer selected it. The line total is
// derived, never stored independently.
//
// LineItem is an immutable value object.
type LineItem struct {
	productID kernel.UUID
	quantity  int
	unitPrice kernel.Money

	isConstructed bool
}

// NewLineItem creates a material line item.
// Quantity must be at least 1.
func NewLineItem(productID kernel.UUID, quantity int, unitPrice kernel.Money) (LineItem, error) {
	if err := productID.Validate(); err != nil {
		return LineItem{}, err
	}
	if quantity < 1 {
		return LineItem{}, errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}

	return LineItem{
		productID:     productID,
		quantity:      quantity,
		unitPrice:     unitPrice,
		isConstructed: true,
	}, nil
}

// Validate ensures the LineItem was created via NewLineItem.
func (li LineItem) Validate() error {
	if !li.isConstructed {
		return ErrLineItemIsNotConstructed
	}
	return nil
}

// ProductID returns the referenced product.
func (li LineItem) ProductID() kernel.UUID {
	return li.productID
}

// Quantity returns the ordered quantity.
func (li LineItem) Quantity() int {
	return li.quantity
}

// UnitPrice returns the unit price at selection time.
func (li LineItem) UnitPrice() kernel.Money {
	return li.unitPrice
}

// Total returns quantity times unit price.
func (li LineItem) Total() kernel.Money {
	return li.unitPrice.Multiply(li.quantity)
}
