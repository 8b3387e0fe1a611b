package commands

import (
	"errors"

	"greenspace/internal/core/domain/model/kernel"
	"greenspace/internal/core/domain/model/revision"
	"greenspace/internal/core/domain/services"
	"greenspace/internal/pkg/guard"
)

var (
	ErrSubmitSketchCommandIsNotConstructed = errors.New(
		"SubmitSketchCommand must be created via NewSubmitSketchCommand constructor",
	)
	ErrSketchImagesAreRequired = errors.New("at least one sketch image is required")
	ErrTooManySketchImages     = errors.New("at most 3 sketch images are allowed")
	ErrPriceIsRequired         = errors.New("price must be greater than zero")
)

// SubmitSketchCommand represents a designer's sketch submission with the
// proposed design price. It covers both the first proposal after consulting
// and a resubmission answering a manager rejection; the adjustment mode says
// what the designer changed. A first proposal always carries both, so it
// uses AdjustmentBoth.
type SubmitSketchCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	adjustment services.Adjustment
	images     []string
	price      *kernel.Money
	report     *string

	guard guard.ConstructorGuard
}

// NewSubmitSketchCommand creates a command to submit a sketch batch and a
// price proposal. Images may be empty only for a price-only adjustment and
// price may be nil only for an images-only adjustment. Report is the
// designer's optional progress note.
func NewSubmitSketchCommand(
	orderID kernel.UUID,
	adjustment services.Adjustment,
	images []string,
	price *kernel.Money,
	report *string,
) (SubmitSketchCommand, error) {
	cmd := SubmitSketchCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setAdjustment(adjustment),
		cmd.setImages(adjustment, images),
		cmd.setPrice(adjustment, price),
	); err != nil {
		return SubmitSketchCommand{}, err
	}

	cmd.report = report
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SubmitSketchCommand) Validate() error {
	return c.guard.Validate(ErrSubmitSketchCommandIsNotConstructed)
}

// OrderID returns the order the sketch belongs to.
func (c SubmitSketchCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Adjustment returns what the designer changed in this submission.
func (c SubmitSketchCommand) Adjustment() services.Adjustment {
	return c.adjustment
}

// Images returns the sketch image URLs, empty for a price-only adjustment.
func (c SubmitSketchCommand) Images() []string {
	return c.images
}

// Price returns the proposed design price, nil for an images-only
// adjustment.
func (c SubmitSketchCommand) Price() *kernel.Money {
	return c.price
}

// Report returns the designer's progress note, nil when absent.
func (c SubmitSketchCommand) Report() *string {
	return c.report
}

func (c *SubmitSketchCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *SubmitSketchCommand) setAdjustment(adjustment services.Adjustment) error {
	if err := adjustment.Validate(); err != nil {
		return err
	}

	c.adjustment = adjustment
	return nil
}

func (c *SubmitSketchCommand) setImages(adjustment services.Adjustment, images []string) error {
	if len(images) == 0 && adjustment != services.AdjustmentPrice {
		return ErrSketchImagesAreRequired
	}
	if len(images) > revision.MaxImages {
		return ErrTooManySketchImages
	}

	c.images = images
	return nil
}

func (c *SubmitSketchCommand) setPrice(adjustment services.Adjustment, price *kernel.Money) error {
	if adjustment == services.AdjustmentImages {
		c.price = price
		return nil
	}
	if price == nil || price.IsZero() {
		return ErrPriceIsRequired
	}

	c.price = price
	return nil
}
