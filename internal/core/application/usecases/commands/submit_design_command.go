package commands

import (
	"errors"

	"greenspace/internal/core/domain/model/kernel"
	"greenspace/internal/core/domain/model/order"
	"greenspace/internal/core/domain/model/revision"
	"greenspace/internal/pkg/guard"
)

var (
	ErrSubmitDesignCommandIsNotConstructed = errors.New(
		"SubmitDesignCommand must be created via NewSubmitDesignCommand constructor",
	)
	ErrDesignImagesAreRequired = errors.New("at least one design image is required")
	ErrTooManyDesignImages     = errors.New("at most 3 design images are allowed")
	ErrLineItemsAreRequired    = errors.New("at least one material line item is required")
)

// SubmitDesignCommand represents a designer's detailed-design submission
// together with the material line items the customer will be quoted on.
type SubmitDesignCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	images  []string
	details []order.LineItem

	guard guard.ConstructorGuard
}

// NewSubmitDesignCommand creates a command to submit a detailed design batch
// and its material line items.
func NewSubmitDesignCommand(
	orderID kernel.UUID,
	images []string,
	details []order.LineItem,
) (SubmitDesignCommand, error) {
	cmd := SubmitDesignCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setImages(images),
		cmd.setDetails(details),
	); err != nil {
		return SubmitDesignCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SubmitDesignCommand) Validate() error {
	return c.guard.Validate(ErrSubmitDesignCommandIsNotConstructed)
}

// OrderID returns the order the design belongs to.
func (c SubmitDesignCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Images returns the design image URLs.
func (c SubmitDesignCommand) Images() []string {
	return c.images
}

// Details returns the material line items.
func (c SubmitDesignCommand) Details() []order.LineItem {
	return c.details
}

func (c *SubmitDesignCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *SubmitDesignCommand) setImages(images []string) error {
	if len(images) == 0 {
		return ErrDesignImagesAreRequired
	}
	if len(images) > revision.MaxImages {
		return ErrTooManyDesignImages
	}

	c.images = images
	return nil
}

func (c *SubmitDesignCommand) setDetails(details []order.LineItem) error {
	if len(details) == 0 {
		return ErrLineItemsAreRequired
	}
	for _, item := range details {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	c.details = details
	return nil
}
