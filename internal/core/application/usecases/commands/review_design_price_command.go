package commands

import (
	"errors"

	"greenspace/internal/core/domain/model/kernel"
	"greenspace/internal/pkg/guard"
)

var (
	ErrReviewDesignPriceCommandIsNotConstructed = errors.New(
		"ReviewDesignPriceCommand must be created via NewReviewDesignPriceCommand constructor",
	)
	ErrRejectionRationaleIsRequired = errors.New("rejection rationale is required")
)

// ReviewDesignPriceCommand represents the manager's verdict on a proposed
// design price: approval, or rejection with a rationale the designer sees.
type ReviewDesignPriceCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	approved  bool
	rationale string

	guard guard.ConstructorGuard
}

// NewReviewDesignPriceCommand creates a command carrying the manager's
// verdict. A rejection must carry a non-empty rationale; an approval must
// not carry one.
func NewReviewDesignPriceCommand(
	orderID kernel.UUID,
	approved bool,
	rationale string,
) (ReviewDesignPriceCommand, error) {
	cmd := ReviewDesignPriceCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setVerdict(approved, rationale),
	); err != nil {
		return ReviewDesignPriceCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ReviewDesignPriceCommand) Validate() error {
	return c.guard.Validate(ErrReviewDesignPriceCommandIsNotConstructed)
}

// OrderID returns the order under review.
func (c ReviewDesignPriceCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Approved reports whether the manager accepted the price.
func (c ReviewDesignPriceCommand) Approved() bool {
	return c.approved
}

// Rationale returns the rejection rationale, empty on approval.
func (c ReviewDesignPriceCommand) Rationale() string {
	return c.rationale
}

func (c *ReviewDesignPriceCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ReviewDesignPriceCommand) setVerdict(approved bool, rationale string) error {
	if !approved && rationale == "" {
		return ErrRejectionRationaleIsRequired
	}

	c.approved = approved
	c.rationale = rationale
	return nil
}
