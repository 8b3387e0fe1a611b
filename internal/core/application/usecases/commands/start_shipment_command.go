package commands

import (
	"errors"

	"greenspace/internal/core/domain/model/kernel"
	"greenspace/internal/pkg/guard"
)

var (
	ErrStartShipmentCommandIsNotConstructed = errors.New(
		"StartShipmentCommand must be created via NewStartShipmentCommand constructor",
	)
	ErrRecipientNameIsRequired  = errors.New("recipient name is required")
	ErrRecipientPhoneIsRequired = errors.New("recipient phone is required")
	ErrRecipientAddressIsRequired = errors.New("recipient address is required")
)

// StartShipmentCommand represents handing the order's materials to the
// external carrier after payment.
type StartShipmentCommand struct { //nolint:recvcheck //using for validation
	orderID          kernel.UUID
	recipientName    string
	recipientPhone   string
	recipientAddress string

	guard guard.ConstructorGuard
}

// NewStartShipmentCommand creates a command to register a shipment with the
// carrier and begin tracking it.
func NewStartShipmentCommand(
	orderID kernel.UUID,
	recipientName, recipientPhone, recipientAddress string,
) (StartShipmentCommand, error) {
	cmd := StartShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setRecipient(recipientName, recipientPhone, recipientAddress),
	); err != nil {
		return StartShipmentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c StartShipmentCommand) Validate() error {
	return c.guard.Validate(ErrStartShipmentCommandIsNotConstructed)
}

// OrderID returns the order being shipped.
func (c StartShipmentCommand) OrderID() kernel.UUID {
	return c.orderID
}

// RecipientName returns the recipient's name.
func (c StartShipmentCommand) RecipientName() string {
	return c.recipientName
}

// RecipientPhone returns the recipient's phone number.
func (c StartShipmentCommand) RecipientPhone() string {
	return c.recipientPhone
}

// RecipientAddress returns the delivery address.
func (c StartShipmentCommand) RecipientAddress() string {
	return c.recipientAddress
}

func (c *StartShipmentCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *StartShipmentCommand) setRecipient(name, phone, address string) error {
	if name == "" {
		return ErrRecipientNameIsRequired
	}
	if phone == "" {
		return ErrRecipientPhoneIsRequired
	}
	if address == "" {
		return ErrRecipientAddressIsRequired
	}

	c.recipientName = name
	c.recipientPhone = phone
	c.recipientAddress = address
	return nil
}
