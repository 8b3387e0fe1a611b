package commands

import (
	"errors"

	"greenspace/internal/core/domain/model/kernel"
	"greenspace/internal/core/domain/model/order"
	"greenspace/internal/core/domain/model/revision"
	"greenspace/internal/pkg/guard"
)

var (
	ErrCreateServiceOrderCommandIsNotConstructed = errors.New(
		"CreateServiceOrderCommand must be created via NewCreateServiceOrderCommand constructor",
	)
	ErrTooManyReferenceImages = errors.New("at most 3 reference images are allowed")
)

// CreateServiceOrderCommand represents a customer's request for a new design
// service order. The optional reference images become the phase-0 sketch
// record the designer works from.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateServiceOrderCommand(orderID, order.ServiceTypeCustomDesign, refs)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateServiceOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateServiceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	serviceType     order.ServiceType
	referenceImages []string

	guard guard.ConstructorGuard
}

// NewCreateServiceOrderCommand creates a command to register a new service
// order. Reference images are optional; at most 3 are accepted.
func NewCreateServiceOrderCommand(
	orderID kernel.UUID,
	serviceType order.ServiceType,
	referenceImages []string,
) (CreateServiceOrderCommand, error) {
	cmd := CreateServiceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setServiceType(serviceType),
		cmd.setReferenceImages(referenceImages),
	); err != nil {
		return CreateServiceOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateServiceOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateServiceOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the new order.
func (c CreateServiceOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ServiceType returns the requested service type.
func (c CreateServiceOrderCommand) ServiceType() order.ServiceType {
	return c.serviceType
}

// ReferenceImages returns the customer's reference image URLs, possibly
// empty.
func (c CreateServiceOrderCommand) ReferenceImages() []string {
	return c.referenceImages
}

func (c *CreateServiceOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateServiceOrderCommand) setServiceType(serviceType order.ServiceType) error {
	if err := serviceType.Validate(); err != nil {
		return err
	}

	c.serviceType = serviceType
	return nil
}

func (c *CreateServiceOrderCommand) setReferenceImages(referenceImages []string) error {
	if len(referenceImages) > revision.MaxImages {
		return ErrTooManyReferenceImages
	}

	c.referenceImages = referenceImages
	return nil
}
