package order

import (
	"errors"

	"greenspace/internal/core/domain/model/kernel"
	"greenspace/internal/pkg/errs"
)

var (
	// ErrServiceOrderIsNotConstructed is returned when a ServiceOrder instance was
	// not created through NewServiceOrder or RestoreServiceOrder. This ensures all
	// orders are properly validated.
	ErrServiceOrderIsNotConstructed = errors.New(
		"ServiceOrder must be created via NewServiceOrder or RestoreServiceOrder",
	)
)

// ServiceOrder is the root aggregate representing one customer's
// design-and-installation engagement.
//
// ServiceOrder follows these invariants:
//   - Must have a valid unique identifier and service type
//   - Status is always a catalog status; it changes only through Apply
//   - A failed Apply leaves the order completely unchanged
//   - The manager's rejection rationale is non-empty exactly while the order
//     is in ReDeterminingDesignPrice
//   - The delivery code is assigned once and never changed
//   - Orders are never deleted, only moved to a terminal status
//
// The struct uses private fields to ensure encapsulation; all mutation goes
// through Apply so the transition-graph invariant cannot be bypassed.
type ServiceOrder struct {
	id          kernel.UUID
	serviceType ServiceType
	status      Status

	designPrice kernel.Money

	// materialPrice, when set, overrides the price derived from details.
	materialPrice *kernel.Money
	details       []LineItem

	report           string
	reportManager    string
	reportAccountant string

	deliveryCode string

	isConstructed bool
}

// NewServiceOrder creates a new ServiceOrder in Pending status.
//
// Parameters:
//   - id: unique identifier for the order
//   - serviceType: custom or template design
//
// Returns the created order, or a validation error if any parameter is invalid.
func NewServiceOrder(id kernel.UUID, serviceType ServiceType) (*ServiceOrder, error) {
	if err := errors.Join(
		id.Validate(),
		serviceType.Validate(),
	); err != nil {
		return nil, err
	}

	return &ServiceOrder{
		id:            id,
		serviceType:   serviceType,
		status:        Pending,
		isConstructed: true,
	}, nil
}

// RestoreServiceOrder reconstructs a ServiceOrder from persistence.
// Unlike NewServiceOrder it accepts any catalog status and the persisted
// payload fields; it still validates identifiers and the status value so a
// corrupted row cannot produce an order outside the catalog.
func RestoreServiceOrder(
	id kernel.UUID,
	serviceType ServiceType,
	status Status,
	designPrice kernel.Money,
	materialPrice *kernel.Money,
	details []LineItem,
	report, reportManager, reportAccountant string,
	deliveryCode string,
) (*ServiceOrder, error) {
	if err := errors.Join(
		id.Validate(),
		serviceType.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	for _, item := range details {
		if err := item.Validate(); err != nil {
			return nil, err
		}
	}

	return &ServiceOrder{
		id:               id,
		serviceType:      serviceType,
		status:           status,
		designPrice:      designPrice,
		materialPrice:    materialPrice,
		details:          details,
		report:           report,
		reportManager:    reportManager,
		reportAccountant: reportAccountant,
		deliveryCode:     deliveryCode,
		isConstructed:    true,
	}, nil
}

// Validate ensures the ServiceOrder instance was properly constructed.
func (o *ServiceOrder) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrServiceOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *ServiceOrder) IsEqual(other *ServiceOrder) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *ServiceOrder) ID() kernel.UUID {
	return o.id
}

// ServiceType returns the kind of design engagement.
func (o *ServiceOrder) ServiceType() ServiceType {
	return o.serviceType
}

// Status returns the current status of the order.
func (o *ServiceOrder) Status() Status {
	return o.status
}

// DesignPrice returns the current design price proposal (zero until proposed).
func (o *ServiceOrder) DesignPrice() kernel.Money {
	return o.designPrice
}

// MaterialPrice returns the explicit material price when one was set,
// otherwise the sum of the line-item totals.
func (o *ServiceOrder) MaterialPrice() kernel.Money {
	if o.materialPrice != nil {
		return *o.materialPrice
	}
	var total kernel.Money
	for _, item := range o.details {
		total = total.Add(item.Total())
	}
	return total
}

// Details returns the material line items.
func (o *ServiceOrder) Details() []LineItem {
	return o.details
}

// Report returns the designer's progress note.
func (o *ServiceOrder) Report() string {
	return o.report
}

// ReportManager returns the manager's rejection rationale. It is non-empty
// exactly while the order is in ReDeterminingDesignPrice.
func (o *ServiceOrder) ReportManager() string {
	return o.reportManager
}

// ReportAccountant returns the accountant's note.
func (o *ServiceOrder) ReportAccountant() string {
	return o.reportAccountant
}

// DeliveryCode returns the carrier tracking code, empty until shipping begins.
func (o *ServiceOrder) DeliveryCode() string {
	return o.deliveryCode
}

// IsTerminated reports whether the order reached a terminal status.
func (o *ServiceOrder) IsTerminated() bool {
	return o.status.IsTerminal()
}

// Apply validates and performs a status transition requested by the given
// actor role, writing the payload fields together with the new status.
//
// Validation order:
//  1. the edge must exist in the transition graph (InvalidTransitionError)
//  2. the role must be authorized for the edge (UnauthorizedError)
//  3. the edge's business preconditions must hold (PreconditionFailedError)
//
// All checks run before any field is written, so a failed Apply leaves the
// order exactly as it was. On success the status and every set payload field
// change as one logical write, and the manager rationale is set or cleared to
// keep its invariant.
func (o *ServiceOrder) Apply(role Role, target Status, payload Payload) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := role.Validate(); err != nil {
		return err
	}

	if err := o.status.validateTransition(target, role); err != nil {
		return err
	}

	if err := o.checkPreconditions(target, payload); err != nil {
		return err
	}

	o.commit(target, payload)
	return nil
}

// checkPreconditions verifies the business preconditions of the edge into
// target without mutating the order.
func (o *ServiceOrder) checkPreconditions(target Status, payload Payload) error {
	if payload.ManagerNote != nil && target != ReDeterminingDesignPrice {
		return errs.NewPreconditionFailedError("manager note only accompanies a price rejection")
	}

	if payload.DeliveryCode != nil {
		if *payload.DeliveryCode == "" {
			return errs.NewPreconditionFailedError("delivery code must not be empty")
		}
		if o.deliveryCode != "" && o.deliveryCode != *payload.DeliveryCode {
			return errs.NewPreconditionFailedError("delivery code is already assigned")
		}
	}

	switch target {
	case DeterminingDesignPrice:
		if o.effectiveDesignPrice(payload).IsZero() {
			return errs.NewPreconditionFailedError("design price must be greater than zero")
		}

	case DoneDeterminingDesignPrice, WaitDeposit:
		if o.designPrice.IsZero() {
			return errs.NewPreconditionFailedError("design price must be greater than zero")
		}

	case ReDeterminingDesignPrice:
		if payload.ManagerNote == nil || *payload.ManagerNote == "" {
			return errs.NewPreconditionFailedError("manager rejection rationale is required")
		}

	case DeterminingMaterialPrice:
		if len(payload.Details) == 0 && len(o.details) == 0 {
			return errs.NewPreconditionFailedError("material line items are required")
		}

	case PaymentSuccess:
		if o.effectiveMaterialPrice(payload).IsZero() {
			return errs.NewPreconditionFailedError("material price must be greater than zero")
		}

	case Processing, PickedPackageAndDelivery, DeliveryFail, ReDelivery, DeliveredSuccessfully:
		if o.deliveryCode == "" && payload.DeliveryCode == nil {
			return errs.NewPreconditionFailedError("delivery code is required")
		}
	}

	return nil
}

// commit writes the new status and payload fields. It must only be called
// after every validation and precondition check passed.
func (o *ServiceOrder) commit(target Status, payload Payload) {
	o.status = target

	if payload.DesignPrice != nil {
		o.designPrice = *payload.DesignPrice
	}
	if payload.Details != nil {
		o.details = payload.Details
	}
	if payload.MaterialPrice != nil {
		o.materialPrice = payload.MaterialPrice
	}
	if payload.Report != nil {
		o.report = *payload.Report
	}
	if payload.AccountantNote != nil {
		o.reportAccountant = *payload.AccountantNote
	}
	if payload.DeliveryCode != nil {
		o.deliveryCode = *payload.DeliveryCode
	}

	// reportManager is non-empty exactly in ReDeterminingDesignPrice.
	if target == ReDeterminingDesignPrice {
		o.reportManager = *payload.ManagerNote
	} else {
		o.reportManager = ""
	}
}

func (o *ServiceOrder) effectiveDesignPrice(payload Payload) kernel.Money {
	if payload.DesignPrice != nil {
		return *payload.DesignPrice
	}
	return o.designPrice
}

func (o *ServiceOrder) effectiveMaterialPrice(payload Payload) kernel.Money {
	if payload.MaterialPrice != nil {
		return *payload.MaterialPrice
	}
	if len(payload.Details) > 0 {
		var total kernel.Money
		for _, item := range payload.Details {
			total = total.Add(item.Total())
		}
		return total
	}
	return o.MaterialPrice()
}
