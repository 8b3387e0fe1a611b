package order

import (
	"fmt"

	"greenspace/internal/pkg/errs"
)

// Status represents the lifecycle state of a service order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct business workflow.
//
// The happy path, roughly:
//
//	Pending ──> ConsultingAndSketching ──> DeterminingDesignPrice ──> DoneDeterminingDesignPrice
//	     ──> WaitDeposit ──> DepositSuccessful ──> AssignToDesigner ──> DeterminingMaterialPrice
//	     ──> DoneDesign ──> PaymentSuccess ──> Processing ──> PickedPackageAndDelivery
//	     ──> DeliveredSuccessfully ──> Installing ──> DoneInstalling ──> CustomerConfirm
//	     ──> Successfully ──> CompleteOrder
//
// Two bounded retry families branch off it: consulting retries
// (ConsultingAndSketching <-> ReConsultingAndSketching) and design-price
// retries (DeterminingDesignPrice <-> ReDeterminingDesignPrice). Delivery and
// installation have their own retry states (ReDelivery, ReInstall, ReDesign),
// and the dispute path runs through Warning into Refund, ExchangeProduct or
// StopService.
//
// The numeric values are the legacy status codes and are stable: external
// callers pass both the integer and the name interchangeably, so the codes
// must never be renumbered. The numbering is not contiguous with the
// lifecycle (Installing is 27 while ReInstall is 10); that ordering is
// inherited and load-bearing for the task/order mapping table.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when a customer requests a design.
	Pending

	// ConsultingAndSketching means a designer is consulting the customer and sketching.
	ConsultingAndSketching

	// ReConsultingAndSketching means the customer asked for another consulting round.
	ReConsultingAndSketching

	// DeterminingDesignPrice means a sketch and design price await manager review.
	DeterminingDesignPrice

	// ReDeterminingDesignPrice means the manager rejected the proposed price.
	// The order carries the manager's rejection rationale while in this status.
	ReDeterminingDesignPrice

	// DoneDeterminingDesignPrice means the manager approved the design price.
	DoneDeterminingDesignPrice

	// WaitDeposit means the customer accepted the price and a deposit is awaited.
	WaitDeposit

	// DepositSuccessful means the accountant confirmed the deposit.
	DepositSuccessful

	// AssignToDesigner means the engagement is assigned for detailed design.
	AssignToDesigner

	// ReInstall means the customer or manager requested the installation be redone.
	ReInstall

	// ReDesign means the detailed design was rejected and must be revised.
	ReDesign

	// DeterminingMaterialPrice means a detailed design with material line items awaits review.
	DeterminingMaterialPrice

	// DoneDesign means the design and material pricing are approved.
	DoneDesign

	// PaymentSuccess means the accountant confirmed the remaining payment.
	PaymentSuccess

	// Processing means the material package is being prepared by the carrier.
	Processing

	// PickedPackageAndDelivery means the carrier picked the package up and is delivering.
	PickedPackageAndDelivery

	// DeliveryFail means the carrier failed a delivery attempt.
	DeliveryFail

	// ReDelivery means the package is being returned for another attempt.
	ReDelivery

	// DeliveredSuccessfully means the materials arrived at the customer's site.
	DeliveredSuccessfully

	// CustomerConfirm means the customer is reviewing the finished installation.
	CustomerConfirm

	// Successfully means the customer accepted the finished work.
	Successfully

	// CompleteOrder is the terminal status of a fully settled engagement.
	CompleteOrder

	// OrderCancelled is the terminal status of a cancelled engagement.
	OrderCancelled

	// Warning means the customer disputed the result and resolution is pending.
	Warning

	// Refund means a refund was granted and awaits the accountant.
	Refund

	// DoneRefund is the terminal status of a refunded engagement.
	DoneRefund

	// Installing means the contractor is installing on site.
	Installing

	// DoneInstalling means the contractor finished the installation.
	DoneInstalling

	// StopService is the terminal status of an engagement ended by dispute resolution.
	StopService

	// ExchangeProduct means disputed materials are being replaced and reshipped.
	ExchangeProduct

	// WaitForScheduling means a field appointment has been booked and awaits its window.
	WaitForScheduling
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:                    "Unknown",
		Pending:                    "Pending",
		ConsultingAndSketching:     "ConsultingAndSketching",
		ReConsultingAndSketching:   "ReConsultingAndSketching",
		DeterminingDesignPrice:     "DeterminingDesignPrice",
		ReDeterminingDesignPrice:   "ReDeterminingDesignPrice",
		DoneDeterminingDesignPrice: "DoneDeterminingDesignPrice",
		WaitDeposit:                "WaitDeposit",
		DepositSuccessful:          "DepositSuccessful",
		AssignToDesigner:           "AssignToDesigner",
		ReInstall:                  "ReInstall",
		ReDesign:                   "ReDesign",
		DeterminingMaterialPrice:   "DeterminingMaterialPrice",
		DoneDesign:                 "DoneDesign",
		PaymentSuccess:             "PaymentSuccess",
		Processing:                 "Processing",
		PickedPackageAndDelivery:   "PickedPackageAndDelivery",
		DeliveryFail:               "DeliveryFail",
		ReDelivery:                 "ReDelivery",
		DeliveredSuccessfully:      "DeliveredSuccessfully",
		CustomerConfirm:            "CustomerConfirm",
		Successfully:               "Successfully",
		CompleteOrder:              "CompleteOrder",
		OrderCancelled:             "OrderCancelled",
		Warning:                    "Warning",
		Refund:                     "Refund",
		DoneRefund:                 "DoneRefund",
		Installing:                 "Installing",
		DoneInstalling:             "DoneInstalling",
		StopService:                "StopService",
		ExchangeProduct:            "ExchangeProduct",
		WaitForScheduling:          "WaitForScheduling",
	}
}

// transitions is the closed transition graph. An edge exists when
// transitions[from][to] is present; its value is the set of roles permitted
// to drive it. Statuses absent from the outer map are terminal.
func transitions() map[Status]map[Status][]Role {
	return map[Status]map[Status][]Role{
		Pending: {
			WaitForScheduling:      {RoleManager},
			ConsultingAndSketching: {RoleDesigner},
			OrderCancelled:         {RoleCustomer, RoleManager},
		},
		WaitForScheduling: {
			ConsultingAndSketching: {RoleDesigner},
			Installing:             {RoleContractor},
			OrderCancelled:         {RoleCustomer, RoleManager},
		},
		ConsultingAndSketching: {
			DeterminingDesignPrice:   {RoleDesigner},
			ReConsultingAndSketching: {RoleCustomer},
			OrderCancelled:           {RoleCustomer},
		},
		ReConsultingAndSketching: {
			ConsultingAndSketching: {RoleDesigner},
			DeterminingDesignPrice: {RoleDesigner},
			OrderCancelled:         {RoleCustomer},
		},
		DeterminingDesignPrice: {
			DoneDeterminingDesignPrice: {RoleManager},
			ReDeterminingDesignPrice:   {RoleManager},
		},
		ReDeterminingDesignPrice: {
			DeterminingDesignPrice: {RoleDesigner},
		},
		DoneDeterminingDesignPrice: {
			WaitDeposit:    {RoleCustomer},
			OrderCancelled: {RoleCustomer},
		},
		WaitDeposit: {
			DepositSuccessful: {RoleAccountant},
			OrderCancelled:    {RoleCustomer, RoleManager},
		},
		DepositSuccessful: {
			AssignToDesigner: {RoleManager},
		},
		AssignToDesigner: {
			DeterminingMaterialPrice: {RoleDesigner},
			ConsultingAndSketching:   {RoleDesigner},
		},
		DeterminingMaterialPrice: {
			DoneDesign: {RoleManager},
			ReDesign:   {RoleManager},
		},
		ReDesign: {
			DeterminingMaterialPrice: {RoleDesigner},
		},
		DoneDesign: {
			PaymentSuccess: {RoleAccountant},
			ReDesign:       {RoleCustomer},
			OrderCancelled: {RoleCustomer},
		},
		PaymentSuccess: {
			Processing: {RoleManager, RoleAccountant, RoleSystem},
		},
		Processing: {
			PickedPackageAndDelivery: {RoleSystem},
			DeliveryFail:             {RoleSystem},
			DeliveredSuccessfully:    {RoleSystem},
			OrderCancelled:           {RoleSystem, RoleManager},
		},
		PickedPackageAndDelivery: {
			DeliveredSuccessfully: {RoleSystem},
			DeliveryFail:          {RoleSystem},
			OrderCancelled:        {RoleSystem},
		},
		DeliveryFail: {
			ReDelivery:     {RoleSystem, RoleManager},
			OrderCancelled: {RoleSystem, RoleManager},
		},
		ReDelivery: {
			PickedPackageAndDelivery: {RoleSystem},
			DeliveryFail:             {RoleSystem},
		},
		DeliveredSuccessfully: {
			WaitForScheduling: {RoleManager},
			Installing:        {RoleContractor},
		},
		Installing: {
			DoneInstalling: {RoleContractor},
		},
		DoneInstalling: {
			CustomerConfirm: {RoleContractor},
			ReInstall:       {RoleCustomer, RoleManager},
		},
		ReInstall: {
			Installing: {RoleContractor},
		},
		CustomerConfirm: {
			Successfully: {RoleCustomer},
			Warning:      {RoleCustomer},
		},
		Successfully: {
			CompleteOrder: {RoleManager, RoleSystem},
			Warning:       {RoleCustomer},
		},
		Warning: {
			Successfully:    {RoleManager},
			Refund:          {RoleManager},
			ExchangeProduct: {RoleManager},
			StopService:     {RoleManager},
		},
		Refund: {
			DoneRefund: {RoleAccountant},
		},
		ExchangeProduct: {
			Processing: {RoleManager, RoleSystem},
		},
	}
}

// Validate checks if the Status value is one of the named catalog statuses.
// Unknown (0) and out-of-range values are invalid.
func (s Status) Validate() error {
	if s == Unknown {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the canonical name of the status.
// Returns "Unknown" for invalid status values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Code returns the stable numeric code of the status for callers that still
// speak the legacy integer vocabulary.
func (s Status) Code() int {
	return int(s)
}

// StatusFromCode resolves a legacy numeric status code into a Status.
func StatusFromCode(code int) (Status, error) {
	s := Status(code)
	if err := s.Validate(); err != nil {
		return Unknown, err
	}
	return s, nil
}

// StatusFromName resolves a status name into a Status.
func StatusFromName(name string) (Status, error) {
	for s, str := range getStatusStrings() {
		if str == name && s != Unknown {
			return s, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status name", name))
}

// IsTerminal reports whether the status ends the order lifecycle.
// Terminal statuses have no outgoing edges.
func (s Status) IsTerminal() bool {
	switch s {
	case CompleteOrder, OrderCancelled, DoneRefund, StopService:
		return true
	default:
		return false
	}
}

// CanTransition reports whether an edge from s to target exists in the graph,
// regardless of role.
func (s Status) CanTransition(target Status) bool {
	edges, ok := transitions()[s]
	if !ok {
		return false
	}
	_, ok = edges[target]
	return ok
}

// AuthorizedRoles returns the roles permitted to drive the edge from s to
// target, or nil if the edge does not exist.
func (s Status) AuthorizedRoles(target Status) []Role {
	edges, ok := transitions()[s]
	if !ok {
		return nil
	}
	return edges[target]
}

// validateTransition checks edge existence and role authorization for a
// requested transition. It returns the matching workflow error on failure.
func (s Status) validateTransition(target Status, role Role) error {
	if err := target.Validate(); err != nil {
		return err
	}
	if !s.CanTransition(target) {
		return errs.NewInvalidTransitionError(s.String(), target.String())
	}
	for _, allowed := range s.AuthorizedRoles(target) {
		if allowed == role {
			return nil
		}
	}
	return errs.NewUnauthorizedError(role.String(), s.String(), target.String())
}
