package services

import (
	"fmt"

	"greenspace/internal/core/domain/model/kernel"
	"greenspace/internal/core/domain/model/order"
	"greenspace/internal/core/domain/model/revision"
	"greenspace/internal/pkg/errs"
)

// Adjustment describes what a designer changes when resubmitting after a
// manager rejection.
type Adjustment int

const (
	// AdjustmentUnknown represents an invalid or undefined adjustment.
	AdjustmentUnknown Adjustment = iota

	// AdjustmentPrice resubmits with a new price and keeps the sketches.
	AdjustmentPrice

	// AdjustmentImages resubmits with a fresh sketch batch and keeps the price.
	AdjustmentImages

	// AdjustmentBoth resubmits with both a new price and a fresh sketch batch.
	AdjustmentBoth
)

// Validate checks that the Adjustment is one of the three defined modes.
func (a Adjustment) Validate() error {
	if a != AdjustmentPrice && a != AdjustmentImages && a != AdjustmentBoth {
		return errs.NewValueIsInvalidErrorWithCause("adjustment", fmt.Errorf("%d is not a valid adjustment", a))
	}
	return nil
}

func getAdjustmentStrings() map[Adjustment]string {
	return map[Adjustment]string{
		AdjustmentUnknown: "Unknown",
		AdjustmentPrice:   "Price",
		AdjustmentImages:  "Images",
		AdjustmentBoth:    "Both",
	}
}

// String returns the human-readable name of the adjustment mode.
func (a Adjustment) String() string {
	if s, ok := getAdjustmentStrings()[a]; ok {
		return s
	}
	return "Unknown"
}

// AdjustmentFromName resolves an adjustment mode name into an Adjustment.
func AdjustmentFromName(name string) (Adjustment, error) {
	for a, str := range getAdjustmentStrings() {
		if str == name && a != AdjustmentUnknown {
			return a, nil
		}
	}
	return AdjustmentUnknown, errs.NewValueIsInvalidErrorWithCause(
		"adjustment",
		fmt.Errorf("%q is not a valid adjustment name", name),
	)
}

// PriceApprovalGate drives the design-price negotiation between the designer
// and the manager.
//
// The flow it owns:
//
//	Propose  — designer submits a sketch batch and a price; an order still
//	           at intake (Pending, WaitForScheduling, AssignToDesigner)
//	           passes through ConsultingAndSketching on the way, and the
//	           order enters DeterminingDesignPrice.
//	Approve  — manager accepts; the order enters DoneDeterminingDesignPrice
//	           and the rejection rationale, if any, is cleared.
//	Reject   — manager refuses with a rationale; the order enters
//	           ReDeterminingDesignPrice carrying the rationale.
//	Resubmit — designer answers a rejection with a new price, a fresh sketch
//	           batch, or both; the order re-enters DeterminingDesignPrice and
//	           the rationale is cleared.
//
// Every resubmission cycle counts against the 3-iteration ceiling through
// the RevisionPhaseTracker. A price-only resubmission records the next phase
// too, carrying the previous batch's images, so rejection loops stay bounded
// no matter what the designer adjusts.
type PriceApprovalGate struct {
	tracker RevisionPhaseTracker
}

// NewPriceApprovalGate creates a new PriceApprovalGate instance.
func NewPriceApprovalGate() PriceApprovalGate {
	return PriceApprovalGate{tracker: NewRevisionPhaseTracker()}
}

// Propose records the designer's sketch batch and proposed price and moves
// the order to DeterminingDesignPrice for manager review.
func (g PriceApprovalGate) Propose(
	serviceOrder *order.ServiceOrder,
	history []*revision.Record,
	images []string,
	price kernel.Money,
	report *string,
) (SubmitResult, error) {
	if err := serviceOrder.Validate(); err != nil {
		return SubmitResult{}, err
	}
	if price.IsZero() {
		return SubmitResult{}, errs.NewPreconditionFailedError("design price must be greater than zero")
	}

	result, err := g.tracker.Submit(serviceOrder.ID(), revision.KindSketch, images, history)
	if err != nil {
		return SubmitResult{}, err
	}

	// A submission on an order still at intake implies the consulting step.
	switch serviceOrder.Status() {
	case order.Pending, order.WaitForScheduling, order.AssignToDesigner:
		if err = serviceOrder.Apply(order.RoleDesigner, order.ConsultingAndSketching, order.Payload{}); err != nil {
			return SubmitResult{}, err
		}
	}

	err = serviceOrder.Apply(order.RoleDesigner, order.DeterminingDesignPrice, order.Payload{
		DesignPrice: &price,
		Report:      report,
	})
	if err != nil {
		return SubmitResult{}, err
	}

	return result, nil
}

// Approve accepts the proposed price on behalf of the manager.
func (g PriceApprovalGate) Approve(serviceOrder *order.ServiceOrder) error {
	if err := serviceOrder.Validate(); err != nil {
		return err
	}
	return serviceOrder.Apply(order.RoleManager, order.DoneDeterminingDesignPrice, order.Payload{})
}

// Reject refuses the proposed price with the manager's rationale. The
// rationale stays on the order until the designer resubmits or the manager
// approves.
func (g PriceApprovalGate) Reject(serviceOrder *order.ServiceOrder, rationale string) error {
	if err := serviceOrder.Validate(); err != nil {
		return err
	}
	if rationale == "" {
		return errs.NewValueIsRequiredError("rationale")
	}
	return serviceOrder.Apply(order.RoleManager, order.ReDeterminingDesignPrice, order.Payload{
		ManagerNote: &rationale,
	})
}

// Resubmit answers a rejection. Depending on the adjustment mode it records a
// fresh sketch batch, replaces the price, or both, then re-enters
// DeterminingDesignPrice. The manager's rationale is cleared on success.
//
// Every mode records the next sketch phase: a price-only adjustment carries
// the previous batch's images forward, so the 3-phase ceiling bounds
// rejection cycles regardless of what changed.
func (g PriceApprovalGate) Resubmit(
	serviceOrder *order.ServiceOrder,
	history []*revision.Record,
	adjustment Adjustment,
	price *kernel.Money,
	images []string,
) (SubmitResult, error) {
	if err := serviceOrder.Validate(); err != nil {
		return SubmitResult{}, err
	}
	if err := adjustment.Validate(); err != nil {
		return SubmitResult{}, err
	}

	switch adjustment {
	case AdjustmentPrice:
		if price == nil {
			return SubmitResult{}, errs.NewValueIsRequiredError("price")
		}
		if len(images) > 0 {
			return SubmitResult{}, errs.NewValueIsInvalidError("images")
		}
	case AdjustmentImages:
		if len(images) == 0 {
			return SubmitResult{}, errs.NewValueIsRequiredError("images")
		}
		if price != nil {
			return SubmitResult{}, errs.NewValueIsInvalidError("price")
		}
	case AdjustmentBoth:
		if price == nil {
			return SubmitResult{}, errs.NewValueIsRequiredError("price")
		}
		if len(images) == 0 {
			return SubmitResult{}, errs.NewValueIsRequiredError("images")
		}
	}

	batch := images
	if adjustment == AdjustmentPrice {
		current := g.tracker.Current(history, revision.KindSketch)
		if current == nil {
			return SubmitResult{}, errs.NewPreconditionFailedError("no sketch batch to carry forward")
		}
		batch = current.Images()
	}

	result, err := g.tracker.Submit(serviceOrder.ID(), revision.KindSketch, batch, history)
	if err != nil {
		return SubmitResult{}, err
	}

	err = serviceOrder.Apply(order.RoleDesigner, order.DeterminingDesignPrice, order.Payload{
		DesignPrice: price,
	})
	if err != nil {
		return SubmitResult{}, err
	}

	return result, nil
}
