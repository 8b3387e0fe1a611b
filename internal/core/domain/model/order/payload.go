package order

import "greenspace/internal/core/domain/model/kernel"

// Payload carries the field updates that accompany a status transition.
// Nil fields are left untouched; set fields are written together with the
// status in the same Apply call, so a transition and its payload are one
// logical write.
type Payload struct {
	// DesignPrice is the designer's proposed design price.
	DesignPrice *kernel.Money

	// MaterialPrice overrides the derived material price. When nil, the
	// material price stays derived from the line items.
	MaterialPrice *kernel.Money

	// Details replaces the material line items.
	Details []LineItem

	// Report is the designer's free-text progress note (HTML).
	Report *string

	// ManagerNote is the manager's rejection rationale. Required when the
	// target status is ReDeterminingDesignPrice and forbidden otherwise.
	ManagerNote *string

	// AccountantNote is the accountant's note on a payment or refund step.
	AccountantNote *string

	// DeliveryCode is the external carrier tracking code. It is assigned once
	// when shipping begins and cannot be changed afterwards.
	DeliveryCode *string
}
