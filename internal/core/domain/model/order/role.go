package order

import (
	"fmt"

	"greenspace/internal/pkg/errs"
)

// Role identifies the kind of actor attempting a status transition.
// Each edge of the transition graph names the roles permitted to drive it.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	RoleUnknown Role = iota

	// RoleCustomer is the person who requested the design.
	RoleCustomer

	// RoleDesigner sketches, designs and prices the engagement.
	RoleDesigner

	// RoleManager approves pricing and schedules field work.
	RoleManager

	// RoleContractor performs on-site installation.
	RoleContractor

	// RoleAccountant confirms deposits, payments and refunds.
	RoleAccountant

	// RoleSystem is the shipment reconciler acting on carrier reports.
	RoleSystem
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown:    "Unknown",
		RoleCustomer:   "Customer",
		RoleDesigner:   "Designer",
		RoleManager:    "Manager",
		RoleContractor: "Contractor",
		RoleAccountant: "Accountant",
		RoleSystem:     "System",
	}
}

// String returns the human-readable name of the role.
func (r Role) String() string {
	if s, ok := getRoleStrings()[r]; ok {
		return s
	}
	return "Unknown"
}

// Validate checks that the Role is one of the defined actor roles.
func (r Role) Validate() error {
	if r <= RoleUnknown || r > RoleSystem {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// RoleFromName resolves a role name into a Role.
func RoleFromName(name string) (Role, error) {
	for r, str := range getRoleStrings() {
		if str == name && r != RoleUnknown {
			return r, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a valid role name", name))
}
