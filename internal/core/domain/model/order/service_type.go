package order

import (
	"fmt"

	"greenspace/internal/pkg/errs"
)

// ServiceType distinguishes a fully custom design engagement from one based
// on a catalog template.
type ServiceType int

const (
	// ServiceTypeUnknown represents an invalid or undefined service type.
	ServiceTypeUnknown ServiceType = iota

	// ServiceTypeCustomDesign is a design created from scratch for the customer.
	ServiceTypeCustomDesign

	// ServiceTypeTemplateDesign is a design adapted from a catalog template.
	ServiceTypeTemplateDesign
)

func getServiceTypeStrings() map[ServiceType]string {
	return map[ServiceType]string{
		ServiceTypeUnknown:        "Unknown",
		ServiceTypeCustomDesign:   "CustomDesign",
		ServiceTypeTemplateDesign: "TemplateDesign",
	}
}

// String returns the human-readable name of the service type.
func (t ServiceType) String() string {
	if s, ok := getServiceTypeStrings()[t]; ok {
		return s
	}
	return "Unknown"
}

// Validate checks that the ServiceType is one of the defined types.
func (t ServiceType) Validate() error {
	if t != ServiceTypeCustomDesign && t != ServiceTypeTemplateDesign {
		return errs.NewValueIsInvalidErrorWithCause(
			"serviceType",
			fmt.Errorf("%d is not a valid service type", t),
		)
	}
	return nil
}

// ServiceTypeFromName resolves a service type name into a ServiceType.
func ServiceTypeFromName(name string) (ServiceType, error) {
	for t, str := range getServiceTypeStrings() {
		if str == name && t != ServiceTypeUnknown {
			return t, nil
		}
	}
	return ServiceTypeUnknown, errs.NewValueIsInvalidErrorWithCause(
		"serviceType",
		fmt.Errorf("%q is not a valid service type name", name),
	)
}
