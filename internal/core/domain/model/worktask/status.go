package worktask

import (
	"fmt"

	"greenspace/internal/pkg/errs"
)

// Status represents the lifecycle state of a field work task.
//
// The numeric values are the legacy task status codes. The numbering has
// holes (4, 5, 7 and 10 were retired task kinds); the remaining codes must
// stay stable because the task/order coupling table and external callers
// reference them by number.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = 0

	// Assigned is the initial status when a task is booked for an assignee.
	Assigned Status = 1

	// Consulting means the designer is on site consulting and sketching.
	Consulting Status = 2

	// DoneConsulting means the consultation finished and pricing follows.
	DoneConsulting Status = 3

	// Completed means the customer accepted the finished field work.
	Completed Status = 6

	// Installing means the contractor is installing on site.
	Installing Status = 8

	// DoneInstalling means the contractor finished the installation.
	DoneInstalling Status = 9

	// ReInstall means the installation must be redone.
	ReInstall Status = 11
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "Unknown",
		Assigned:       "Assigned",
		Consulting:     "Consulting",
		DoneConsulting: "DoneConsulting",
		Completed:      "Completed",
		Installing:     "Installing",
		DoneInstalling: "DoneInstalling",
		ReInstall:      "ReInstall",
	}
}

// Validate checks if the Status value is one of the defined task statuses.
func (s Status) Validate() error {
	if s == Unknown {
		return errs.NewValueIsInvalidErrorWithCause("task status", fmt.Errorf("%d is not a valid task status", s))
	}
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("task status", fmt.Errorf("%d is not a valid task status", s))
	}
	return nil
}

// String returns the human-readable name of the task status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Code returns the stable numeric code of the task status.
func (s Status) Code() int {
	return int(s)
}

// StatusFromCode resolves a legacy numeric task status code into a Status.
func StatusFromCode(code int) (Status, error) {
	s := Status(code)
	if err := s.Validate(); err != nil {
		return Unknown, err
	}
	return s, nil
}

// IsOnSiteStart reports whether entering the status means the assignee starts
// working on site. On-site starts are gated by the appointment window.
func (s Status) IsOnSiteStart() bool {
	return s == Consulting || s == Installing
}

// StatusFromName resolves a task status name into a Status.
func StatusFromName(name string) (Status, error) {
	for s, str := range getStatusStrings() {
		if str == name && s != Unknown {
			return s, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("task status", fmt.Errorf("%q is not a valid task status name", name))
}
