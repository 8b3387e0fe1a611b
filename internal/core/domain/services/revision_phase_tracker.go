package services

import (
	"greenspace/internal/core/domain/model/kernel"
	"greenspace/internal/core/domain/model/revision"
	"greenspace/internal/pkg/errs"
)

// SubmitResult is the outcome of a revision submission.
type SubmitResult struct {
	// Record is the newly created revision record.
	Record *revision.Record

	// FinalPhase is an advisory flag: the submission landed on the last
	// permitted iteration, so the next attempt of the same kind will be
	// rejected with the ceiling error.
	FinalPhase bool
}

// RevisionPhaseTracker is a domain service owning the phase arithmetic over
// an order's revision history.
//
// Rules:
//   - Phase 0 is the customer's reference material and is created with the
//     order, never through Submit.
//   - Each Submit lands on the next free phase for its kind: one past the
//     highest phase already recorded.
//   - At most 3 iterations per kind; a fourth submission is rejected with
//     PhaseCeilingExceededError and requires manual escalation.
//   - At most one record per kind carries the customer's selection flag.
type RevisionPhaseTracker struct{}

// NewRevisionPhaseTracker creates a new RevisionPhaseTracker instance.
func NewRevisionPhaseTracker() RevisionPhaseTracker {
	return RevisionPhaseTracker{}
}

// Submit creates the next-phase record of the given kind for an order.
// The history must hold every prior record of the order; records of other
// kinds are ignored for the phase computation.
func (t RevisionPhaseTracker) Submit(
	serviceOrderID kernel.UUID,
	kind revision.Kind,
	images []string,
	history []*revision.Record,
) (SubmitResult, error) {
	if err := kind.Validate(); err != nil {
		return SubmitResult{}, err
	}

	next := t.highestPhase(history, kind) + 1
	if next > revision.PhaseCeiling {
		return SubmitResult{}, errs.NewPhaseCeilingExceededError(kind.String(), revision.PhaseCeiling)
	}

	record, err := revision.NewRecord(kernel.NewUUID(), serviceOrderID, kind, next, images)
	if err != nil {
		return SubmitResult{}, err
	}

	return SubmitResult{
		Record:     record,
		FinalPhase: next == revision.PhaseCeiling,
	}, nil
}

// Select marks one record of the history as the customer's final pick and
// clears the flag on every other record of the same kind.
func (t RevisionPhaseTracker) Select(history []*revision.Record, recordID kernel.UUID) error {
	if err := recordID.Validate(); err != nil {
		return err
	}

	var picked *revision.Record
	for _, record := range history {
		if record.ID().IsEqual(recordID) {
			picked = record
			break
		}
	}
	if picked == nil {
		return errs.NewObjectNotFoundError("revision record", recordID)
	}

	for _, record := range history {
		if record.Kind() == picked.Kind() {
			record.ClearSelected()
		}
	}
	picked.MarkSelected()
	return nil
}

// Current returns the record the downstream steps should work from: the
// highest phase of the kind, latest creation time breaking a phase tie.
// It returns nil when the history holds no record of the kind.
func (t RevisionPhaseTracker) Current(history []*revision.Record, kind revision.Kind) *revision.Record {
	var current *revision.Record
	for _, record := range history {
		if record.Kind() != kind {
			continue
		}
		if current == nil ||
			record.Phase() > current.Phase() ||
			(record.Phase() == current.Phase() && record.CreatedAt().After(current.CreatedAt())) {
			current = record
		}
	}
	return current
}

func (t RevisionPhaseTracker) highestPhase(history []*revision.Record, kind revision.Kind) int {
	highest := 0
	for _, record := range history {
		if record.Kind() == kind && record.Phase() > highest {
			highest = record.Phase()
		}
	}
	return highest
}
