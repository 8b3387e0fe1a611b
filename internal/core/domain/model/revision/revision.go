// Package revision contains the RevisionRecord entity: one submitted batch of
// visual material (sketch or detailed design) for an order at a given
// iteration phase.
//
// Records are append-only. Phase 0 is the customer's original reference
// material; phases 1 to 3 are iterative submissions. The RevisionPhaseTracker
// domain service owns the phase arithmetic and the selection bookkeeping;
// this package only guards the shape of a single record.
package revision

import (
	"errors"
	"fmt"
	"time"

	"greenspace/internal/core/domain/model/kernel"
	"greenspace/internal/pkg/errs"
)

// PhaseCeiling is the maximum iteration phase per kind and order.
const PhaseCeiling = 3

// MaxImages is the maximum number of image URLs per record.
const MaxImages = 3

var (
	// ErrRecordIsNotConstructed is returned when a Record instance was not
	// created through NewRecord or RestoreRecord.
	ErrRecordIsNotConstructed = errors.New("Record must be created via NewRecord or RestoreRecord")
)

// Kind distinguishes sketch submissions from detailed-design submissions.
type Kind int

const (
	// KindUnknown represents an invalid or undefined kind.
	KindUnknown Kind = iota

	// KindSketch is an early-phase sketch batch.
	KindSketch

	// KindDesign is a detailed-design batch.
	KindDesign
)

func getKindStrings() map[Kind]string {
	return map[Kind]string{
		KindUnknown: "Unknown",
		KindSketch:  "Sketch",
		KindDesign:  "Design",
	}
}

// String returns the human-readable name of the kind.
func (k Kind) String() string {
	if s, ok := getKindStrings()[k]; ok {
		return s
	}
	return "Unknown"
}

// Validate checks that the Kind is Sketch or Design.
func (k Kind) Validate() error {
	if k != KindSketch && k != KindDesign {
		return errs.NewValueIsInvalidErrorWithCause("kind", fmt.Errorf("%d is not a valid revision kind", k))
	}
	return nil
}

// Record is one immutable submission of visual material.
// Only the selection flag ever changes after creation.
type Record struct {
	id             kernel.UUID
	serviceOrderID kernel.UUID
	kind           Kind
	phase          int
	images         []string
	isSelected     bool
	createdAt      time.Time

	isConstructed bool
}

// NewRecord creates a revision record for the given phase.
// Phase must lie in [0, PhaseCeiling] and at most MaxImages URLs are allowed.
func NewRecord(
	id kernel.UUID,
	serviceOrderID kernel.UUID,
	kind Kind,
	phase int,
	images []string,
) (*Record, error) {
	if err := errors.Join(
		id.Validate(),
		serviceOrderID.Validate(),
		kind.Validate(),
	); err != nil {
		return nil, err
	}
	if phase < 0 || phase > PhaseCeiling {
		return nil, errs.NewValueIsOutOfRangeError("phase", phase, 0, PhaseCeiling)
	}
	if len(images) == 0 {
		return nil, errs.NewValueIsRequiredError("images")
	}
	if len(images) > MaxImages {
		return nil, errs.NewValueIsOutOfRangeError("images", len(images), 1, MaxImages)
	}
	for _, url := range images {
		if url == "" {
			return nil, errs.NewValueIsRequiredError("image url")
		}
	}

	return &Record{
		id:             id,
		serviceOrderID: serviceOrderID,
		kind:           kind,
		phase:          phase,
		images:         images,
		createdAt:      time.Now().UTC(),
		isConstructed:  true,
	}, nil
}

// RestoreRecord reconstructs a Record from persistence.
func RestoreRecord(
	id kernel.UUID,
	serviceOrderID kernel.UUID,
	kind Kind,
	phase int,
	images []string,
	isSelected bool,
	createdAt time.Time,
) (*Record, error) {
	record, err := NewRecord(id, serviceOrderID, kind, phase, images)
	if err != nil {
		return nil, err
	}

	record.isSelected = isSelected
	record.createdAt = createdAt
	return record, nil
}

// Validate ensures the Record instance was properly constructed.
func (r *Record) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRecordIsNotConstructed
	}
	return nil
}

// ID returns the record's unique identifier.
func (r *Record) ID() kernel.UUID {
	return r.id
}

// ServiceOrderID returns the owning order.
func (r *Record) ServiceOrderID() kernel.UUID {
	return r.serviceOrderID
}

// Kind returns Sketch or Design.
func (r *Record) Kind() Kind {
	return r.kind
}

// Phase returns the iteration phase, 0 for the customer's reference material.
func (r *Record) Phase() int {
	return r.phase
}

// Images returns the uploaded image URLs, opaque to this core.
func (r *Record) Images() []string {
	return r.images
}

// IsSelected reports whether this record is the customer's final pick.
// At most one record per kind and order carries the flag.
func (r *Record) IsSelected() bool {
	return r.isSelected
}

// CreatedAt returns the creation time, used as the tie-break when multiple
// records share a phase.
func (r *Record) CreatedAt() time.Time {
	return r.createdAt
}

// MarkSelected flags the record as the customer's final pick.
func (r *Record) MarkSelected() {
	r.isSelected = true
}

// ClearSelected removes the final-pick flag.
func (r *Record) ClearSelected() {
	r.isSelected = false
}
