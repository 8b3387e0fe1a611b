// Package revisionrepo provides data transfer objects and mapping functions
// for revision record persistence. The image URLs of a record are stored as
// a Postgres text array.
package revisionrepo

import (
	"time"

	"greenspace/internal/core/domain/model/kernel"
	"greenspace/internal/core/domain/model/revision"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// RevisionDTO represents the database structure for persisting revision
// records.
type RevisionDTO struct {
	ID         uuid.UUID      `gorm:"type:uuid;primaryKey"`
	OrderID    uuid.UUID      `gorm:"type:uuid;index"`
	Kind       int            `gorm:"index"`
	Phase      int
	Images     pq.StringArray `gorm:"type:text[]"`
	IsSelected bool
	CreatedAt  time.Time
}

// TableName specifies the database table name for revision records.
func (RevisionDTO) TableName() string {
	return "revisions"
}

// fromDomain converts a revision record to its database representation.
func fromDomain(record *revision.Record) RevisionDTO {
	return RevisionDTO{
		ID:         record.ID().Bytes(),
		OrderID:    record.ServiceOrderID().Bytes(),
		Kind:       int(record.Kind()),
		Phase:      record.Phase(),
		Images:     pq.StringArray(record.Images()),
		IsSelected: record.IsSelected(),
		CreatedAt:  record.CreatedAt(),
	}
}

// toDomain converts a database DTO back into a revision record using
// RestoreRecord.
func toDomain(dto RevisionDTO) (*revision.Record, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	return revision.RestoreRecord(
		id,
		orderID,
		revision.Kind(dto.Kind),
		dto.Phase,
		[]string(dto.Images),
		dto.IsSelected,
		dto.CreatedAt,
	)
}
