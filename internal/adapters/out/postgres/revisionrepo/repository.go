package revisionrepo

import (
	"context"

	"greenspace/internal/core/domain/model/kernel"
	"greenspace/internal/core/domain/model/revision"

	"gorm.io/gorm"
)

// GormRevisionRepository implements RevisionRepository using GORM.
type GormRevisionRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormRevisionRepository creates a new GORM revision repository.
func NewGormRevisionRepository(db *gorm.DB, tracker aggregateTracker) *GormRevisionRepository {
	return &GormRevisionRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new revision record to the database.
func (r *GormRevisionRepository) Add(ctx context.Context, record *revision.Record) error {
	if err := record.Validate(); err != nil {
		return err
	}

	dto := fromDomain(record)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(record.ID(), record)
	return nil
}

// Update persists the selection flag of an existing record. Records are
// otherwise immutable.
func (r *GormRevisionRepository) Update(ctx context.Context, record *revision.Record) error {
	if err := record.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&RevisionDTO{}).
		Where("id = ?", record.ID().Bytes()).
		Update("is_selected", record.IsSelected())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(record.ID(), record)
	return nil
}

// GetAllForOrder retrieves an order's full revision history, oldest first.
func (r *GormRevisionRepository) GetAllForOrder(ctx context.Context, serviceOrderID kernel.UUID) ([]*revision.Record, error) {
	if err := serviceOrderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []RevisionDTO
	err := r.db.WithContext(ctx).
		Where("order_id = ?", serviceOrderID.Bytes()).
		Order("created_at").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	records := make([]*revision.Record, 0, len(dtos))
	for _, dto := range dtos {
		record, domainErr := toDomain(dto)
		if domainErr != nil {
			return nil, domainErr
		}
		records = append(records, record)
	}

	return records, nil
}
