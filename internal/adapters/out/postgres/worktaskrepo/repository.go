package worktaskrepo

import (
	"context"
	"errors"

	"greenspace/internal/core/domain/model/kernel"
	"greenspace/internal/core/domain/model/worktask"
	"greenspace/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormWorkTaskRepository implements WorkTaskRepository using GORM.
type GormWorkTaskRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormWorkTaskRepository creates a new GORM work task repository.
func NewGormWorkTaskRepository(db *gorm.DB, tracker aggregateTracker) *GormWorkTaskRepository {
	return &GormWorkTaskRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new work task to the database.
func (r *GormWorkTaskRepository) Add(ctx context.Context, aggregate *worktask.WorkTask) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing work task to the database.
func (r *GormWorkTaskRepository) Update(ctx context.Context, aggregate *worktask.WorkTask) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&WorkTaskDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a work task by ID.
func (r *GormWorkTaskRepository) Get(ctx context.Context, id kernel.UUID) (*worktask.WorkTask, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto WorkTaskDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("work task", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetActiveForOrder retrieves the most recently booked task for an order.
func (r *GormWorkTaskRepository) GetActiveForOrder(ctx context.Context, serviceOrderID kernel.UUID) (*worktask.WorkTask, error) {
	if err := serviceOrderID.Validate(); err != nil {
		return nil, err
	}

	var dto WorkTaskDTO
	err := r.db.WithContext(ctx).
		Where("order_id = ?", serviceOrderID.Bytes()).
		Order("created_at DESC").
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("work task for order", serviceOrderID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
