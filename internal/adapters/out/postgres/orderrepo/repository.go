package orderrepo

import (
	"context"
	"errors"

	"greenspace/internal/core/domain/model/kernel"
	"greenspace/internal/core/domain/model/order"
	"greenspace/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
	locking bool
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// WithRowLocking makes Get take a FOR UPDATE lock on the order row. The unit
// of work enables it while a transaction is active, so concurrent writers to
// the same order serialize on the row instead of committing transitions from
// a stale snapshot.
func (r *GormOrderRepository) WithRowLocking() *GormOrderRepository {
	r.locking = true
	return r
}

// Add saves a new order to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.ServiceOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, items := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}
	if len(items) > 0 {
		if err := r.db.WithContext(ctx).Create(&items).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing order to the database. The line item rows are
// rewritten so removed items disappear.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.ServiceOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, items := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	if err := r.db.WithContext(ctx).Delete(&LineItemDTO{}, "order_id = ?", dto.ID).Error; err != nil {
		return err
	}
	if len(items) > 0 {
		if err := r.db.WithContext(ctx).Create(&items).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.ServiceOrder, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	tx := r.db.WithContext(ctx)
	if r.locking {
		tx = tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var dto OrderDTO
	if err := tx.First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	items, err := r.lineItems(ctx, dto.ID)
	if err != nil {
		return nil, err
	}

	return toDomain(dto, items)
}

// GetAllInShipping retrieves every order on its shipping leg with an
// assigned delivery code. Used to seed the shipment tracker on boot.
func (r *GormOrderRepository) GetAllInShipping(ctx context.Context) ([]*order.ServiceOrder, error) {
	shipping := []int{
		order.Processing.Code(),
		order.PickedPackageAndDelivery.Code(),
		order.DeliveryFail.Code(),
		order.ReDelivery.Code(),
	}

	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Where("status IN ? AND delivery_code <> ''", shipping).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	orders := make([]*order.ServiceOrder, 0, len(dtos))
	for _, dto := range dtos {
		items, itemsErr := r.lineItems(ctx, dto.ID)
		if itemsErr != nil {
			return nil, itemsErr
		}

		aggregate, domainErr := toDomain(dto, items)
		if domainErr != nil {
			return nil, domainErr
		}
		orders = append(orders, aggregate)
	}

	return orders, nil
}

func (r *GormOrderRepository) lineItems(ctx context.Context, orderID uuid.UUID) ([]LineItemDTO, error) {
	var items []LineItemDTO
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("position").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}
