package orderrepo

import (
	"context"
	"errors"
	"time"

	"foodtasker/internal/core/domain/model/kernel"
	"foodtasker/internal/core/domain/model/order"
	"foodtasker/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
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

// Add saves a new order and its lines to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
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

// Update saves an existing order's mutable state to the database.
// Lines are checkout-time snapshots and are never rewritten.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).Where("id = ?", dto.ID).
		Updates(map[string]any{
			"driver_id": dto.DriverID,
			"status":    dto.Status,
			"picked_at": dto.PickedAt,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID with its lines.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).Preload("Lines").First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// HasActiveOrder reports whether the customer has an undelivered order.
func (r *GormOrderRepository) HasActiveOrder(ctx context.Context, customerID kernel.UUID) (bool, error) {
	if err := customerID.Validate(); err != nil {
		return false, err
	}

	var count int64
	err := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("customer_id = ? AND status <> ?", customerID.Bytes(), order.Delivered).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// HasOrderOnTheWay reports whether the driver is currently carrying an order.
func (r *GormOrderRepository) HasOrderOnTheWay(ctx context.Context, driverID kernel.UUID) (bool, error) {
	if err := driverID.Validate(); err != nil {
		return false, err
	}

	var count int64
	err := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("driver_id = ? AND status = ?", driverID.Bytes(), order.OnTheWay).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// AssignDriver claims a ready, unassigned order for the driver with one
// conditional update. The driver assignment, the OnTheWay status, and the
// pickup timestamp are written together; zero affected rows means the order
// was not claimable, whether another driver won the race or the id never
// matched a ready order at all.
func (r *GormOrderRepository) AssignDriver(
	ctx context.Context,
	orderID kernel.UUID,
	driverID kernel.UUID,
	pickedAt time.Time,
) error {
	if err := errors.Join(orderID.Validate(), driverID.Validate()); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ? AND driver_id IS NULL AND status = ?", orderID.Bytes(), order.Ready).
		Updates(map[string]any{
			"driver_id": driverID.Bytes(),
			"status":    int(order.OnTheWay),
			"picked_at": pickedAt,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return order.ErrAlreadyPicked
	}

	return nil
}
