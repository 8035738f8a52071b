package persistence

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/griffix/backend/internal/domain/order"
	"github.com/griffix/backend/internal/domain/shared"
)

// GormOrderRepository implements order.Repository using GORM
type GormOrderRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewGormOrderRepository creates a new GormOrderRepository
func NewGormOrderRepository(db *gorm.DB, logger *zap.Logger) *GormOrderRepository {
	return &GormOrderRepository{db: db, logger: logger}
}

// Save persists a new order
func (r *GormOrderRepository) Save(ctx context.Context, o *order.Order) error {
	if err := r.db.WithContext(ctx).Create(o).Error; err != nil {
		r.logger.Error("order insert failed", zap.String("order_id", o.OrderID), zap.Error(err))
		return shared.ErrStorage
	}
	return nil
}

// FindByID finds an order by its public id
func (r *GormOrderRepository) FindByID(ctx context.Context, orderID string) (*order.Order, error) {
	var o order.Order
	if err := r.db.WithContext(ctx).First(&o, "order_id = ?", orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		r.logger.Error("order lookup failed", zap.String("order_id", orderID), zap.Error(err))
		return nil, shared.ErrStorage
	}
	return &o, nil
}

// FindAll returns all orders, newest first
func (r *GormOrderRepository) FindAll(ctx context.Context) ([]order.Order, error) {
	var orders []order.Order
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&orders).Error; err != nil {
		r.logger.Error("order list failed", zap.Error(err))
		return nil, shared.ErrStorage
	}
	return orders, nil
}

// UpdateStatus changes the status of a single order inside a
// transaction and returns the updated record.
func (r *GormOrderRepository) UpdateStatus(ctx context.Context, orderID, status string) (*order.Order, error) {
	var updated *order.Order
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var o order.Order
		if err := tx.First(&o, "order_id = ?", orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return shared.ErrNotFound
			}
			return shared.ErrStorage
		}
		if err := o.SetStatus(status); err != nil {
			return err
		}
		if err := tx.Model(&order.Order{}).
			Where("order_id = ?", orderID).
			Update("status", o.Status).Error; err != nil {
			return shared.ErrStorage
		}
		updated = &o
		return nil
	})
	if err != nil {
		var domainErr *shared.DomainError
		if !errors.As(err, &domainErr) {
			r.logger.Error("order status update failed", zap.String("order_id", orderID), zap.Error(err))
			err = shared.ErrStorage
		}
		return nil, err
	}
	return updated, nil
}
