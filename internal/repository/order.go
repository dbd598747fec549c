package repository

import (
	"context"
	"velocity-shop/internal/model"

	"gorm.io/gorm"
)

// OrderRepository is append-only: orders are never updated or removed.
type OrderRepository interface {
	Create(ctx context.Context, order *model.Order) error
}

type orderRepoImpl struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepoImpl{
		db: db,
	}
}

func (r *orderRepoImpl) Create(ctx context.Context, order *model.Order) error {
	return r.db.WithContext(ctx).Create(order).Error
}
