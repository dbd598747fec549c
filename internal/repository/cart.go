package repository

import (
	"context"
	"velocity-shop/internal/model"

	"gorm.io/gorm"
)

type CartRepository interface {
	Create(ctx context.Context, item *model.CartItem) error
	FindByUserID(ctx context.Context, userID string) ([]*model.CartItem, error)
	UpdateQuantity(ctx context.Context, itemID string, quantity int) error
	Delete(ctx context.Context, itemID string) error
	DeleteByUserID(ctx context.Context, userID string) (int64, error)
}

type cartRepoImpl struct {
	db *gorm.DB
}

func NewCartRepository(db *gorm.DB) CartRepository {
	return &cartRepoImpl{
		db: db,
	}
}

func (r *cartRepoImpl) Create(ctx context.Context, item *model.CartItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *cartRepoImpl) FindByUserID(ctx context.Context, userID string) ([]*model.CartItem, error) {
	items := make([]*model.CartItem, 0)
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Limit(maxCartItems).
		Find(&items).Error

	if err != nil {
		return nil, err
	}

	return items, nil
}

func (r *cartRepoImpl) UpdateQuantity(ctx context.Context, itemID string, quantity int) error {
	result := r.db.WithContext(ctx).
		Model(&model.CartItem{}).
		Where("id = ?", itemID).
		Update("quantity", quantity)

	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *cartRepoImpl) Delete(ctx context.Context, itemID string) error {
	result := r.db.WithContext(ctx).
		Where("id = ?", itemID).
		Delete(&model.CartItem{})

	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *cartRepoImpl) DeleteByUserID(ctx context.Context, userID string) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.CartItem{})

	return result.RowsAffected, result.Error
}
