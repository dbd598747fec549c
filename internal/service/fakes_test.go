package service

import (
	"context"
	"errors"
	"velocity-shop/internal/model"
	"velocity-shop/internal/repository"
)

type fakeCartRepo struct {
	items []*model.CartItem

	deleteByUserErr error
	deletedUsers    []string
}

func (r *fakeCartRepo) Create(ctx context.Context, item *model.CartItem) error {
	cp := *item
	r.items = append(r.items, &cp)
	return nil
}

func (r *fakeCartRepo) FindByUserID(ctx context.Context, userID string) ([]*model.CartItem, error) {
	out := make([]*model.CartItem, 0)
	for _, item := range r.items {
		if item.UserID == userID {
			cp := *item
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeCartRepo) UpdateQuantity(ctx context.Context, itemID string, quantity int) error {
	for _, item := range r.items {
		if item.ID == itemID {
			item.Quantity = quantity
			return nil
		}
	}
	return repository.ErrNotFound
}

func (r *fakeCartRepo) Delete(ctx context.Context, itemID string) error {
	for i, item := range r.items {
		if item.ID == itemID {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

func (r *fakeCartRepo) DeleteByUserID(ctx context.Context, userID string) (int64, error) {
	r.deletedUsers = append(r.deletedUsers, userID)
	if r.deleteByUserErr != nil {
		return 0, r.deleteByUserErr
	}

	kept := r.items[:0]
	var n int64
	for _, item := range r.items {
		if item.UserID == userID {
			n++
			continue
		}
		kept = append(kept, item)
	}
	r.items = kept
	return n, nil
}

type fakeOrderRepo struct {
	orders    []*model.Order
	createErr error
}

func (r *fakeOrderRepo) Create(ctx context.Context, order *model.Order) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.orders = append(r.orders, order)
	return nil
}

type failingUserRepo struct{}

func (failingUserRepo) List(ctx context.Context) ([]model.User, error) {
	return nil, errors.New("boom")
}
