package service

import (
	"context"
	"errors"
	"fmt"
	"velocity-shop/internal/dto"
	"velocity-shop/internal/model"
	"velocity-shop/internal/repository"

	"github.com/google/uuid"
)

type CartService interface {
	Add(ctx context.Context, req dto.CartAddRequest) (*model.CartItem, error)
	ListByUser(ctx context.Context, userID string) ([]*model.CartItem, error)
	UpdateQuantity(ctx context.Context, itemID string, quantity int) error
	Remove(ctx context.Context, itemID string) error
}

type cartServiceImpl struct {
	cartRepo repository.CartRepository
}

func NewCartService(cartRepo repository.CartRepository) CartService {
	return &cartServiceImpl{
		cartRepo: cartRepo,
	}
}

// Add stores the item as sent. Nothing is checked against the catalog or the user list.
func (s *cartServiceImpl) Add(ctx context.Context, req dto.CartAddRequest) (*model.CartItem, error) {
	item := &model.CartItem{
		ID:        uuid.NewString(),
		UserID:    req.UserID,
		ProductID: req.ProductID,
		Name:      req.Name,
		Price:     req.Price,
		Quantity:  req.Quantity,
		Size:      req.Size,
		Image:     req.Image,
	}

	if err := s.cartRepo.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("create cart item: %w", err)
	}

	return item, nil
}

func (s *cartServiceImpl) ListByUser(ctx context.Context, userID string) ([]*model.CartItem, error) {
	owner := cartOwner(userID)

	items, err := s.cartRepo.FindByUserID(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("find cart of %s: %w", owner, err)
	}

	return items, nil
}

func (s *cartServiceImpl) UpdateQuantity(ctx context.Context, itemID string, quantity int) error {
	err := s.cartRepo.UpdateQuantity(ctx, itemID, quantity)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrCartItemNotFound
	}
	if err != nil {
		return fmt.Errorf("update cart item %s: %w", itemID, err)
	}

	return nil
}

func (s *cartServiceImpl) Remove(ctx context.Context, itemID string) error {
	err := s.cartRepo.Delete(ctx, itemID)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrCartItemNotFound
	}
	if err != nil {
		return fmt.Errorf("delete cart item %s: %w", itemID, err)
	}

	return nil
}

// cartOwner crosses user1 and user2 on the read path only.
// Checkout clears the literal user's cart.
func cartOwner(userID string) string {
	switch userID {
	case "user1":
		return "user2"
	case "user2":
		return "user1"
	default:
		return userID
	}
}
