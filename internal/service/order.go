package service

import (
	"context"
	"fmt"
	"time"
	"velocity-shop/internal/dto"
	"velocity-shop/internal/model"
	"velocity-shop/internal/repository"

	"github.com/google/uuid"
)

type OrderService interface {
	Create(ctx context.Context, req dto.OrderRequest) (*dto.OrderResponse, error)
}

type orderServiceImpl struct {
	orderRepo repository.OrderRepository
	cartRepo  repository.CartRepository
	now       func() time.Time
}

func NewOrderService(
	orderRepo repository.OrderRepository,
	cartRepo repository.CartRepository,
) OrderService {
	return &orderServiceImpl{
		orderRepo: orderRepo,
		cartRepo:  cartRepo,
		now:       time.Now,
	}
}

// Create records the order and then empties the submitting user's cart.
// The two writes are independent: if clearing fails the order stays recorded.
func (s *orderServiceImpl) Create(ctx context.Context, req dto.OrderRequest) (*dto.OrderResponse, error) {
	items := req.Items
	if items == nil {
		items = []map[string]any{}
	}

	order := &model.Order{
		ID:           uuid.NewString(),
		UserID:       req.UserID,
		Items:        items,
		Total:        req.Total,
		ShippingInfo: req.ShippingInfo,
		PaymentInfo:  req.PaymentInfo,
		CreatedAt:    s.now().UTC(),
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	if _, err := s.cartRepo.DeleteByUserID(ctx, req.UserID); err != nil {
		return nil, fmt.Errorf("clear cart of %s after order %s: %w", req.UserID, order.ID, err)
	}

	return &dto.OrderResponse{
		Success: true,
		OrderID: order.ID,
	}, nil
}
