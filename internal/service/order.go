package service

import (
	"context"
	"fmt"

	"github.com/nikita1503agarwal/storefront-backend/internal/apperr"
	"github.com/nikita1503agarwal/storefront-backend/internal/event"
	"github.com/nikita1503agarwal/storefront-backend/internal/model"
	"github.com/nikita1503agarwal/storefront-backend/internal/repository"
	"github.com/nikita1503agarwal/storefront-backend/internal/store"
	"github.com/nikita1503agarwal/storefront-backend/pkg/validator"
)

// OrderStatusReceived is the acknowledgement status returned on intake.
const OrderStatusReceived = "received"

type OrderService interface {
	CreateOrder(ctx context.Context, order model.Order) (string, error)
}

type orderService struct {
	store     store.Store
	orderRepo repository.OrderRepository
	validator validator.Validator
	events    *event.Publisher
}

func NewOrderService(
	s store.Store,
	orderRepo repository.OrderRepository,
	v validator.Validator,
	events *event.Publisher,
) OrderService {
	return &orderService{
		store:     s,
		orderRepo: orderRepo,
		validator: v,
		events:    events,
	}
}

// CreateOrder validates the payload and persists it verbatim. Monetary fields
// are trusted as supplied; there is no recomputation or cross-check against
// live catalog prices, and no stock decrement.
func (s *orderService) CreateOrder(ctx context.Context, order model.Order) (string, error) {
	if err := s.validator.Validate(order); err != nil {
		return "", fmt.Errorf("validate order: %w", err)
	}

	if s.store == nil {
		return "", apperr.StoreNotConfiguredErr
	}

	id, err := s.orderRepo.CreateOrder(ctx, order)
	if err != nil {
		return "", fmt.Errorf("order repository create order: %w", err)
	}

	s.events.OrderReceived(ctx, event.OrderReceivedEvent{
		OrderID:       id,
		ItemCount:     len(order.Items),
		Total:         *order.Total,
		CustomerEmail: order.CustomerEmail,
	})

	return id, nil
}
