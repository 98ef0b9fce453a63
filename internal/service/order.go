package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"shopbot/internal/domain"
	"shopbot/internal/repository"
)

// OrderService handles checkout and the order lifecycle
type OrderService struct {
	orderRepo repository.OrderRepository
	logger    *zap.Logger
}

// NewOrderService creates a new order service
func NewOrderService(orderRepo repository.OrderRepository, logger *zap.Logger) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
		logger:    logger,
	}
}

// PlaceOrder converts the user's cart into a pending order
func (s *OrderService) PlaceOrder(ctx context.Context, user *domain.User) (*domain.Order, error) {
	order, err := s.orderRepo.CreateFromCart(ctx, user.ID, user.PhoneNumber)
	if err != nil {
		if errors.Is(err, domain.ErrEmptyCart) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to place order: %w", err)
	}

	s.logger.Info("Order placed",
		zap.Int64("order_id", order.ID),
		zap.Int64("user_id", user.ID),
		zap.String("total", order.TotalAmount.String()),
		zap.Int("lines", len(order.Lines)),
	)
	return order, nil
}

// ListOrders returns the user's orders newest first
func (s *OrderService) ListOrders(ctx context.Context, userID int64) ([]domain.Order, error) {
	return s.orderRepo.ListByUser(ctx, userID)
}

// GetOrder returns any order by id
func (s *OrderService) GetOrder(ctx context.Context, orderID int64) (*domain.Order, error) {
	return s.orderRepo.GetByID(ctx, orderID)
}

// CancelOrder cancels a pending order on behalf of its owner
func (s *OrderService) CancelOrder(ctx context.Context, userID, orderID int64) (*domain.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.UserID != userID {
		return nil, domain.ErrOrderNotFound
	}
	if !order.Status.CanBeCancelledByCustomer() {
		return nil, fmt.Errorf("%w: order %d is %s", domain.ErrInvalidTransition, orderID, order.Status)
	}

	updated, err := s.orderRepo.UpdateStatus(ctx, orderID, order.Status, domain.OrderStatusCancelled)
	if err != nil {
		return nil, err
	}
	updated.Lines = order.Lines

	s.logger.Info("Order cancelled by customer",
		zap.Int64("order_id", orderID),
		zap.Int64("user_id", userID),
	)
	return updated, nil
}

// UpdateStatus moves an order along the staff lifecycle
func (s *OrderService) UpdateStatus(ctx context.Context, orderID int64, rawStatus string) (*domain.Order, error) {
	next, err := domain.ParseOrderStatus(rawStatus)
	if err != nil {
		return nil, err
	}

	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !order.Status.CanTransitionTo(next) {
		return nil, fmt.Errorf("%w: %s to %s", domain.ErrInvalidTransition, order.Status, next)
	}

	updated, err := s.orderRepo.UpdateStatus(ctx, orderID, order.Status, next)
	if err != nil {
		return nil, err
	}
	updated.Lines = order.Lines

	s.logger.Info("Order status updated",
		zap.Int64("order_id", orderID),
		zap.String("from", string(order.Status)),
		zap.String("to", string(next)),
	)
	return updated, nil
}
