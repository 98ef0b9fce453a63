package service

import (
	"context"
	"fmt"

	"shopbot/internal/domain"
	"shopbot/internal/repository"
)

// CartService handles cart mutations
type CartService struct {
	cartRepo    repository.CartRepository
	catalogRepo repository.CatalogRepository
}

// NewCartService creates a new cart service
func NewCartService(cartRepo repository.CartRepository, catalogRepo repository.CatalogRepository) *CartService {
	return &CartService{
		cartRepo:    cartRepo,
		catalogRepo: catalogRepo,
	}
}

// AddLine adds qty of an available color to the user's cart.
// Adding a color already in the cart increments its quantity.
func (s *CartService) AddLine(ctx context.Context, userID, colorID int64, qty int) (*domain.CartLine, error) {
	if qty < 1 {
		return nil, domain.ErrInvalidQuantity
	}

	color, err := s.catalogRepo.GetColor(ctx, colorID)
	if err != nil {
		return nil, err
	}

	line, err := s.cartRepo.AddQuantity(ctx, userID, color.ID, qty)
	if err != nil {
		return nil, fmt.Errorf("failed to add color %d to cart: %w", colorID, err)
	}

	line.Color = color
	return line, nil
}

// ListLines returns the user's cart with live prices
func (s *CartService) ListLines(ctx context.Context, userID int64) (*domain.Cart, error) {
	lines, err := s.cartRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}
	return &domain.Cart{UserID: userID, Lines: lines}, nil
}

// RemoveLine deletes one color from the user's cart
func (s *CartService) RemoveLine(ctx context.Context, userID, colorID int64) error {
	return s.cartRepo.DeleteLine(ctx, userID, colorID)
}

// Clear deletes every line of the user's cart
func (s *CartService) Clear(ctx context.Context, userID int64) error {
	return s.cartRepo.Clear(ctx, userID)
}
