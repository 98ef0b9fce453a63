package service

import (
	"context"

	"shopbot/internal/domain"
	"shopbot/internal/repository"
)

// DefaultProductPageSize caps product menus when no limit is configured
const DefaultProductPageSize = 10

// CatalogService handles catalog navigation
type CatalogService struct {
	catalogRepo repository.CatalogRepository
	pageSize    int
}

// NewCatalogService creates a new catalog service
func NewCatalogService(catalogRepo repository.CatalogRepository, pageSize int) *CatalogService {
	if pageSize <= 0 {
		pageSize = DefaultProductPageSize
	}
	return &CatalogService{
		catalogRepo: catalogRepo,
		pageSize:    pageSize,
	}
}

// PageSize returns the configured product menu size
func (s *CatalogService) PageSize() int {
	return s.pageSize
}

// ListRootCategories returns active top-level categories
func (s *CatalogService) ListRootCategories(ctx context.Context) ([]domain.Category, error) {
	return s.catalogRepo.RootCategories(ctx)
}

// GetCategory returns an active category
func (s *CatalogService) GetCategory(ctx context.Context, id int64) (*domain.Category, error) {
	return s.catalogRepo.GetCategory(ctx, id)
}

// ListChildren returns an active category and its active children
func (s *CatalogService) ListChildren(ctx context.Context, categoryID int64) (*domain.Category, []domain.Category, error) {
	category, err := s.catalogRepo.GetCategory(ctx, categoryID)
	if err != nil {
		return nil, nil, err
	}

	children, err := s.catalogRepo.ChildCategories(ctx, category.ID)
	if err != nil {
		return nil, nil, err
	}
	return category, children, nil
}

// ListProducts returns up to limit active products of a category.
// A non-positive limit falls back to the configured page size.
func (s *CatalogService) ListProducts(ctx context.Context, categoryID int64, limit int) ([]domain.Product, error) {
	if limit <= 0 {
		limit = s.pageSize
	}
	return s.catalogRepo.ProductsByCategory(ctx, categoryID, limit)
}

// ListColors returns an active product and its available colors
func (s *CatalogService) ListColors(ctx context.Context, productID int64) (*domain.Product, []domain.ProductColor, error) {
	product, err := s.catalogRepo.GetProduct(ctx, productID)
	if err != nil {
		return nil, nil, err
	}

	colors, err := s.catalogRepo.ColorsByProduct(ctx, product.ID)
	if err != nil {
		return nil, nil, err
	}
	return product, colors, nil
}

// CategoryDepth returns the distance from a category to the root
func (s *CatalogService) CategoryDepth(ctx context.Context, categoryID int64) (int, error) {
	return s.catalogRepo.CategoryDepth(ctx, categoryID)
}
