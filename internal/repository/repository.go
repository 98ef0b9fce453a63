package repository

import (
	"context"

	"shopbot/internal/domain"
)

// UserRepository defines user data operations
type UserRepository interface {
	GetOrCreate(ctx context.Context, user *domain.User) (*domain.User, bool, error)
	GetByExternalID(ctx context.Context, externalID int64) (*domain.User, error)
	SetPhone(ctx context.Context, externalID int64, phone string) error
	SetLanguage(ctx context.Context, externalID int64, lang domain.Language) error
	ToggleActive(ctx context.Context, externalID int64) (bool, error)
}

// CatalogRepository defines read-only catalog operations.
// Every lookup filters out inactive categories and products and unavailable colors.
type CatalogRepository interface {
	RootCategories(ctx context.Context) ([]domain.Category, error)
	GetCategory(ctx context.Context, id int64) (*domain.Category, error)
	ChildCategories(ctx context.Context, parentID int64) ([]domain.Category, error)
	CategoryDepth(ctx context.Context, id int64) (int, error)
	ProductsByCategory(ctx context.Context, categoryID int64, limit int) ([]domain.Product, error)
	GetProduct(ctx context.Context, id int64) (*domain.Product, error)
	ColorsByProduct(ctx context.Context, productID int64) ([]domain.ProductColor, error)
	GetColor(ctx context.Context, id int64) (*domain.ProductColor, error)
}

// CartRepository defines cart data operations
type CartRepository interface {
	AddQuantity(ctx context.Context, userID, colorID int64, qty int) (*domain.CartLine, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.CartLine, error)
	DeleteLine(ctx context.Context, userID, colorID int64) error
	Clear(ctx context.Context, userID int64) error
}

// OrderRepository defines order data operations
type OrderRepository interface {
	CreateFromCart(ctx context.Context, userID int64, phone string) (*domain.Order, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Order, error)
	GetByID(ctx context.Context, id int64) (*domain.Order, error)
	UpdateStatus(ctx context.Context, id int64, from, to domain.OrderStatus) (*domain.Order, error)
}
