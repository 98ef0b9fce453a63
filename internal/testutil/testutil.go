package testutil

import (
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"shopbot/internal/domain"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestUser creates a test user
func NewTestUser(id, externalID int64, phone string) *domain.User {
	return &domain.User{
		ID:          id,
		ExternalID:  externalID,
		DisplayName: "Test User",
		PhoneNumber: phone,
		Language:    domain.LangUZ,
		Active:      true,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
}

// NewTestCategory creates an active test category
func NewTestCategory(id int64, parentID *int64, nameUZ, nameRU string) *domain.Category {
	return &domain.Category{
		ID:        id,
		ParentID:  parentID,
		Name:      domain.NewLocalizedText(nameUZ, nameRU),
		Active:    true,
		CreatedAt: time.Now(),
	}
}

// NewTestProduct creates an active test product
func NewTestProduct(id int64, nameUZ, nameRU string) *domain.Product {
	return &domain.Product{
		ID:          id,
		Name:        domain.NewLocalizedText(nameUZ, nameRU),
		Description: domain.NewLocalizedText("", ""),
		Active:      true,
		CreatedAt:   time.Now(),
	}
}

// NewTestColor creates an available test color
func NewTestColor(id, productID int64, nameUZ, nameRU string, price int64) *domain.ProductColor {
	return &domain.ProductColor{
		ID:        id,
		ProductID: productID,
		Name:      domain.NewLocalizedText(nameUZ, nameRU),
		Price:     decimal.NewFromInt(price),
		Available: true,
	}
}

// Int64Ptr returns a pointer to v
func Int64Ptr(v int64) *int64 {
	return &v
}
