package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Category is a node of the catalog tree
type Category struct {
	ID        int64
	ParentID  *int64
	Name      LocalizedText
	Image     string
	Active    bool
	SortOrder int
	CreatedAt time.Time
}

// Localized implements Localizable
func (c *Category) Localized(field Field) LocalizedText {
	if field == FieldName {
		return c.Name
	}
	return nil
}

// IsRoot reports whether the category has no parent
func (c *Category) IsRoot() bool {
	return c.ParentID == nil
}

// Product is a catalog item sold in one or more colors
type Product struct {
	ID          int64
	Name        LocalizedText
	Description LocalizedText
	MainImage   string
	Active      bool
	CreatedAt   time.Time
}

// Localized implements Localizable
func (p *Product) Localized(field Field) LocalizedText {
	switch field {
	case FieldName:
		return p.Name
	case FieldDescription:
		return p.Description
	}
	return nil
}

// HasImage reports whether the product has a main image
func (p *Product) HasImage() bool {
	return p.MainImage != ""
}

// ProductColor is a purchasable variant of a product
type ProductColor struct {
	ID        int64
	ProductID int64
	Name      LocalizedText
	HexCode   string
	Price     decimal.Decimal
	Available bool
	Images    []string
	Product   *Product
}

// Localized implements Localizable
func (c *ProductColor) Localized(field Field) LocalizedText {
	if field == FieldName {
		return c.Name
	}
	return nil
}
