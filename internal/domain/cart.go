package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartLine is a single color in a user's cart.
// Price is read live from the color, so it is never stored on the line.
type CartLine struct {
	ID        int64
	UserID    int64
	ColorID   int64
	Quantity  int
	CreatedAt time.Time
	UpdatedAt time.Time
	Color     *ProductColor
}

// Price returns the current unit price of the line
func (l *CartLine) Price() decimal.Decimal {
	if l.Color == nil {
		return decimal.Zero
	}
	return l.Color.Price
}

// LineTotal returns price multiplied by quantity
func (l *CartLine) LineTotal() decimal.Decimal {
	return l.Price().Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Cart is the full content of a user's cart
type Cart struct {
	UserID int64
	Lines  []CartLine
}

// Total sums all line totals
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for i := range c.Lines {
		total = total.Add(c.Lines[i].LineTotal())
	}
	return total
}

// IsEmpty reports whether the cart has no lines
func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}
