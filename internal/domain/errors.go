package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound is the root of every lookup failure
var ErrNotFound = errors.New("not found")

var (
	ErrUserNotFound     = fmt.Errorf("user %w", ErrNotFound)
	ErrCategoryNotFound = fmt.Errorf("category %w", ErrNotFound)
	ErrProductNotFound  = fmt.Errorf("product %w", ErrNotFound)
	ErrOrderNotFound    = fmt.Errorf("order %w", ErrNotFound)
)

var (
	ErrColorUnavailable    = errors.New("color unavailable")
	ErrInvalidTransition   = errors.New("invalid order status transition")
	ErrContactMismatch     = errors.New("shared contact belongs to another user")
	ErrUnsupportedLanguage = errors.New("unsupported language")
	ErrEmptyCart           = errors.New("cart is empty")
	ErrInvalidQuantity     = errors.New("quantity must be positive")
	ErrUserInactive        = errors.New("user is inactive")
)
