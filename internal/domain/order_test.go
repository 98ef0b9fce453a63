package domain

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestOrderStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name     string
		from     OrderStatus
		to       OrderStatus
		expected bool
	}{
		{name: "pending to confirmed", from: OrderStatusPending, to: OrderStatusConfirmed, expected: true},
		{name: "pending to cancelled", from: OrderStatusPending, to: OrderStatusCancelled, expected: true},
		{name: "pending to shipped", from: OrderStatusPending, to: OrderStatusShipped, expected: false},
		{name: "confirmed to processing", from: OrderStatusConfirmed, to: OrderStatusProcessing, expected: true},
		{name: "processing to shipped", from: OrderStatusProcessing, to: OrderStatusShipped, expected: true},
		{name: "shipped to delivered", from: OrderStatusShipped, to: OrderStatusDelivered, expected: true},
		{name: "shipped to cancelled", from: OrderStatusShipped, to: OrderStatusCancelled, expected: false},
		{name: "delivered is final", from: OrderStatusDelivered, to: OrderStatusCancelled, expected: false},
		{name: "cancelled is final", from: OrderStatusCancelled, to: OrderStatusPending, expected: false},
		{name: "unknown status", from: OrderStatus("lost"), to: OrderStatusCancelled, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestOrderStatus_CanBeCancelledByCustomer(t *testing.T) {
	assert.True(t, OrderStatusPending.CanBeCancelledByCustomer())
	assert.False(t, OrderStatusConfirmed.CanBeCancelledByCustomer())
	assert.False(t, OrderStatusCancelled.CanBeCancelledByCustomer())
}

func TestParseOrderStatus(t *testing.T) {
	s, err := ParseOrderStatus("shipped")
	assert.NoError(t, err)
	assert.Equal(t, OrderStatusShipped, s)

	_, err = ParseOrderStatus("teleported")
	assert.True(t, errors.Is(err, ErrInvalidTransition))
}

func TestOrderLine_Total(t *testing.T) {
	line := OrderLine{Quantity: 3, Price: decimal.RequireFromString("19.99")}
	assert.True(t, decimal.RequireFromString("59.97").Equal(line.Total()))
}
