package service

import (
	"context"
	"testing"

	"shopbot/internal/domain"
	"shopbot/internal/testutil"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestOrderService_PlaceOrder(t *testing.T) {
	user := testutil.NewTestUser(1, 100, "+998901234567")

	t.Run("copies phone from user", func(t *testing.T) {
		mockRepo := new(testutil.MockOrderRepository)
		order := &domain.Order{ID: 10, UserID: 1, Status: domain.OrderStatusPending, TotalAmount: decimal.NewFromInt(30000000), PhoneNumber: user.PhoneNumber}
		mockRepo.On("CreateFromCart", mock.Anything, int64(1), "+998901234567").Return(order, nil)

		service := NewOrderService(mockRepo, testutil.NewTestLogger())

		result, err := service.PlaceOrder(context.Background(), user)

		require.NoError(t, err)
		assert.Equal(t, domain.OrderStatusPending, result.Status)
		assert.Equal(t, user.PhoneNumber, result.PhoneNumber)
		mockRepo.AssertExpectations(t)
	})

	t.Run("empty cart", func(t *testing.T) {
		mockRepo := new(testutil.MockOrderRepository)
		mockRepo.On("CreateFromCart", mock.Anything, int64(1), "+998901234567").Return(nil, domain.ErrEmptyCart)

		service := NewOrderService(mockRepo, testutil.NewTestLogger())

		result, err := service.PlaceOrder(context.Background(), user)

		assert.ErrorIs(t, err, domain.ErrEmptyCart)
		assert.Nil(t, result)
	})
}

func TestOrderService_CancelOrder(t *testing.T) {
	tests := []struct {
		name        string
		order       *domain.Order
		getErr      error
		expectCall  bool
		expectedErr error
	}{
		{
			name:       "pending order of owner",
			order:      &domain.Order{ID: 10, UserID: 1, Status: domain.OrderStatusPending},
			expectCall: true,
		},
		{
			name:        "order of another user",
			order:       &domain.Order{ID: 10, UserID: 2, Status: domain.OrderStatusPending},
			expectedErr: domain.ErrOrderNotFound,
		},
		{
			name:        "already confirmed",
			order:       &domain.Order{ID: 10, UserID: 1, Status: domain.OrderStatusConfirmed},
			expectedErr: domain.ErrInvalidTransition,
		},
		{
			name:        "already cancelled",
			order:       &domain.Order{ID: 10, UserID: 1, Status: domain.OrderStatusCancelled},
			expectedErr: domain.ErrInvalidTransition,
		},
		{
			name:        "missing order",
			getErr:      domain.ErrOrderNotFound,
			expectedErr: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(testutil.MockOrderRepository)
			if tt.getErr != nil {
				mockRepo.On("GetByID", mock.Anything, int64(10)).Return(nil, tt.getErr)
			} else {
				mockRepo.On("GetByID", mock.Anything, int64(10)).Return(tt.order, nil)
			}
			if tt.expectCall {
				cancelled := *tt.order
				cancelled.Status = domain.OrderStatusCancelled
				mockRepo.On("UpdateStatus", mock.Anything, int64(10), domain.OrderStatusPending, domain.OrderStatusCancelled).
					Return(&cancelled, nil)
			}

			service := NewOrderService(mockRepo, testutil.NewTestLogger())

			result, err := service.CancelOrder(context.Background(), 1, 10)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				mockRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
			} else {
				require.NoError(t, err)
				assert.Equal(t, domain.OrderStatusCancelled, result.Status)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestOrderService_UpdateStatus(t *testing.T) {
	tests := []struct {
		name        string
		current     domain.OrderStatus
		next        string
		expectedErr error
	}{
		{name: "confirm pending", current: domain.OrderStatusPending, next: "confirmed"},
		{name: "ship processing", current: domain.OrderStatusProcessing, next: "shipped"},
		{name: "skip ahead", current: domain.OrderStatusPending, next: "delivered", expectedErr: domain.ErrInvalidTransition},
		{name: "reopen delivered", current: domain.OrderStatusDelivered, next: "pending", expectedErr: domain.ErrInvalidTransition},
		{name: "unknown status", current: domain.OrderStatusPending, next: "lost", expectedErr: domain.ErrInvalidTransition},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(testutil.MockOrderRepository)
			order := &domain.Order{ID: 10, UserID: 1, Status: tt.current}
			mockRepo.On("GetByID", mock.Anything, int64(10)).Return(order, nil).Maybe()
			if tt.expectedErr == nil {
				updated := *order
				updated.Status = domain.OrderStatus(tt.next)
				mockRepo.On("UpdateStatus", mock.Anything, int64(10), tt.current, domain.OrderStatus(tt.next)).Return(&updated, nil)
			}

			service := NewOrderService(mockRepo, testutil.NewTestLogger())

			result, err := service.UpdateStatus(context.Background(), 10, tt.next)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				mockRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
			} else {
				require.NoError(t, err)
				assert.Equal(t, domain.OrderStatus(tt.next), result.Status)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}
