package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopbot/internal/domain"
)

var (
	orderRowColumns = []string{
		"id", "user_id", "status", "total_amount", "phone_number",
		"address", "notes", "created_at", "updated_at",
	}
	orderLineRowColumns = []string{
		"id", "order_id", "color_id", "quantity", "price", "created_at",
		"c_name_uz", "c_name_ru", "p_id", "p_name_uz", "p_name_ru",
	}
)

func TestOrderRepo_CreateFromCart(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Now()
	total := decimal.NewFromInt(30000500)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT ci.color_id, ci.quantity, c.price FROM cart_items ci (.+) FOR UPDATE OF ci").
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"color_id", "quantity", "price"}).
			AddRow(11, 2, "15000000.00").
			AddRow(20, 1, "500.00"))
	mock.ExpectQuery("INSERT INTO orders").
		WithArgs(int64(1), "pending", total, "+998901234567").
		WillReturnRows(sqlmock.NewRows(orderRowColumns).
			AddRow(77, 1, "pending", "30000500.00", "+998901234567", "", "", now, now))
	mock.ExpectQuery("INSERT INTO order_items").
		WithArgs(int64(77), int64(11), 2, decimal.NewFromInt(15000000)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(1, now))
	mock.ExpectQuery("INSERT INTO order_items").
		WithArgs(int64(77), int64(20), 1, decimal.NewFromInt(500)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(2, now))
	mock.ExpectExec("DELETE FROM cart_items WHERE user_id = \\$1").
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	order, err := NewOrderRepo(db).CreateFromCart(context.Background(), 1, "+998901234567")

	require.NoError(t, err)
	assert.Equal(t, int64(77), order.ID)
	assert.Equal(t, domain.OrderStatusPending, order.Status)
	assert.True(t, total.Equal(order.TotalAmount))
	require.Len(t, order.Lines, 2)
	assert.Equal(t, int64(77), order.Lines[0].OrderID)
	assert.True(t, decimal.NewFromInt(15000000).Equal(order.Lines[0].Price))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderRepo_CreateFromCart_EmptyCart(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT ci.color_id").
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"color_id", "quantity", "price"}))
	mock.ExpectRollback()

	order, err := NewOrderRepo(db).CreateFromCart(context.Background(), 1, "")

	assert.Nil(t, order)
	assert.ErrorIs(t, err, domain.ErrEmptyCart)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderRepo_CreateFromCart_RollsBackOnFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT ci.color_id").
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"color_id", "quantity", "price"}).AddRow(11, 1, "100.00"))
	mock.ExpectQuery("INSERT INTO orders").
		WillReturnRows(sqlmock.NewRows(orderRowColumns).
			AddRow(78, 1, "pending", "100.00", "", "", "", now, now))
	mock.ExpectQuery("INSERT INTO order_items").
		WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	_, err = NewOrderRepo(db).CreateFromCart(context.Background(), 1, "")

	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderRepo_ListByUser(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery("SELECT (.+) FROM orders WHERE user_id = \\$1 ORDER BY created_at DESC, id DESC").
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows(orderRowColumns).
			AddRow(78, 1, "pending", "100.00", "", "", "", now, now).
			AddRow(77, 1, "cancelled", "30000000.00", "", "", "", now.Add(-time.Hour), now))
	mock.ExpectQuery("SELECT (.+) FROM order_items oi").
		WithArgs(sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows(orderLineRowColumns).
			AddRow(1, 77, 11, 2, "15000000.00", now, "Qora", "Черный", 7, "iPhone", "iPhone").
			AddRow(3, 78, 20, 1, "100.00", now, "Oq", "Белый", 8, "Chexol", "Чехол"))

	orders, err := NewOrderRepo(db).ListByUser(context.Background(), 1)

	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, int64(78), orders[0].ID)
	require.Len(t, orders[0].Lines, 1)
	assert.Equal(t, "Чехол", orders[0].Lines[0].Color.Product.Name.In(domain.LangRU))
	require.Len(t, orders[1].Lines, 1)
	assert.Equal(t, domain.OrderStatusCancelled, orders[1].Status)
	assert.True(t, decimal.NewFromInt(30000000).Equal(orders[1].Lines[0].Total()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderRepo_GetByID_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM orders WHERE id = \\$1").
		WithArgs(int64(5)).
		WillReturnError(sql.ErrNoRows)

	_, err = NewOrderRepo(db).GetByID(context.Background(), 5)

	assert.ErrorIs(t, err, domain.ErrOrderNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderRepo_UpdateStatus(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name        string
		setup       func(mock sqlmock.Sqlmock)
		expectedErr error
	}{
		{
			name: "status still pending",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("UPDATE orders SET status = \\$3, updated_at = NOW\\(\\) WHERE id = \\$1 AND status = \\$2").
					WithArgs(int64(77), "pending", "cancelled").
					WillReturnRows(sqlmock.NewRows(orderRowColumns).
						AddRow(77, 1, "cancelled", "100.00", "", "", "", now, now))
			},
		},
		{
			name: "status changed concurrently",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("UPDATE orders SET status").
					WithArgs(int64(77), "pending", "cancelled").
					WillReturnError(sql.ErrNoRows)
			},
			expectedErr: domain.ErrInvalidTransition,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.setup(mock)

			order, err := NewOrderRepo(db).UpdateStatus(context.Background(), 77, domain.OrderStatusPending, domain.OrderStatusCancelled)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, domain.OrderStatusCancelled, order.Status)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
