package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"shopbot/internal/domain"
)

const orderColumns = `id, user_id, status, total_amount, phone_number, address, notes, created_at, updated_at`

// OrderRepo implements repository.OrderRepository
type OrderRepo struct {
	db *sql.DB
}

// NewOrderRepo creates a new order repository
func NewOrderRepo(db *sql.DB) *OrderRepo {
	return &OrderRepo{db: db}
}

func scanOrder(row rowScanner) (*domain.Order, error) {
	var o domain.Order
	var status string
	err := row.Scan(
		&o.ID, &o.UserID, &status, &o.TotalAmount, &o.PhoneNumber,
		&o.Address, &o.Notes, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	o.Status = domain.OrderStatus(status)
	return &o, nil
}

// CreateFromCart converts the user's whole cart into a pending order.
// Cart rows are locked for the duration of the transaction; the order,
// its lines and the cart deletion commit together or not at all.
func (r *OrderRepo) CreateFromCart(ctx context.Context, userID int64, phone string) (*domain.Order, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	lockQuery := `
		SELECT ci.color_id, ci.quantity, c.price
		FROM cart_items ci
		JOIN product_colors c ON c.id = ci.color_id
		WHERE ci.user_id = $1
		ORDER BY ci.id
		FOR UPDATE OF ci
	`

	rows, err := tx.QueryContext(ctx, lockQuery, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to lock cart: %w", err)
	}

	var lines []domain.OrderLine
	total := decimal.Zero
	for rows.Next() {
		var l domain.OrderLine
		if err := rows.Scan(&l.ColorID, &l.Quantity, &l.Price); err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan cart line: %w", err)
		}
		total = total.Add(l.Total())
		lines = append(lines, l)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read cart: %w", err)
	}

	if len(lines) == 0 {
		return nil, domain.ErrEmptyCart
	}

	insertOrder := `
		INSERT INTO orders (user_id, status, total_amount, phone_number)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + orderColumns

	order, err := scanOrder(tx.QueryRowContext(ctx, insertOrder,
		userID, string(domain.OrderStatusPending), total, phone,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	insertLine := `
		INSERT INTO order_items (order_id, color_id, quantity, price)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`
	for i := range lines {
		lines[i].OrderID = order.ID
		err := tx.QueryRowContext(ctx, insertLine,
			order.ID, lines[i].ColorID, lines[i].Quantity, lines[i].Price,
		).Scan(&lines[i].ID, &lines[i].CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to create order line: %w", err)
		}
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM cart_items WHERE user_id = $1`, userID); err != nil {
		return nil, fmt.Errorf("failed to clear cart: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	order.Lines = lines
	return order, nil
}

// ListByUser returns the user's orders newest first, each with its lines
func (r *OrderRepo) ListByUser(ctx context.Context, userID int64) ([]domain.Order, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(orders) == 0 {
		return orders, nil
	}
	if err := r.attachLines(ctx, orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// GetByID returns an order with its lines
func (r *OrderRepo) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`

	o, err := scanOrder(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}

	orders := []domain.Order{*o}
	if err := r.attachLines(ctx, orders); err != nil {
		return nil, err
	}
	return &orders[0], nil
}

// UpdateStatus moves an order from one status to another.
// It fails with ErrInvalidTransition when the order is no longer in the
// expected status, so concurrent transitions cannot overwrite each other.
func (r *OrderRepo) UpdateStatus(ctx context.Context, id int64, from, to domain.OrderStatus) (*domain.Order, error) {
	query := `
		UPDATE orders
		SET status = $3, updated_at = NOW()
		WHERE id = $1 AND status = $2
		RETURNING ` + orderColumns

	o, err := scanOrder(r.db.QueryRowContext(ctx, query, id, string(from), string(to)))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrInvalidTransition
	}
	if err != nil {
		return nil, err
	}
	return o, nil
}

func (r *OrderRepo) attachLines(ctx context.Context, orders []domain.Order) error {
	ids := make([]int64, len(orders))
	index := make(map[int64]int, len(orders))
	for i, o := range orders {
		ids[i] = o.ID
		index[o.ID] = i
	}

	query := `
		SELECT oi.id, oi.order_id, oi.color_id, oi.quantity, oi.price, oi.created_at,
			c.name_uz, c.name_ru, p.id, p.name_uz, p.name_ru
		FROM order_items oi
		JOIN product_colors c ON c.id = oi.color_id
		JOIN products p ON p.id = c.product_id
		WHERE oi.order_id = ANY($1)
		ORDER BY oi.order_id, oi.id
	`

	rows, err := r.db.QueryContext(ctx, query, pq.Array(ids))
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var l domain.OrderLine
		var c domain.ProductColor
		var p domain.Product
		var cNameUZ, cNameRU, pNameUZ, pNameRU string
		err := rows.Scan(
			&l.ID, &l.OrderID, &l.ColorID, &l.Quantity, &l.Price, &l.CreatedAt,
			&cNameUZ, &cNameRU, &p.ID, &pNameUZ, &pNameRU,
		)
		if err != nil {
			return err
		}
		c.ID = l.ColorID
		c.ProductID = p.ID
		c.Name = domain.NewLocalizedText(cNameUZ, cNameRU)
		p.Name = domain.NewLocalizedText(pNameUZ, pNameRU)
		c.Product = &p
		l.Color = &c
		if i, ok := index[l.OrderID]; ok {
			orders[i].Lines = append(orders[i].Lines, l)
		}
	}
	return rows.Err()
}
