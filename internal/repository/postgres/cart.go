package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"shopbot/internal/domain"
)

// pgForeignKeyViolation is the SQLSTATE raised when a referenced row is missing
const pgForeignKeyViolation = "23503"

// CartRepo implements repository.CartRepository
type CartRepo struct {
	db *sql.DB
}

// NewCartRepo creates a new cart repository
func NewCartRepo(db *sql.DB) *CartRepo {
	return &CartRepo{db: db}
}

// AddQuantity adds qty of a color to the user's cart.
// The upsert increments an existing line in a single statement, so two
// concurrent adds of the same color can never lose an update.
func (r *CartRepo) AddQuantity(ctx context.Context, userID, colorID int64, qty int) (*domain.CartLine, error) {
	query := `
		INSERT INTO cart_items (user_id, color_id, quantity)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, color_id)
		DO UPDATE SET quantity = cart_items.quantity + EXCLUDED.quantity, updated_at = NOW()
		RETURNING id, user_id, color_id, quantity, created_at, updated_at
	`

	var l domain.CartLine
	err := r.db.QueryRowContext(ctx, query, userID, colorID, qty).Scan(
		&l.ID, &l.UserID, &l.ColorID, &l.Quantity, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pgForeignKeyViolation {
			return nil, domain.ErrColorUnavailable
		}
		return nil, err
	}
	return &l, nil
}

// ListByUser returns the user's cart lines with their colors and products
func (r *CartRepo) ListByUser(ctx context.Context, userID int64) ([]domain.CartLine, error) {
	query := `
		SELECT ci.id, ci.user_id, ci.color_id, ci.quantity, ci.created_at, ci.updated_at,
			c.name_uz, c.name_ru, c.hex_code, c.price, c.is_available,
			p.id, p.name_uz, p.name_ru, p.main_image
		FROM cart_items ci
		JOIN product_colors c ON c.id = ci.color_id
		JOIN products p ON p.id = c.product_id
		WHERE ci.user_id = $1
		ORDER BY ci.created_at, ci.id
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lines []domain.CartLine
	for rows.Next() {
		var l domain.CartLine
		var c domain.ProductColor
		var p domain.Product
		var cNameUZ, cNameRU, pNameUZ, pNameRU string
		err := rows.Scan(
			&l.ID, &l.UserID, &l.ColorID, &l.Quantity, &l.CreatedAt, &l.UpdatedAt,
			&cNameUZ, &cNameRU, &c.HexCode, &c.Price, &c.Available,
			&p.ID, &pNameUZ, &pNameRU, &p.MainImage,
		)
		if err != nil {
			return nil, err
		}
		c.ID = l.ColorID
		c.ProductID = p.ID
		c.Name = domain.NewLocalizedText(cNameUZ, cNameRU)
		p.Name = domain.NewLocalizedText(pNameUZ, pNameRU)
		c.Product = &p
		l.Color = &c
		lines = append(lines, l)
	}
	return lines, rows.Err()
}

// DeleteLine removes a single color from the user's cart
func (r *CartRepo) DeleteLine(ctx context.Context, userID, colorID int64) error {
	query := `DELETE FROM cart_items WHERE user_id = $1 AND color_id = $2`
	_, err := r.db.ExecContext(ctx, query, userID, colorID)
	return err
}

// Clear removes every line from the user's cart
func (r *CartRepo) Clear(ctx context.Context, userID int64) error {
	query := `DELETE FROM cart_items WHERE user_id = $1`
	_, err := r.db.ExecContext(ctx, query, userID)
	return err
}
