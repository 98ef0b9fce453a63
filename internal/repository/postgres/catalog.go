package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"shopbot/internal/domain"
)

const (
	categoryColumns = `id, parent_id, name_uz, name_ru, image, is_active, sort_order, created_at`
	productColumns  = `p.id, p.name_uz, p.name_ru, p.description_uz, p.description_ru, p.main_image, p.is_active, p.created_at`
)

// CatalogRepo implements repository.CatalogRepository
type CatalogRepo struct {
	db *sql.DB
}

// NewCatalogRepo creates a new catalog repository
func NewCatalogRepo(db *sql.DB) *CatalogRepo {
	return &CatalogRepo{db: db}
}

func scanCategory(row rowScanner) (*domain.Category, error) {
	var c domain.Category
	var parentID sql.NullInt64
	var nameUZ, nameRU string
	err := row.Scan(&c.ID, &parentID, &nameUZ, &nameRU, &c.Image, &c.Active, &c.SortOrder, &c.CreatedAt)
	if err != nil {
		return nil, err
	}
	if parentID.Valid {
		c.ParentID = &parentID.Int64
	}
	c.Name = domain.NewLocalizedText(nameUZ, nameRU)
	return &c, nil
}

func scanProduct(row rowScanner) (*domain.Product, error) {
	var p domain.Product
	var nameUZ, nameRU, descUZ, descRU string
	err := row.Scan(&p.ID, &nameUZ, &nameRU, &descUZ, &descRU, &p.MainImage, &p.Active, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	p.Name = domain.NewLocalizedText(nameUZ, nameRU)
	p.Description = domain.NewLocalizedText(descUZ, descRU)
	return &p, nil
}

func (r *CatalogRepo) queryCategories(ctx context.Context, query string, args ...any) ([]domain.Category, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []domain.Category
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, err
		}
		categories = append(categories, *c)
	}
	return categories, rows.Err()
}

// RootCategories returns active top-level categories
func (r *CatalogRepo) RootCategories(ctx context.Context) ([]domain.Category, error) {
	query := `
		SELECT ` + categoryColumns + `
		FROM categories
		WHERE parent_id IS NULL AND is_active = TRUE
		ORDER BY sort_order, name_uz
	`
	return r.queryCategories(ctx, query)
}

// GetCategory returns an active category by id
func (r *CatalogRepo) GetCategory(ctx context.Context, id int64) (*domain.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE id = $1 AND is_active = TRUE`

	c, err := scanCategory(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrCategoryNotFound
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

// ChildCategories returns active direct children of a category
func (r *CatalogRepo) ChildCategories(ctx context.Context, parentID int64) ([]domain.Category, error) {
	query := `
		SELECT ` + categoryColumns + `
		FROM categories
		WHERE parent_id = $1 AND is_active = TRUE
		ORDER BY sort_order, name_uz
	`
	return r.queryCategories(ctx, query, parentID)
}

// CategoryDepth returns the distance from the category to its root.
// The walk stops at any node already visited, so a corrupted tree cannot loop.
func (r *CatalogRepo) CategoryDepth(ctx context.Context, id int64) (int, error) {
	query := `
		WITH RECURSIVE ancestors AS (
			SELECT id, parent_id, 0 AS depth, ARRAY[id] AS path
			FROM categories
			WHERE id = $1
			UNION ALL
			SELECT c.id, c.parent_id, a.depth + 1, a.path || c.id
			FROM categories c
			JOIN ancestors a ON c.id = a.parent_id
			WHERE NOT c.id = ANY(a.path)
		)
		SELECT MAX(depth) FROM ancestors
	`

	var depth sql.NullInt64
	if err := r.db.QueryRowContext(ctx, query, id).Scan(&depth); err != nil {
		return 0, err
	}
	if !depth.Valid {
		return 0, domain.ErrCategoryNotFound
	}
	return int(depth.Int64), nil
}

// ProductsByCategory returns active products tied directly to a category, newest first
func (r *CatalogRepo) ProductsByCategory(ctx context.Context, categoryID int64, limit int) ([]domain.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products p
		JOIN product_categories pc ON pc.product_id = p.id
		WHERE pc.category_id = $1 AND p.is_active = TRUE
		ORDER BY p.created_at DESC, p.id DESC
		LIMIT $2
	`

	rows, err := r.db.QueryContext(ctx, query, categoryID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, *p)
	}
	return products, rows.Err()
}

// GetProduct returns an active product by id
func (r *CatalogRepo) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products p WHERE p.id = $1 AND p.is_active = TRUE`

	p, err := scanProduct(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

// ColorsByProduct returns available colors of a product with their galleries
func (r *CatalogRepo) ColorsByProduct(ctx context.Context, productID int64) ([]domain.ProductColor, error) {
	query := `
		SELECT id, product_id, name_uz, name_ru, hex_code, price, is_available
		FROM product_colors
		WHERE product_id = $1 AND is_available = TRUE
		ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var colors []domain.ProductColor
	for rows.Next() {
		var c domain.ProductColor
		var nameUZ, nameRU string
		if err := rows.Scan(&c.ID, &c.ProductID, &nameUZ, &nameRU, &c.HexCode, &c.Price, &c.Available); err != nil {
			return nil, err
		}
		c.Name = domain.NewLocalizedText(nameUZ, nameRU)
		colors = append(colors, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(colors) == 0 {
		return colors, nil
	}
	if err := r.attachImages(ctx, colors); err != nil {
		return nil, err
	}
	return colors, nil
}

func (r *CatalogRepo) attachImages(ctx context.Context, colors []domain.ProductColor) error {
	ids := make([]int64, len(colors))
	index := make(map[int64]int, len(colors))
	for i, c := range colors {
		ids[i] = c.ID
		index[c.ID] = i
	}

	query := `
		SELECT color_id, image
		FROM product_color_images
		WHERE color_id = ANY($1)
		ORDER BY color_id, sort_order, id
	`

	rows, err := r.db.QueryContext(ctx, query, pq.Array(ids))
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var colorID int64
		var image string
		if err := rows.Scan(&colorID, &image); err != nil {
			return err
		}
		if i, ok := index[colorID]; ok {
			colors[i].Images = append(colors[i].Images, image)
		}
	}
	return rows.Err()
}

// GetColor returns an available color together with its product
func (r *CatalogRepo) GetColor(ctx context.Context, id int64) (*domain.ProductColor, error) {
	query := `
		SELECT c.id, c.product_id, c.name_uz, c.name_ru, c.hex_code, c.price, c.is_available,
			` + productColumns + `
		FROM product_colors c
		JOIN products p ON p.id = c.product_id
		WHERE c.id = $1 AND c.is_available = TRUE AND p.is_active = TRUE
	`

	var c domain.ProductColor
	var p domain.Product
	var nameUZ, nameRU, pNameUZ, pNameRU, pDescUZ, pDescRU string
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&c.ID, &c.ProductID, &nameUZ, &nameRU, &c.HexCode, &c.Price, &c.Available,
		&p.ID, &pNameUZ, &pNameRU, &pDescUZ, &pDescRU, &p.MainImage, &p.Active, &p.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrColorUnavailable
	}
	if err != nil {
		return nil, err
	}

	c.Name = domain.NewLocalizedText(nameUZ, nameRU)
	p.Name = domain.NewLocalizedText(pNameUZ, pNameRU)
	p.Description = domain.NewLocalizedText(pDescUZ, pDescRU)
	c.Product = &p
	return &c, nil
}
