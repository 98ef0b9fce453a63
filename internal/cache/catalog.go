package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"shopbot/internal/domain"
	"shopbot/internal/repository"
)

const (
	notFoundMarker = "notfound"
	notFoundTTL    = time.Minute
	keyPrefix      = "catalog:"
)

// CatalogRepository caches catalog reads in redis.
// Redis failures fall through to the wrapped repository.
type CatalogRepository struct {
	realRepo repository.CatalogRepository
	redis    *redis.Client
	ttl      time.Duration
	logger   *zap.Logger
}

// NewCatalogRepository wraps realRepo with a redis cache
func NewCatalogRepository(realRepo repository.CatalogRepository, client *redis.Client, ttl time.Duration, logger *zap.Logger) *CatalogRepository {
	return &CatalogRepository{
		realRepo: realRepo,
		redis:    client,
		ttl:      ttl,
		logger:   logger,
	}
}

func (c *CatalogRepository) RootCategories(ctx context.Context) ([]domain.Category, error) {
	return cached(ctx, c, keyPrefix+"categories:root", nil, func() ([]domain.Category, error) {
		return c.realRepo.RootCategories(ctx)
	})
}

func (c *CatalogRepository) GetCategory(ctx context.Context, id int64) (*domain.Category, error) {
	key := fmt.Sprintf("%scategory:%d", keyPrefix, id)
	return cached(ctx, c, key, domain.ErrCategoryNotFound, func() (*domain.Category, error) {
		return c.realRepo.GetCategory(ctx, id)
	})
}

func (c *CatalogRepository) ChildCategories(ctx context.Context, parentID int64) ([]domain.Category, error) {
	key := fmt.Sprintf("%scategory:%d:children", keyPrefix, parentID)
	return cached(ctx, c, key, nil, func() ([]domain.Category, error) {
		return c.realRepo.ChildCategories(ctx, parentID)
	})
}

func (c *CatalogRepository) CategoryDepth(ctx context.Context, id int64) (int, error) {
	key := fmt.Sprintf("%scategory:%d:depth", keyPrefix, id)
	return cached(ctx, c, key, domain.ErrCategoryNotFound, func() (int, error) {
		return c.realRepo.CategoryDepth(ctx, id)
	})
}

func (c *CatalogRepository) ProductsByCategory(ctx context.Context, categoryID int64, limit int) ([]domain.Product, error) {
	key := fmt.Sprintf("%scategory:%d:products:%d", keyPrefix, categoryID, limit)
	return cached(ctx, c, key, nil, func() ([]domain.Product, error) {
		return c.realRepo.ProductsByCategory(ctx, categoryID, limit)
	})
}

func (c *CatalogRepository) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	key := fmt.Sprintf("%sproduct:%d", keyPrefix, id)
	return cached(ctx, c, key, domain.ErrProductNotFound, func() (*domain.Product, error) {
		return c.realRepo.GetProduct(ctx, id)
	})
}

func (c *CatalogRepository) ColorsByProduct(ctx context.Context, productID int64) ([]domain.ProductColor, error) {
	key := fmt.Sprintf("%sproduct:%d:colors", keyPrefix, productID)
	return cached(ctx, c, key, nil, func() ([]domain.ProductColor, error) {
		return c.realRepo.ColorsByProduct(ctx, productID)
	})
}

// GetColor always reads through so availability checks at cart time are current
func (c *CatalogRepository) GetColor(ctx context.Context, id int64) (*domain.ProductColor, error) {
	return c.realRepo.GetColor(ctx, id)
}

// cached returns the value stored at key or loads and stores it.
// When notFound is set, a load failing with it is remembered for notFoundTTL.
func cached[T any](ctx context.Context, c *CatalogRepository, key string, notFound error, load func() (T, error)) (T, error) {
	var zero T

	data, err := c.redis.Get(ctx, key).Bytes()

	switch {
	case err == nil:
		if string(data) == notFoundMarker && notFound != nil {
			return zero, notFound
		}

		var value T
		if err := json.Unmarshal(data, &value); err != nil {
			c.logger.Warn("Failed to unmarshal cached value, continuing with DB",
				zap.String("key", key),
				zap.Error(err),
			)
			break
		}
		return value, nil

	case errors.Is(err, redis.Nil):

	default:
		c.logger.Warn("Redis error, continuing with DB", zap.String("key", key), zap.Error(err))
	}

	value, err := load()
	if err != nil {
		if notFound != nil && errors.Is(err, notFound) {
			if setErr := c.redis.Set(ctx, key, notFoundMarker, notFoundTTL).Err(); setErr != nil {
				c.logger.Warn("Failed to cache miss", zap.String("key", key), zap.Error(setErr))
			}
		}
		return zero, err
	}

	encoded, err := json.Marshal(value)
	if err != nil {
		c.logger.Warn("Failed to marshal value for cache", zap.String("key", key), zap.Error(err))
		return value, nil
	}

	if err := c.redis.Set(ctx, key, encoded, c.ttl).Err(); err != nil {
		c.logger.Warn("Failed to cache value", zap.String("key", key), zap.Error(err))
	}

	return value, nil
}
