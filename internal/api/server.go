// Package api exposes the admin REST surface over the storefront services.
package api

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"shopbot/internal/service"
)

// Pinger reports database reachability
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Server serves the admin API
type Server struct {
	sessions *service.SessionService
	catalog  *service.CatalogService
	carts    *service.CartService
	orders   *service.OrderService
	db       Pinger
	logger   *zap.Logger
}

// NewServer creates a new API server
func NewServer(
	sessions *service.SessionService,
	catalog *service.CatalogService,
	carts *service.CartService,
	orders *service.OrderService,
	db Pinger,
	logger *zap.Logger,
) *Server {
	return &Server{
		sessions: sessions,
		catalog:  catalog,
		carts:    carts,
		orders:   orders,
		db:       db,
		logger:   logger,
	}
}

// Router builds the gin engine. rateLimit is requests per client IP per minute.
func (s *Server) Router(jwtSecret []byte, rateLimit int) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), RequestLogger(s.logger))

	r.GET("/health", s.health)

	api := r.Group("/api")
	api.Use(RateLimit(int64(rateLimit), time.Minute), AdminAuth(jwtSecret))
	{
		api.GET("/categories", s.listCategories)
		api.GET("/categories/:id", s.getCategory)
		api.GET("/categories/:id/products", s.listProducts)
		api.GET("/products/:id/colors", s.listColors)

		api.GET("/users/:id", s.getUser)
		api.POST("/users/:id/toggle-active", s.toggleUser)
		api.GET("/users/:id/cart", s.getCart)
		api.DELETE("/users/:id/cart", s.clearCart)
		api.DELETE("/users/:id/cart/:colorId", s.removeCartLine)
		api.GET("/users/:id/orders", s.listOrders)

		api.POST("/orders/:id/status", s.updateOrderStatus)
	}

	return r
}
