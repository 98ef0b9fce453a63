package api

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"shopbot/internal/domain"
)

// healthResponse is the body of GET /health
type healthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Checks    map[string]string `json:"checks"`
}

// health handles GET /health
func (s *Server) health(c *gin.Context) {
	checks := make(map[string]string)
	status := "healthy"

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := s.db.PingContext(ctx); err != nil {
		checks["database"] = "unhealthy: " + err.Error()
		status = "unhealthy"
	} else {
		checks["database"] = "healthy"
	}

	statusCode := http.StatusOK
	if status == "unhealthy" {
		statusCode = http.StatusServiceUnavailable
	}

	c.JSON(statusCode, healthResponse{
		Status:    status,
		Timestamp: time.Now(),
		Checks:    checks,
	})
}

// listCategories handles GET /api/categories?parent=<id>
func (s *Server) listCategories(c *gin.Context) {
	raw := c.Query("parent")
	if raw == "" {
		categories, err := s.catalog.ListRootCategories(c.Request.Context())
		if err != nil {
			s.respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, toCategories(categories))
		return
	}

	parentID, ok := parseID(raw)
	if !ok {
		badRequest(c, "invalid parent id")
		return
	}

	_, children, err := s.catalog.ListChildren(c.Request.Context(), parentID)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toCategories(children))
}

// getCategory handles GET /api/categories/:id
func (s *Server) getCategory(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		badRequest(c, "invalid category id")
		return
	}
	ctx := c.Request.Context()

	category, children, err := s.catalog.ListChildren(ctx, id)
	if err != nil {
		s.respondError(c, err)
		return
	}

	depth, err := s.catalog.CategoryDepth(ctx, id)
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, categoryDetailResponse{
		categoryResponse: toCategory(category),
		Depth:            depth,
		Children:         toCategories(children),
	})
}

// listProducts handles GET /api/categories/:id/products?limit=<n>
func (s *Server) listProducts(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		badRequest(c, "invalid category id")
		return
	}

	limit := s.catalog.PageSize()
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			badRequest(c, "invalid limit")
			return
		}
		limit = n
	}

	products, err := s.catalog.ListProducts(c.Request.Context(), id, limit)
	if err != nil {
		s.respondError(c, err)
		return
	}

	result := make([]productResponse, 0, len(products))
	for i := range products {
		result = append(result, toProduct(&products[i]))
	}
	c.JSON(http.StatusOK, result)
}

// listColors handles GET /api/products/:id/colors
func (s *Server) listColors(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		badRequest(c, "invalid product id")
		return
	}

	product, colors, err := s.catalog.ListColors(c.Request.Context(), id)
	if err != nil {
		s.respondError(c, err)
		return
	}

	result := make([]colorResponse, 0, len(colors))
	for i := range colors {
		result = append(result, toColor(&colors[i]))
	}
	c.JSON(http.StatusOK, gin.H{
		"product": toProduct(product),
		"colors":  result,
	})
}

// getUser handles GET /api/users/:id
func (s *Server) getUser(c *gin.Context) {
	user, ok := s.userParam(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, toUser(user))
}

// toggleUser handles POST /api/users/:id/toggle-active
func (s *Server) toggleUser(c *gin.Context) {
	externalID, ok := parseID(c.Param("id"))
	if !ok {
		badRequest(c, "invalid user id")
		return
	}

	active, err := s.sessions.ToggleActive(c.Request.Context(), externalID)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"external_id": externalID, "active": active})
}

// getCart handles GET /api/users/:id/cart
func (s *Server) getCart(c *gin.Context) {
	user, ok := s.userParam(c)
	if !ok {
		return
	}

	cart, err := s.carts.ListLines(c.Request.Context(), user.ID)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toCart(cart))
}

// clearCart handles DELETE /api/users/:id/cart
func (s *Server) clearCart(c *gin.Context) {
	user, ok := s.userParam(c)
	if !ok {
		return
	}

	if err := s.carts.Clear(c.Request.Context(), user.ID); err != nil {
		s.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// removeCartLine handles DELETE /api/users/:id/cart/:colorId
func (s *Server) removeCartLine(c *gin.Context) {
	colorID, ok := parseID(c.Param("colorId"))
	if !ok {
		badRequest(c, "invalid color id")
		return
	}

	user, ok := s.userParam(c)
	if !ok {
		return
	}

	if err := s.carts.RemoveLine(c.Request.Context(), user.ID, colorID); err != nil {
		s.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// listOrders handles GET /api/users/:id/orders
func (s *Server) listOrders(c *gin.Context) {
	user, ok := s.userParam(c)
	if !ok {
		return
	}

	orders, err := s.orders.ListOrders(c.Request.Context(), user.ID)
	if err != nil {
		s.respondError(c, err)
		return
	}

	result := make([]orderResponse, 0, len(orders))
	for i := range orders {
		result = append(result, toOrder(&orders[i]))
	}
	c.JSON(http.StatusOK, result)
}

// updateOrderStatus handles POST /api/orders/:id/status
func (s *Server) updateOrderStatus(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		badRequest(c, "invalid order id")
		return
	}

	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "status is required")
		return
	}

	order, err := s.orders.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toOrder(order))
}

// userParam resolves the :id path parameter as a chat identity
func (s *Server) userParam(c *gin.Context) (*domain.User, bool) {
	externalID, ok := parseID(c.Param("id"))
	if !ok {
		badRequest(c, "invalid user id")
		return nil, false
	}

	user, err := s.sessions.GetUser(c.Request.Context(), externalID)
	if err != nil {
		s.respondError(c, err)
		return nil, false
	}
	return user, true
}

func parseID(raw string) (int64, bool) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
