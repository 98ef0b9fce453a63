package api

import (
	"time"

	"github.com/shopspring/decimal"

	"shopbot/internal/domain"
)

type categoryResponse struct {
	ID        int64                `json:"id"`
	ParentID  *int64               `json:"parent_id"`
	Name      domain.LocalizedText `json:"name"`
	Image     string               `json:"image,omitempty"`
	SortOrder int                  `json:"sort_order"`
}

type categoryDetailResponse struct {
	categoryResponse
	Depth    int                `json:"depth"`
	Children []categoryResponse `json:"children"`
}

type productResponse struct {
	ID          int64                `json:"id"`
	Name        domain.LocalizedText `json:"name"`
	Description domain.LocalizedText `json:"description"`
	MainImage   string               `json:"main_image,omitempty"`
	CreatedAt   time.Time            `json:"created_at"`
}

type colorResponse struct {
	ID      int64                `json:"id"`
	Name    domain.LocalizedText `json:"name"`
	HexCode string               `json:"hex_code,omitempty"`
	Price   decimal.Decimal      `json:"price"`
	Images  []string             `json:"images"`
}

type userResponse struct {
	ID          int64           `json:"id"`
	ExternalID  int64           `json:"external_id"`
	DisplayName string          `json:"display_name"`
	Username    string          `json:"username,omitempty"`
	PhoneNumber string          `json:"phone_number"`
	Language    domain.Language `json:"language"`
	Active      bool            `json:"active"`
	CreatedAt   time.Time       `json:"created_at"`
}

type cartLineResponse struct {
	ColorID   int64           `json:"color_id"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	LineTotal decimal.Decimal `json:"line_total"`
}

type cartResponse struct {
	Lines []cartLineResponse `json:"lines"`
	Total decimal.Decimal    `json:"total"`
}

type orderLineResponse struct {
	ColorID  int64           `json:"color_id"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

type orderResponse struct {
	ID          int64               `json:"id"`
	Status      domain.OrderStatus  `json:"status"`
	TotalAmount decimal.Decimal     `json:"total_amount"`
	PhoneNumber string              `json:"phone_number"`
	CreatedAt   time.Time           `json:"created_at"`
	Lines       []orderLineResponse `json:"lines"`
}

type updateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func toCategory(c *domain.Category) categoryResponse {
	return categoryResponse{
		ID:        c.ID,
		ParentID:  c.ParentID,
		Name:      c.Name,
		Image:     c.Image,
		SortOrder: c.SortOrder,
	}
}

func toCategories(categories []domain.Category) []categoryResponse {
	result := make([]categoryResponse, 0, len(categories))
	for i := range categories {
		result = append(result, toCategory(&categories[i]))
	}
	return result
}

func toProduct(p *domain.Product) productResponse {
	return productResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		MainImage:   p.MainImage,
		CreatedAt:   p.CreatedAt,
	}
}

func toColor(c *domain.ProductColor) colorResponse {
	images := c.Images
	if images == nil {
		images = []string{}
	}
	return colorResponse{
		ID:      c.ID,
		Name:    c.Name,
		HexCode: c.HexCode,
		Price:   c.Price,
		Images:  images,
	}
}

func toUser(u *domain.User) userResponse {
	return userResponse{
		ID:          u.ID,
		ExternalID:  u.ExternalID,
		DisplayName: u.DisplayName,
		Username:    u.Username,
		PhoneNumber: u.PhoneNumber,
		Language:    u.Language,
		Active:      u.Active,
		CreatedAt:   u.CreatedAt,
	}
}

func toCart(cart *domain.Cart) cartResponse {
	lines := make([]cartLineResponse, 0, len(cart.Lines))
	for i := range cart.Lines {
		line := &cart.Lines[i]
		lines = append(lines, cartLineResponse{
			ColorID:   line.ColorID,
			Quantity:  line.Quantity,
			Price:     line.Price(),
			LineTotal: line.LineTotal(),
		})
	}
	return cartResponse{Lines: lines, Total: cart.Total()}
}

func toOrder(o *domain.Order) orderResponse {
	lines := make([]orderLineResponse, 0, len(o.Lines))
	for _, line := range o.Lines {
		lines = append(lines, orderLineResponse{
			ColorID:  line.ColorID,
			Quantity: line.Quantity,
			Price:    line.Price,
		})
	}
	return orderResponse{
		ID:          o.ID,
		Status:      o.Status,
		TotalAmount: o.TotalAmount,
		PhoneNumber: o.PhoneNumber,
		CreatedAt:   o.CreatedAt,
		Lines:       lines,
	}
}
