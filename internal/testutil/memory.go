package testutil

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"shopbot/internal/domain"
)

// MemoryStore is an in-memory user and catalog repository.
// Carts and Orders expose the remaining repositories over the same state.
// It follows the same filtering and atomicity rules as the postgres layer.
type MemoryStore struct {
	mu sync.Mutex

	users      map[int64]*domain.User
	categories map[int64]*domain.Category
	products   map[int64]*domain.Product
	productCat map[int64][]int64
	colors     map[int64]*domain.ProductColor
	cart       map[int64][]*domain.CartLine
	orders     map[int64]*domain.Order

	nextUserID  int64
	nextLineID  int64
	nextOrderID int64
	nextItemID  int64
}

// NewMemoryStore creates an empty store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:      make(map[int64]*domain.User),
		categories: make(map[int64]*domain.Category),
		products:   make(map[int64]*domain.Product),
		productCat: make(map[int64][]int64),
		colors:     make(map[int64]*domain.ProductColor),
		cart:       make(map[int64][]*domain.CartLine),
		orders:     make(map[int64]*domain.Order),
	}
}

// PutCategory inserts or replaces a category
func (s *MemoryStore) PutCategory(c *domain.Category) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *c
	s.categories[c.ID] = &cp
}

// PutProduct inserts or replaces a product and links it to categories
func (s *MemoryStore) PutProduct(p *domain.Product, categoryIDs ...int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *p
	s.products[p.ID] = &cp
	s.productCat[p.ID] = append([]int64(nil), categoryIDs...)
}

// PutColor inserts or replaces a product color
func (s *MemoryStore) PutColor(c *domain.ProductColor) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *c
	s.colors[c.ID] = &cp
}

// SetColorPrice changes the live price of a color
func (s *MemoryStore) SetColorPrice(colorID int64, price decimal.Decimal) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c, ok := s.colors[colorID]; ok {
		c.Price = price
	}
}

// SetColorAvailable toggles the availability of a color
func (s *MemoryStore) SetColorAvailable(colorID int64, available bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c, ok := s.colors[colorID]; ok {
		c.Available = available
	}
}

// SetUserActive sets the active flag of a user
func (s *MemoryStore) SetUserActive(externalID int64, active bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u, ok := s.users[externalID]; ok {
		u.Active = active
	}
}

// UserRepository

func (s *MemoryStore) GetOrCreate(_ context.Context, user *domain.User) (*domain.User, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if u, ok := s.users[user.ExternalID]; ok {
		cp := *u
		return &cp, false, nil
	}

	s.nextUserID++
	now := time.Now()
	u := *user
	u.ID = s.nextUserID
	if !u.Language.IsValid() {
		u.Language = domain.DefaultLanguage
	}
	u.Active = true
	u.CreatedAt = now
	u.UpdatedAt = now
	s.users[u.ExternalID] = &u

	cp := u
	return &cp, true, nil
}

func (s *MemoryStore) GetByExternalID(_ context.Context, externalID int64) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[externalID]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (s *MemoryStore) SetPhone(_ context.Context, externalID int64, phone string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[externalID]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.PhoneNumber = phone
	u.UpdatedAt = time.Now()
	return nil
}

func (s *MemoryStore) SetLanguage(_ context.Context, externalID int64, lang domain.Language) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[externalID]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.Language = lang
	u.UpdatedAt = time.Now()
	return nil
}

func (s *MemoryStore) ToggleActive(_ context.Context, externalID int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[externalID]
	if !ok {
		return false, domain.ErrUserNotFound
	}
	u.Active = !u.Active
	return u.Active, nil
}

// CatalogRepository

func (s *MemoryStore) RootCategories(_ context.Context) ([]domain.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.categoriesWhere(func(c *domain.Category) bool { return c.ParentID == nil }), nil
}

func (s *MemoryStore) GetCategory(_ context.Context, id int64) (*domain.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.categories[id]
	if !ok || !c.Active {
		return nil, domain.ErrCategoryNotFound
	}
	cp := *c
	return &cp, nil
}

func (s *MemoryStore) ChildCategories(_ context.Context, parentID int64) ([]domain.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.categoriesWhere(func(c *domain.Category) bool {
		return c.ParentID != nil && *c.ParentID == parentID
	}), nil
}

func (s *MemoryStore) categoriesWhere(match func(*domain.Category) bool) []domain.Category {
	result := make([]domain.Category, 0)
	for _, c := range s.categories {
		if c.Active && match(c) {
			result = append(result, *c)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].SortOrder != result[j].SortOrder {
			return result[i].SortOrder < result[j].SortOrder
		}
		return result[i].Name.In(domain.LangUZ) < result[j].Name.In(domain.LangUZ)
	})
	return result
}

func (s *MemoryStore) CategoryDepth(_ context.Context, id int64) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.categories[id]
	if !ok {
		return 0, domain.ErrCategoryNotFound
	}

	seen := map[int64]bool{c.ID: true}
	depth := 0
	for c.ParentID != nil {
		parent, ok := s.categories[*c.ParentID]
		if !ok || seen[parent.ID] {
			break
		}
		seen[parent.ID] = true
		depth++
		c = parent
	}
	return depth, nil
}

func (s *MemoryStore) ProductsByCategory(_ context.Context, categoryID int64, limit int) ([]domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]domain.Product, 0)
	for id, p := range s.products {
		if !p.Active {
			continue
		}
		for _, cid := range s.productCat[id] {
			if cid == categoryID {
				result = append(result, *p)
				break
			}
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].CreatedAt.After(result[j].CreatedAt)
		}
		return result[i].ID > result[j].ID
	})
	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (s *MemoryStore) GetProduct(_ context.Context, id int64) (*domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.products[id]
	if !ok || !p.Active {
		return nil, domain.ErrProductNotFound
	}
	cp := *p
	return &cp, nil
}

func (s *MemoryStore) ColorsByProduct(_ context.Context, productID int64) ([]domain.ProductColor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]domain.ProductColor, 0)
	for _, c := range s.colors {
		if c.ProductID == productID && c.Available {
			result = append(result, *c)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (s *MemoryStore) GetColor(_ context.Context, id int64) (*domain.ProductColor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.availableColor(id)
}

func (s *MemoryStore) availableColor(id int64) (*domain.ProductColor, error) {
	c, ok := s.colors[id]
	if !ok || !c.Available {
		return nil, domain.ErrColorUnavailable
	}
	p, ok := s.products[c.ProductID]
	if !ok || !p.Active {
		return nil, domain.ErrColorUnavailable
	}
	cp := *c
	pc := *p
	cp.Product = &pc
	return &cp, nil
}

// Carts returns the cart repository view of the store
func (s *MemoryStore) Carts() MemoryCarts {
	return MemoryCarts{s}
}

// Orders returns the order repository view of the store
func (s *MemoryStore) Orders() MemoryOrders {
	return MemoryOrders{s}
}

// MemoryCarts implements CartRepository on top of a MemoryStore
type MemoryCarts struct{ *MemoryStore }

// MemoryOrders implements OrderRepository on top of a MemoryStore
type MemoryOrders struct{ *MemoryStore }

// CartRepository

func (r MemoryCarts) AddQuantity(_ context.Context, userID, colorID int64, qty int) (*domain.CartLine, error) {
	s := r.MemoryStore
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.colors[colorID]; !ok {
		return nil, domain.ErrColorUnavailable
	}

	now := time.Now()
	for _, line := range s.cart[userID] {
		if line.ColorID == colorID {
			line.Quantity += qty
			line.UpdatedAt = now
			cp := *line
			return &cp, nil
		}
	}

	s.nextLineID++
	line := &domain.CartLine{
		ID:        s.nextLineID,
		UserID:    userID,
		ColorID:   colorID,
		Quantity:  qty,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.cart[userID] = append(s.cart[userID], line)
	cp := *line
	return &cp, nil
}

func (r MemoryCarts) ListByUser(_ context.Context, userID int64) ([]domain.CartLine, error) {
	s := r.MemoryStore
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]domain.CartLine, 0, len(s.cart[userID]))
	for _, line := range s.cart[userID] {
		cp := *line
		if c, ok := s.colors[line.ColorID]; ok {
			color := *c
			if p, ok := s.products[c.ProductID]; ok {
				pc := *p
				color.Product = &pc
			}
			cp.Color = &color
		}
		result = append(result, cp)
	}
	return result, nil
}

func (r MemoryCarts) DeleteLine(_ context.Context, userID, colorID int64) error {
	s := r.MemoryStore
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := s.cart[userID]
	for i, line := range lines {
		if line.ColorID == colorID {
			s.cart[userID] = append(lines[:i], lines[i+1:]...)
			break
		}
	}
	return nil
}

func (r MemoryCarts) Clear(_ context.Context, userID int64) error {
	s := r.MemoryStore
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.cart, userID)
	return nil
}

// OrderRepository

func (r MemoryOrders) CreateFromCart(_ context.Context, userID int64, phone string) (*domain.Order, error) {
	s := r.MemoryStore
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := s.cart[userID]
	if len(lines) == 0 {
		return nil, domain.ErrEmptyCart
	}

	now := time.Now()
	s.nextOrderID++
	order := &domain.Order{
		ID:          s.nextOrderID,
		UserID:      userID,
		Status:      domain.OrderStatusPending,
		PhoneNumber: phone,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	total := decimal.Zero
	for _, line := range lines {
		c, ok := s.colors[line.ColorID]
		if !ok {
			return nil, fmt.Errorf("color %d disappeared: %w", line.ColorID, domain.ErrColorUnavailable)
		}
		s.nextItemID++
		item := domain.OrderLine{
			ID:        s.nextItemID,
			OrderID:   order.ID,
			ColorID:   line.ColorID,
			Quantity:  line.Quantity,
			Price:     c.Price,
			CreatedAt: now,
		}
		total = total.Add(item.Total())
		order.Lines = append(order.Lines, item)
	}
	order.TotalAmount = total

	s.orders[order.ID] = order
	delete(s.cart, userID)
	return copyOrder(order), nil
}

func (r MemoryOrders) ListByUser(_ context.Context, userID int64) ([]domain.Order, error) {
	s := r.MemoryStore
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]domain.Order, 0)
	for _, o := range s.orders {
		if o.UserID == userID {
			result = append(result, *copyOrder(o))
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID > result[j].ID })
	return result, nil
}

func (r MemoryOrders) GetByID(_ context.Context, id int64) (*domain.Order, error) {
	s := r.MemoryStore
	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.orders[id]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	return copyOrder(o), nil
}

func (r MemoryOrders) UpdateStatus(_ context.Context, id int64, from, to domain.OrderStatus) (*domain.Order, error) {
	s := r.MemoryStore
	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.orders[id]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	if o.Status != from {
		return nil, fmt.Errorf("%w: order %d is no longer %s", domain.ErrInvalidTransition, id, from)
	}
	o.Status = to
	o.UpdatedAt = time.Now()
	return copyOrder(o), nil
}

func copyOrder(o *domain.Order) *domain.Order {
	cp := *o
	cp.Lines = append([]domain.OrderLine(nil), o.Lines...)
	return &cp
}
