package service

import (
	"context"
	"sync"

	"github.com/fjod/go_shop/internal/cache"
	"github.com/fjod/go_shop/internal/domain"
	"github.com/fjod/go_shop/internal/store"
	"github.com/google/uuid"
)

type mockStore struct {
	m sync.Mutex

	product    *domain.Product
	products   []*domain.Product
	categories []string
	order      *domain.Order
	err        error

	getProductCalls int
	listCalls       int
	categoriesCalls int
	placeOrderCalls int
}

func (s *mockStore) GetProduct(context.Context, int64) (*domain.Product, error) {
	s.m.Lock()
	defer s.m.Unlock()
	s.getProductCalls++
	if s.err != nil {
		return nil, s.err
	}
	return s.product, nil
}

func (s *mockStore) ListProducts(context.Context, domain.ProductFilter) ([]*domain.Product, error) {
	s.m.Lock()
	defer s.m.Unlock()
	s.listCalls++
	if s.err != nil {
		return nil, s.err
	}
	return s.products, nil
}

func (s *mockStore) ListCategories(context.Context) ([]string, error) {
	s.m.Lock()
	defer s.m.Unlock()
	s.categoriesCalls++
	if s.err != nil {
		return nil, s.err
	}
	return s.categories, nil
}

func (s *mockStore) PlaceOrder(_ context.Context, order *domain.Order, cart []domain.CartItem) error {
	s.m.Lock()
	defer s.m.Unlock()
	s.placeOrderCalls++
	if s.err != nil {
		return s.err
	}
	items := make([]domain.OrderItem, 0, len(cart))
	for _, item := range cart {
		items = append(items, domain.OrderItem{
			ProductID:   item.ProductID,
			ProductName: "Mock Product",
			Quantity:    item.Quantity,
			Price:       10.00,
		})
	}
	order.Items = items
	order.Total = domain.ComputeTotal(items)
	s.order = order
	return nil
}

func (s *mockStore) GetOrder(context.Context, uuid.UUID) (*domain.Order, error) {
	s.m.Lock()
	defer s.m.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	if s.order == nil {
		return nil, store.ErrOrderNotFound
	}
	return s.order, nil
}

func (s *mockStore) Close() error { return nil }

type mockCache struct {
	m sync.Mutex

	products   map[int64]*domain.Product
	categories []string
	err        error

	deleted []int64
	sets    int
}

func newMockCache() *mockCache {
	return &mockCache{products: make(map[int64]*domain.Product)}
}

func (c *mockCache) GetProduct(_ context.Context, id int64) (*domain.Product, error) {
	c.m.Lock()
	defer c.m.Unlock()
	if c.err != nil {
		return nil, c.err
	}
	p, ok := c.products[id]
	if !ok {
		return nil, cache.ErrCacheMiss
	}
	return p, nil
}

func (c *mockCache) SetProduct(_ context.Context, p *domain.Product) error {
	c.m.Lock()
	defer c.m.Unlock()
	if c.err != nil {
		return c.err
	}
	c.products[p.ID] = p
	c.sets++
	return nil
}

func (c *mockCache) DeleteProduct(_ context.Context, id int64) error {
	c.m.Lock()
	defer c.m.Unlock()
	if c.err != nil {
		return c.err
	}
	delete(c.products, id)
	c.deleted = append(c.deleted, id)
	return nil
}

func (c *mockCache) GetCategories(context.Context) ([]string, error) {
	c.m.Lock()
	defer c.m.Unlock()
	if c.err != nil {
		return nil, c.err
	}
	if c.categories == nil {
		return nil, cache.ErrCacheMiss
	}
	return c.categories, nil
}

func (c *mockCache) SetCategories(_ context.Context, categories []string) error {
	c.m.Lock()
	defer c.m.Unlock()
	if c.err != nil {
		return c.err
	}
	c.categories = categories
	c.sets++
	return nil
}

func (c *mockCache) deletedIDs() []int64 {
	c.m.Lock()
	defer c.m.Unlock()
	return append([]int64(nil), c.deleted...)
}

func (c *mockCache) setCount() int {
	c.m.Lock()
	defer c.m.Unlock()
	return c.sets
}
