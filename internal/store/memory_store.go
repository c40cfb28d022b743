package store

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/fjod/go_shop/internal/domain"
	"github.com/google/uuid"
)

// MemoryStore implements Store with in-memory storage. It is the
// development backend; the postgres repository is the production one.
type MemoryStore struct {
	mu       sync.RWMutex
	products map[int64]*domain.Product
	orders   map[uuid.UUID]*domain.Order
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		products: make(map[int64]*domain.Product),
		orders:   make(map[uuid.UUID]*domain.Order),
	}
}

// Seed fills an empty catalog. Calling it again on a non-empty catalog
// is a no-op, so startup seeding stays idempotent.
func (s *MemoryStore) Seed(products []domain.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.products) > 0 {
		return
	}
	for i := range products {
		p := products[i]
		s.products[p.ID] = &p
	}
}

func (s *MemoryStore) GetProduct(_ context.Context, id int64) (*domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, exists := s.products[id]
	if !exists {
		return nil, ErrProductNotFound
	}
	cp := *p
	return &cp, nil
}

func (s *MemoryStore) ListProducts(_ context.Context, filter domain.ProductFilter) ([]*domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]int64, 0, len(s.products))
	for id := range s.products {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	term := strings.ToLower(filter.Search)
	result := make([]*domain.Product, 0, len(ids))
	for _, id := range ids {
		p := s.products[id]
		if filter.Category != "" && p.Category != filter.Category {
			continue
		}
		if term != "" &&
			!strings.Contains(strings.ToLower(p.Name), term) &&
			!strings.Contains(strings.ToLower(p.Description), term) {
			continue
		}
		cp := *p
		result = append(result, &cp)
	}
	return result, nil
}

func (s *MemoryStore) ListCategories(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]struct{})
	for _, p := range s.products {
		seen[p.Category] = struct{}{}
	}
	categories := make([]string, 0, len(seen))
	for c := range seen {
		categories = append(categories, c)
	}
	sort.Strings(categories)
	return categories, nil
}

func (s *MemoryStore) PlaceOrder(_ context.Context, order *domain.Order, cart []domain.CartItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// First pass: validate every item before touching any stock.
	// Repeated product ids draw down the same remaining balance, so a
	// cart cannot pass validation by splitting one oversized quantity
	// across several lines.
	remaining := make(map[int64]int, len(cart))
	for _, item := range cart {
		p, exists := s.products[item.ProductID]
		if !exists {
			return fmt.Errorf("product %d: %w", item.ProductID, ErrProductNotFound)
		}
		available, seen := remaining[item.ProductID]
		if !seen {
			available = p.Stock
		}
		if available < item.Quantity {
			return &InsufficientStockError{
				ProductID: item.ProductID,
				Available: available,
				Requested: item.Quantity,
			}
		}
		remaining[item.ProductID] = available - item.Quantity
	}

	// Second pass: snapshot and decrement
	items := make([]domain.OrderItem, 0, len(cart))
	for _, item := range cart {
		p := s.products[item.ProductID]
		items = append(items, domain.OrderItem{
			ProductID:   p.ID,
			ProductName: p.Name,
			Quantity:    item.Quantity,
			Price:       p.Price,
		})
		p.Stock -= item.Quantity
	}

	order.Items = items
	order.Total = domain.ComputeTotal(items)

	stored := *order
	stored.Items = append([]domain.OrderItem(nil), items...)
	s.orders[order.ID] = &stored
	return nil
}

func (s *MemoryStore) GetOrder(_ context.Context, id uuid.UUID) (*domain.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	o, exists := s.orders[id]
	if !exists {
		return nil, ErrOrderNotFound
	}
	cp := *o
	cp.Items = append([]domain.OrderItem(nil), o.Items...)
	return &cp, nil
}

func (s *MemoryStore) Close() error {
	return nil
}
