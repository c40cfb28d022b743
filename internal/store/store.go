package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/fjod/go_shop/internal/domain"
	"github.com/google/uuid"
)

// Common errors returned by the store
var (
	ErrProductNotFound = errors.New("product not found")
	ErrOrderNotFound   = errors.New("order not found")
)

// InsufficientStockError reports how much stock was available when a
// requested quantity could not be satisfied.
type InsufficientStockError struct {
	ProductID int64
	Available int
	Requested int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for product %d: %d available, %d requested",
		e.ProductID, e.Available, e.Requested)
}

// Store is the single datastore behind the catalog and order operations.
type Store interface {
	// GetProduct returns one product or ErrProductNotFound
	GetProduct(ctx context.Context, id int64) (*domain.Product, error)

	// ListProducts returns products matching the filter, in storage order
	ListProducts(ctx context.Context, filter domain.ProductFilter) ([]*domain.Product, error)

	// ListCategories returns the distinct category names in the catalog
	ListCategories(ctx context.Context) ([]string, error)

	// PlaceOrder executes the whole order as one atomic unit: for every
	// cart item, in input order, it snapshots product name and price and
	// decrements stock, then fills order.Items and order.Total and
	// persists the order. On any failure no stock change and no order row
	// is left behind. Fails with ErrProductNotFound (wrapped with the
	// product id) or *InsufficientStockError.
	PlaceOrder(ctx context.Context, order *domain.Order, cart []domain.CartItem) error

	// GetOrder returns an order with its items in original insertion
	// order, or ErrOrderNotFound
	GetOrder(ctx context.Context, id uuid.UUID) (*domain.Order, error)

	// Close shuts down the store
	Close() error
}
