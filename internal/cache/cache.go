package cache

import (
	"context"
	"errors"

	"github.com/fjod/go_shop/internal/domain"
)

// CatalogCache holds read-side copies of catalog data. Entries go stale
// when stock changes, so the order service drops the affected products
// after every successful order.
type CatalogCache interface {
	GetProduct(ctx context.Context, id int64) (*domain.Product, error)
	SetProduct(ctx context.Context, product *domain.Product) error
	DeleteProduct(ctx context.Context, id int64) error
	GetCategories(ctx context.Context) ([]string, error)
	SetCategories(ctx context.Context, categories []string) error
}

var ErrCacheMiss = errors.New("cache miss")
