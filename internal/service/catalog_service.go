package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/fjod/go_shop/internal/cache"
	"github.com/fjod/go_shop/internal/domain"
	"github.com/fjod/go_shop/internal/store"
	"golang.org/x/sync/singleflight"
)

// CatalogService serves catalog reads through an optional cache. A nil
// cache turns every call into a store passthrough.
type CatalogService struct {
	store store.Store
	cache cache.CatalogCache
	sfg   singleflight.Group // Prevents cache stampede
}

func NewCatalogService(st store.Store, c cache.CatalogCache) *CatalogService {
	return &CatalogService{
		store: st,
		cache: c,
	}
}

func (s *CatalogService) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	if s.cache == nil {
		return s.store.GetProduct(ctx, id)
	}

	// Use singleflight to prevent multiple concurrent cache misses for same key
	v, err, _ := s.sfg.Do(fmt.Sprintf("product:%d", id), func() (interface{}, error) {
		product, err := s.cache.GetProduct(ctx, id)
		if err == nil {
			return product, nil // product is in cache
		}

		if !errors.Is(err, cache.ErrCacheMiss) {
			log.Printf("cache get error: %v", err) // log cache error but continue
		}

		product, errGet := s.store.GetProduct(ctx, id)
		if errGet != nil {
			return nil, errGet
		}

		go func() {
			if errSet := s.cache.SetProduct(context.Background(), product); errSet != nil {
				log.Printf("cache set error: %v", errSet)
			}
		}()

		return product, nil
	})

	if err != nil {
		return nil, err
	}

	return v.(*domain.Product), nil
}

// ListProducts always hits the store: the filter space is too large to
// key usefully and listings must reflect current stock.
func (s *CatalogService) ListProducts(ctx context.Context, filter domain.ProductFilter) ([]*domain.Product, error) {
	return s.store.ListProducts(ctx, filter)
}

func (s *CatalogService) ListCategories(ctx context.Context) ([]string, error) {
	if s.cache == nil {
		return s.store.ListCategories(ctx)
	}

	v, err, _ := s.sfg.Do("categories", func() (interface{}, error) {
		categories, err := s.cache.GetCategories(ctx)
		if err == nil {
			return categories, nil
		}

		if !errors.Is(err, cache.ErrCacheMiss) {
			log.Printf("cache get error: %v", err)
		}

		categories, errGet := s.store.ListCategories(ctx)
		if errGet != nil {
			return nil, errGet
		}

		go func() {
			if errSet := s.cache.SetCategories(context.Background(), categories); errSet != nil {
				log.Printf("cache set error: %v", errSet)
			}
		}()

		return categories, nil
	})

	if err != nil {
		return nil, err
	}

	return v.([]string), nil
}
