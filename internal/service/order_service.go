package service

import (
	"context"
	"log"
	"net/mail"
	"time"

	"github.com/fjod/go_shop/internal/cache"
	"github.com/fjod/go_shop/internal/domain"
	"github.com/fjod/go_shop/internal/store"
	"github.com/google/uuid"
)

// OrderService validates incoming orders and hands the atomic part to
// the store. Nothing here mutates state: every stock change happens
// inside store.PlaceOrder or not at all.
type OrderService struct {
	store store.Store
	cache cache.CatalogCache // may be nil
}

func NewOrderService(st store.Store, c cache.CatalogCache) *OrderService {
	return &OrderService{
		store: st,
		cache: c,
	}
}

type CreateOrderRequest struct {
	CustomerName    string
	CustomerEmail   string
	CustomerAddress string
	CustomerPhone   string
	Items           []domain.CartItem
}

func (s *OrderService) CreateOrder(ctx context.Context, req *CreateOrderRequest) (*domain.Order, error) {
	if len(req.Items) == 0 {
		return nil, ErrEmptyCart
	}
	if _, err := mail.ParseAddress(req.CustomerEmail); err != nil {
		return nil, ErrInvalidEmail
	}
	for _, item := range req.Items {
		if item.ProductID <= 0 {
			return nil, ErrInvalidProductID
		}
		if item.Quantity <= 0 {
			return nil, ErrInvalidQuantity
		}
	}

	order := &domain.Order{
		ID:              uuid.New(),
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		CustomerAddress: req.CustomerAddress,
		CustomerPhone:   req.CustomerPhone,
		Status:          domain.OrderStatusProcessing,
		CreatedAt:       time.Now().UTC(),
	}

	if err := s.store.PlaceOrder(ctx, order, req.Items); err != nil {
		return nil, err
	}

	s.invalidateProducts(order.Items)
	return order, nil
}

func (s *OrderService) GetOrder(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	return s.store.GetOrder(ctx, id)
}

// invalidateProducts drops cached copies of products whose stock just
// changed. Best effort: a failed delete only extends staleness until TTL.
func (s *OrderService) invalidateProducts(items []domain.OrderItem) {
	if s.cache == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	for _, item := range items {
		if err := s.cache.DeleteProduct(ctx, item.ProductID); err != nil {
			log.Printf("cache invalidate error: %v", err)
		}
	}
}
