package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/fjod/go_shop/internal/domain"
	"github.com/fjod/go_shop/internal/store"
	"github.com/google/uuid"
)

// PlaceOrder runs the whole order as one transaction. Stock is taken
// with a conditional decrement, so two concurrent orders can never
// together take more units than are in stock: the losing transaction
// sees zero affected rows and fails with InsufficientStockError.
func (r *Repository) PlaceOrder(ctx context.Context, order *domain.Order, cart []domain.CartItem) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin order transaction: %w", err)
	}
	defer tx.Rollback() // no-op after commit

	decrement := `UPDATE products SET stock = stock - $2
	              WHERE id = $1 AND stock >= $2
	              RETURNING name, price`

	items := make([]domain.OrderItem, 0, len(cart))
	for _, item := range cart {
		var name string
		var price float64
		err := tx.QueryRowContext(ctx, decrement, item.ProductID, item.Quantity).Scan(&name, &price)
		if errors.Is(err, sql.ErrNoRows) {
			// Either the product does not exist or it has too little stock
			var available int
			e2 := tx.QueryRowContext(ctx, `SELECT stock FROM products WHERE id = $1`, item.ProductID).Scan(&available)
			if errors.Is(e2, sql.ErrNoRows) {
				return fmt.Errorf("product %d: %w", item.ProductID, store.ErrProductNotFound)
			}
			if e2 != nil {
				return fmt.Errorf("check stock for product %d: %w", item.ProductID, e2)
			}
			return &store.InsufficientStockError{
				ProductID: item.ProductID,
				Available: available,
				Requested: item.Quantity,
			}
		}
		if err != nil {
			return fmt.Errorf("decrement stock for product %d: %w", item.ProductID, err)
		}

		items = append(items, domain.OrderItem{
			ProductID:   item.ProductID,
			ProductName: name,
			Quantity:    item.Quantity,
			Price:       price,
		})
	}

	order.Items = items
	order.Total = domain.ComputeTotal(items)

	insertOrder := `INSERT INTO orders (id, customer_name, customer_email, customer_address, customer_phone, total, status, created_at)
	                VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	if _, err := tx.ExecContext(ctx, insertOrder,
		order.ID,
		order.CustomerName,
		order.CustomerEmail,
		order.CustomerAddress,
		order.CustomerPhone,
		order.Total,
		order.Status,
		order.CreatedAt,
	); err != nil {
		return fmt.Errorf("insert order: %w", err)
	}

	insertItem := `INSERT INTO order_items (order_id, product_id, product_name, quantity, price)
	               VALUES ($1, $2, $3, $4, $5)`
	for _, item := range order.Items {
		if _, err := tx.ExecContext(ctx, insertItem,
			order.ID,
			item.ProductID,
			item.ProductName,
			item.Quantity,
			item.Price,
		); err != nil {
			return fmt.Errorf("insert order item: %w", err)
		}
	}

	if err := r.insertOutboxEvent(ctx, tx, order); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit order transaction: %w", err)
	}
	return nil
}

func (r *Repository) GetOrder(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	query := `SELECT id, customer_name, customer_email, customer_address, customer_phone, total, status, created_at
	          FROM orders WHERE id = $1`

	var order domain.Order
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&order.ID,
		&order.CustomerName,
		&order.CustomerEmail,
		&order.CustomerAddress,
		&order.CustomerPhone,
		&order.Total,
		&order.Status,
		&order.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, store.ErrOrderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query order by id: %w", err)
	}

	// Serial item ids preserve cart insertion order
	itemsQuery := `SELECT product_id, product_name, quantity, price
	               FROM order_items WHERE order_id = $1 ORDER BY id`
	rows, err := r.db.QueryContext(ctx, itemsQuery, id)
	if err != nil {
		return nil, fmt.Errorf("query order items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var item domain.OrderItem
		if err := rows.Scan(&item.ProductID, &item.ProductName, &item.Quantity, &item.Price); err != nil {
			return nil, fmt.Errorf("scan order item row: %w", err)
		}
		order.Items = append(order.Items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return &order, nil
}

func (r *Repository) insertOutboxEvent(ctx context.Context, tx *sql.Tx, order *domain.Order) error {
	payload, err := json.Marshal(map[string]interface{}{
		"order_id":       order.ID,
		"customer_email": order.CustomerEmail,
		"items":          order.Items,
		"total":          order.Total,
		"status":         order.Status,
		"created_at":     order.CreatedAt,
	})
	if err != nil {
		return fmt.Errorf("marshal order event payload: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO order_outbox (aggregate_id, event_type, payload) VALUES ($1, $2, $3)`,
		order.ID.String(), "order.created", payload)
	if err != nil {
		return fmt.Errorf("insert outbox event: %w", err)
	}
	return nil
}
