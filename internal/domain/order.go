package domain

import (
	"math"
	"time"

	"github.com/google/uuid"
)

type OrderStatus string

// OrderStatusProcessing is the status every new order starts in.
// Fulfilment transitions live outside this system.
const OrderStatusProcessing OrderStatus = "Processing"

// CartItem is a requested product/quantity pair submitted with an order.
// It is never persisted.
type CartItem struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

// OrderItem is a snapshot of one cart entry taken at order time. Price
// and name are copied from the product so later catalog changes never
// alter historical orders.
type OrderItem struct {
	ProductID   int64   `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
}

type Order struct {
	ID              uuid.UUID
	CustomerName    string
	CustomerEmail   string
	CustomerAddress string
	CustomerPhone   string
	Items           []OrderItem
	Total           float64
	Status          OrderStatus
	CreatedAt       time.Time
}

// ComputeTotal sums price*quantity over items and rounds to cents.
func ComputeTotal(items []OrderItem) float64 {
	var total float64
	for _, item := range items {
		total += item.Price * float64(item.Quantity)
	}
	return RoundTotal(total)
}

// RoundTotal rounds to 2 decimal places, half to even. Exact .005 cases
// round to the even cent: 1.125 becomes 1.12, 0.375 becomes 0.38.
func RoundTotal(v float64) float64 {
	return math.RoundToEven(v*100) / 100
}
