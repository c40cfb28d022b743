package service

import "errors"

var (
	ErrEmptyCart        = errors.New("cart is empty, nothing to order")
	ErrInvalidEmail     = errors.New("customer email is not a valid address")
	ErrInvalidQuantity  = errors.New("cart item quantity must be positive")
	ErrInvalidProductID = errors.New("cart item product_id must be positive")
)
