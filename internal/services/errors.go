package services

import "errors"

var (
	ErrOutOfStock = errors.New("product out of stock")
	ErrUnpriced   = errors.New("product has no price")
	ErrEmptyCart  = errors.New("cart is empty")
	ErrBadCreds   = errors.New("invalid password")
)
