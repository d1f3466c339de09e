package service

import "errors"

var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrOutOfStock        = errors.New("product is out of stock")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrDuplicateItem     = errors.New("item already in wishlist")
)
