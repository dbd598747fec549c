package repository

import "errors"

var ErrNotFound = errors.New("record not found")

const (
	cartCollection   = "cart"
	ordersCollection = "orders"

	// upper bound on documents returned for a single cart read
	maxCartItems = 1000
)
