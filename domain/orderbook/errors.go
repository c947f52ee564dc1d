package orderbook

import "errors"

// All engine errors are recoverable, caller-visible results. The book
// never mutates state before validation passes, so a non-nil error
// always means the book is exactly as it was.
var (
	ErrOrderNotFound   = errors.New("orderbook: order not found")
	ErrInvalidQuantity = errors.New("orderbook: quantity must be positive")
	ErrInvalidPrice    = errors.New("orderbook: price must be non-negative")
	ErrDuplicateID     = errors.New("orderbook: order id already resident")
	ErrNotFillable     = errors.New("orderbook: fill-or-kill order cannot be fully filled")
	ErrWouldCross      = errors.New("orderbook: post-only order would cross")
)
