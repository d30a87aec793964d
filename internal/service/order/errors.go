package order

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidOrderID        = errors.New("invalid order id")
	ErrInvalidQuantity       = errors.New("invalid quantity")
	ErrInvalidPrice          = errors.New("invalid price")
	ErrInvalidLimit          = errors.New("invalid limit")
	ErrInvalidOffset         = errors.New("invalid offset")

	ErrOrderNotFound  = errors.New("order not found")
	ErrOrderTerminal  = errors.New("order is in a terminal status")
	ErrStatusConflict = errors.New("order status changed concurrently")
)
