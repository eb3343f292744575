package matching

import (
	"errors"
)

// Errors used by the package.
var (
	ErrOrderDuplicate       = errors.New("order is duplicated")
	ErrOrderNotFound        = errors.New("order is not found")
	ErrPriceLevelDuplicate  = errors.New("price level is duplicated")
	ErrPriceLevelNotFound   = errors.New("price level is not found")
	ErrInvalidOrderID       = errors.New("invalid order id")
	ErrInvalidOrderSide     = errors.New("invalid order side")
	ErrInvalidOrderTif      = errors.New("invalid order time in force")
	ErrInvalidOrderPrice    = errors.New("invalid order price")
	ErrInvalidOrderQuantity = errors.New("invalid order quantity")
)
