package matching

// OrderSide is an enumeration of possible trading sides (buy/sell).
type OrderSide uint8

const (
	// OrderSideBuy represents market side which includes only buy orders (bids).
	OrderSideBuy OrderSide = iota + 1
	// OrderSideSell represents market side which includes only sell orders (asks).
	OrderSideSell
)

// Opposite returns the side an order of side os trades against.
func (os OrderSide) Opposite() OrderSide {
	if os == OrderSideBuy {
		return OrderSideSell
	}
	return OrderSideBuy
}

// Valid returns true if the value is one of the declared sides.
func (os OrderSide) Valid() bool {
	return os == OrderSideBuy || os == OrderSideSell
}

func (os OrderSide) String() string {
	switch os {
	case OrderSideBuy:
		return "BUY"
	case OrderSideSell:
		return "SELL"
	default:
		return "unknown"
	}
}
