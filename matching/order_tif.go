package matching

// OrderTimeInForce is an enumeration of possible order execution options.
type OrderTimeInForce uint8

const (
	// Good-For-Day (GFD) - A GFD order is an order to buy or sell that stays
	// working on the book until it is completed or cancelled; any residue left
	// after matching rests at its limit price.
	OrderTimeInForceGFD OrderTimeInForce = iota + 1
	// Immediate-Or-Cancel (IOC) - An IOC order is an order to buy or sell that
	// must be executed immediately. Any portion of the order that cannot be
	// filled immediately is discarded and never rests on the book.
	OrderTimeInForceIOC
)

// Valid returns true if the value is one of the declared options.
func (tif OrderTimeInForce) Valid() bool {
	return tif == OrderTimeInForceGFD || tif == OrderTimeInForceIOC
}

func (tif OrderTimeInForce) String() string {
	switch tif {
	case OrderTimeInForceGFD:
		return "GFD"
	case OrderTimeInForceIOC:
		return "IOC"
	default:
		return "unknown"
	}
}
