package matching

import (
	"github.com/quantonic/matchbook/types/avl"
	"github.com/quantonic/matchbook/types/list"
)

// Order is a single resting unit of liquidity: an instruction to buy or
// sell a fixed quantity at a limit price, queued at its price level in
// arrival order. Only day orders ever rest, so a resting order carries
// no time in force.
//
// The back-links to the price level node and to the queue slot are
// owned by the book: they make cancel and modify O(1) and must stay
// coherent with the order's actual residence. Both are nil once the
// order has left the book.
type Order struct {
	id   OrderID
	side OrderSide

	price        Price
	restQuantity Quantity

	// Pointer to the price level node where the order is placed.
	priceLevel *avl.Node[Price, *PriceLevelL3]

	// Pointer to the order queue slot where the order is placed.
	queued *list.Element[*Order]
}

////////////////////////////////////////////////////////////////

// ID returns the order ID.
func (o *Order) ID() OrderID {
	return o.id
}

// Side returns the market side of the order.
func (o *Order) Side() OrderSide {
	return o.side
}

// IsBuy returns true if buy order.
func (o *Order) IsBuy() bool {
	return o.side == OrderSideBuy
}

// IsSell returns true if sell order.
func (o *Order) IsSell() bool {
	return o.side == OrderSideSell
}

////////////////////////////////////////////////////////////////

// Price returns the order limit price.
func (o *Order) Price() Price {
	return o.price
}

// RestQuantity returns order remaining quantity.
func (o *Order) RestQuantity() Quantity {
	return o.restQuantity
}

// IsExecuted returns true if the order is completely executed.
func (o *Order) IsExecuted() bool {
	return o.restQuantity.IsZero()
}
