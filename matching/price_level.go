package matching

import (
	"github.com/quantonic/matchbook/types/list"
)

// PriceLevelL2 contains price and aggregated volume of one price level.
type PriceLevelL2 struct {
	Price  Price
	Volume Quantity
}

// BookSnapshot is an L2 view of the whole book. Asks are ordered best
// (lowest) price first, bids best (highest) price first.
type BookSnapshot struct {
	Symbol string
	Asks   []PriceLevelL2
	Bids   []PriceLevelL2
}

// PriceLevelL3 contains the full depth of one price level: the FIFO
// queue of resting orders plus the cached aggregate volume. The side
// tag links the level back to the collection owning it.
//
// Invariants: volume equals the sum of the queued orders' remaining
// quantities, and a level reachable from a side collection is never
// empty.
//
// NOTE: Not thread-safe.
type PriceLevelL3 struct {
	price  Price
	side   OrderSide
	volume Quantity // total volume of entire order queue
	queue  *list.List[*Order]
}

// NewPriceLevelL3 creates and returns new PriceLevelL3 instance with
// the order queue backed by the allocator's element pool.
func NewPriceLevelL3(a *Allocator) *PriceLevelL3 {
	return &PriceLevelL3{
		queue: list.NewListPooled[*Order](&a.orderQueueElements),
	}
}

////////////////////////////////////////////////////////////////
// Getters
////////////////////////////////////////////////////////////////

// Price returns price level of the queue.
func (pl *PriceLevelL3) Price() Price {
	return pl.price
}

// Side returns the market side owning the level.
func (pl *PriceLevelL3) Side() OrderSide {
	return pl.side
}

// Volume returns total orders volume.
func (pl *PriceLevelL3) Volume() Quantity {
	return pl.volume
}

// Orders returns amount of orders in the queue.
func (pl *PriceLevelL3) Orders() int {
	return pl.queue.Len()
}

// Queue returns the order queue.
func (pl *PriceLevelL3) Queue() *list.List[*Order] {
	return pl.queue
}

// Clean cleans the price level by removing all queued orders.
func (pl *PriceLevelL3) Clean() {
	pl.price = NewZeroPrice()
	pl.side = 0
	pl.volume = NewZeroQuantity()
	pl.queue.Clean()
}

////////////////////////////////////////////////////////////////
// Queue management
////////////////////////////////////////////////////////////////

// append pushes the order to the tail of the queue and wires its queue
// back-link. The order's remaining quantity must already be set.
func (pl *PriceLevelL3) append(order *Order) {
	order.queued = pl.queue.PushBack(order)
	pl.volume = pl.volume.Add(order.restQuantity)
}

// remove unlinks the order from the queue.
// Precondition: the order resides in this level.
func (pl *PriceLevelL3) remove(order *Order) error {
	if _, err := pl.queue.Remove(order.queued); err != nil {
		return err
	}
	order.queued = nil
	pl.volume = pl.volume.Sub(order.restQuantity)
	return nil
}

// setQuantity replaces the order's remaining quantity keeping its queue
// position. Used by partial fills, which never cost queue priority.
// Precondition: quantity > 0.
func (pl *PriceLevelL3) setQuantity(order *Order, quantity Quantity) {
	pl.volume = pl.volume.Sub(order.restQuantity).Add(quantity)
	order.restQuantity = quantity
}

// repost replaces the order's remaining quantity and moves the order to
// the tail of the queue. Used by modifies, which always forfeit queue
// priority.
func (pl *PriceLevelL3) repost(order *Order, quantity Quantity) {
	pl.setQuantity(order, quantity)
	pl.queue.MoveToBack(order.queued)
}
