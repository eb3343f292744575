package matching

import (
	"sync"

	"github.com/quantonic/matchbook/types/avl"
	"github.com/quantonic/matchbook/types/list"
)

// Allocator is an object encapsulating all used objects allocation using sync.Pool internally.
type Allocator struct {

	// Price levels
	priceLevels sync.Pool

	// Orders
	orders sync.Pool

	// Pools used by containers
	priceLevelNodes    sync.Pool // used by avl.Tree[Price, *PriceLevelL3]
	orderQueueElements sync.Pool // used by list.List[*Order]
}

// NewAllocator creates and returns new Allocator instance.
func NewAllocator() *Allocator {
	a := new(Allocator)
	// Price levels
	a.priceLevels = sync.Pool{New: func() any {
		return NewPriceLevelL3(a)
	}}
	// Orders
	a.orders = sync.Pool{New: func() any {
		return new(Order)
	}}
	// Pools used by containers
	a.priceLevelNodes = sync.Pool{New: func() any {
		return new(avl.Node[Price, *PriceLevelL3])
	}}
	a.orderQueueElements = sync.Pool{New: func() any {
		return new(list.Element[*Order])
	}}
	return a
}

////////////////////////////////////////////////////////////////
// Price levels
////////////////////////////////////////////////////////////////

// GetPriceLevel allocates PriceLevelL3 instance.
func (a *Allocator) GetPriceLevel() *PriceLevelL3 {
	return a.priceLevels.Get().(*PriceLevelL3)
}

// PutPriceLevel releases PriceLevelL3 instance.
func (a *Allocator) PutPriceLevel(priceLevel *PriceLevelL3) {
	// Clean up the instance before releasing
	priceLevel.Clean()
	a.priceLevels.Put(priceLevel)
}

////////////////////////////////////////////////////////////////
// Orders
////////////////////////////////////////////////////////////////

// GetOrder allocates Order instance.
func (a *Allocator) GetOrder() *Order {
	return a.orders.Get().(*Order)
}

// PutOrder releases Order instance.
func (a *Allocator) PutOrder(order *Order) {
	// Clean up the instance before releasing
	*order = Order{}
	a.orders.Put(order)
}
