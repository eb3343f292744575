package matching

import (
	"github.com/tidwall/hashmap"

	"github.com/quantonic/matchbook/types/avl"
)

// OrderBook is a single-instrument limit order book: two price-ordered
// side collections of price levels, a FIFO queue of resting orders
// inside every level, and an id index covering both sides. The book
// owns every order and every level it stores.
//
// Both side trees keep the best price in the leftmost node: asks
// compare ascending, bids compare descending. In-order iteration
// therefore walks any side best-first.
//
// NOTE: Not thread-safe.
type OrderBook struct {
	allocator *Allocator
	symbol    string

	// Bid/Ask price levels
	bids avl.Tree[Price, *PriceLevelL3]
	asks avl.Tree[Price, *PriceLevelL3]

	// Orders which are currently resting in the book
	orders *hashmap.Map[OrderID, *Order]
}

// NewOrderBook creates and returns new OrderBook instance.
func NewOrderBook(allocator *Allocator, symbol string) *OrderBook {
	return &OrderBook{
		allocator: allocator,
		symbol:    symbol,
		bids: avl.NewTreePooled[Price, *PriceLevelL3](
			func(a, b Price) int { return -a.Cmp(b) },
			&allocator.priceLevelNodes,
		),
		asks: avl.NewTreePooled[Price, *PriceLevelL3](
			func(a, b Price) int { return a.Cmp(b) },
			&allocator.priceLevelNodes,
		),
		orders: hashmap.New[OrderID, *Order](defaultReservedOrderSlots),
	}
}

////////////////////////////////////////////////////////////////
// Getters
////////////////////////////////////////////////////////////////

// Symbol returns the instrument label of the book.
func (ob *OrderBook) Symbol() string {
	return ob.symbol
}

// Size returns the amount of orders resting in the book.
func (ob *OrderBook) Size() int {
	return ob.orders.Len()
}

// IsEmpty returns true if the book contains no orders.
func (ob *OrderBook) IsEmpty() bool {
	return ob.Size() == 0
}

// Order returns the resting order with given id, or nil.
func (ob *OrderBook) Order(id OrderID) *Order {
	order, ok := ob.orders.Get(id)
	if !ok {
		return nil
	}
	return order
}

// TopBid returns the best (highest) bid level node, or nil.
func (ob *OrderBook) TopBid() *avl.Node[Price, *PriceLevelL3] {
	return ob.bids.MostLeft()
}

// TopAsk returns the best (lowest) ask level node, or nil.
func (ob *OrderBook) TopAsk() *avl.Node[Price, *PriceLevelL3] {
	return ob.asks.MostLeft()
}

// Snapshot returns the aggregated depth of both sides, best prices first.
func (ob *OrderBook) Snapshot() BookSnapshot {
	snapshot := BookSnapshot{
		Symbol: ob.symbol,
		Asks:   make([]PriceLevelL2, 0, ob.asks.Size()),
		Bids:   make([]PriceLevelL2, 0, ob.bids.Size()),
	}
	ob.asks.IterateInOrder(func(level *PriceLevelL3) bool {
		snapshot.Asks = append(snapshot.Asks, PriceLevelL2{Price: level.price, Volume: level.volume})
		return false
	})
	ob.bids.IterateInOrder(func(level *PriceLevelL3) bool {
		snapshot.Bids = append(snapshot.Bids, PriceLevelL2{Price: level.price, Volume: level.volume})
		return false
	})
	return snapshot
}

////////////////////////////////////////////////////////////////
// Order management
////////////////////////////////////////////////////////////////

// Add places a new resting order at the tail of the queue at the given
// price, creating the price level if required. Ids of resting orders
// are unique across both sides: re-adding a live id fails with
// ErrOrderDuplicate and leaves the book unchanged.
func (ob *OrderBook) Add(side OrderSide, id OrderID, quantity Quantity, price Price) (*Order, error) {
	if _, ok := ob.orders.Get(id); ok {
		return nil, ErrOrderDuplicate
	}

	node, err := ob.findOrAddPriceLevel(side, price)
	if err != nil {
		return nil, err
	}

	order := ob.allocator.GetOrder()
	*order = Order{
		id:           id,
		side:         side,
		price:        price,
		restQuantity: quantity,
		priceLevel:   node,
	}
	node.Value().append(order)
	ob.orders.Set(id, order)
	return order, nil
}

// Cancel removes the resting order with the given id from the book.
// Unknown ids fail with ErrOrderNotFound and leave the book unchanged.
func (ob *OrderBook) Cancel(id OrderID) error {
	order, ok := ob.orders.Get(id)
	if !ok {
		return ErrOrderNotFound
	}
	return ob.deleteOrder(order)
}

// Modify rewrites the terms of the resting order with the given id.
//
// When side and price are unchanged a quantity change reposts the order
// to the tail of its queue: any modify that is not a strict no-op
// forfeits queue priority. A strict no-op keeps the queue slot.
//
// When side or price change the existing order is spliced out of its
// current queue and onto the tail of the queue at the new side and
// price, keeping its identity. Relocation never trades by itself:
// matching first is the engine's job.
func (ob *OrderBook) Modify(side OrderSide, id OrderID, quantity Quantity, price Price) (*Order, error) {
	order, ok := ob.orders.Get(id)
	if !ok {
		return nil, ErrOrderNotFound
	}

	if order.side == side && order.price.Equals(price) {
		if order.restQuantity.Equals(quantity) {
			// Strict no-op keeps the queue position.
			return order, nil
		}
		order.priceLevel.Value().repost(order, quantity)
		return order, nil
	}

	// Relocate the order to the new side/price.
	oldLevel := order.priceLevel.Value()
	if err := oldLevel.remove(order); err != nil {
		return nil, err
	}
	order.priceLevel = nil
	if oldLevel.queue.Len() == 0 {
		if err := ob.deletePriceLevel(order.side, oldLevel.price); err != nil {
			return nil, err
		}
	}

	node, err := ob.findOrAddPriceLevel(side, price)
	if err != nil {
		return nil, err
	}
	order.side = side
	order.price = price
	order.restQuantity = quantity
	order.priceLevel = node
	node.Value().append(order)
	return order, nil
}

// Clear drops all orders and price levels from both sides of the book.
func (ob *OrderBook) Clear() {
	release := func(level *PriceLevelL3) bool {
		for e := level.queue.Front(); e != nil; e = e.Next() {
			ob.allocator.PutOrder(e.Value)
		}
		ob.allocator.PutPriceLevel(level)
		return false
	}
	ob.bids.IteratePostOrder(release)
	ob.asks.IteratePostOrder(release)
	ob.bids.Clear()
	ob.asks.Clear()
	ob.orders = hashmap.New[OrderID, *Order](defaultReservedOrderSlots)
}

////////////////////////////////////////////////////////////////
// Internals
////////////////////////////////////////////////////////////////

func (ob *OrderBook) treeForSide(side OrderSide) *avl.Tree[Price, *PriceLevelL3] {
	if side == OrderSideBuy {
		return &ob.bids
	}
	return &ob.asks
}

// deleteOrder unlinks the order from its level, drops the level if it
// became empty, and releases the order.
func (ob *OrderBook) deleteOrder(order *Order) error {
	level := order.priceLevel.Value()
	if err := level.remove(order); err != nil {
		return err
	}
	order.priceLevel = nil
	if level.queue.Len() == 0 {
		if err := ob.deletePriceLevel(order.side, level.price); err != nil {
			return err
		}
	}
	ob.orders.Delete(order.id)
	ob.allocator.PutOrder(order)
	return nil
}

func (ob *OrderBook) findOrAddPriceLevel(side OrderSide, price Price) (*avl.Node[Price, *PriceLevelL3], error) {
	tree := ob.treeForSide(side)
	if node := tree.Find(price); node != nil {
		return node, nil
	}
	level := ob.allocator.GetPriceLevel()
	level.price = price
	level.side = side
	node, err := tree.Add(price, level)
	if err != nil {
		ob.allocator.PutPriceLevel(level)
		return nil, ErrPriceLevelDuplicate
	}
	return node, nil
}

func (ob *OrderBook) deletePriceLevel(side OrderSide, price Price) error {
	level, err := ob.treeForSide(side).Remove(price)
	if err != nil {
		return ErrPriceLevelNotFound
	}
	ob.allocator.PutPriceLevel(level)
	return nil
}
