package matching

// Engine drives a single order book with price-time priority matching.
// Every submitted order first matches against the opposite side of the
// book, then the unmatched remainder either rests or is discarded
// according to the order's time in force.
//
// Rejected operations never mutate the book. Rejections are reported
// through Handler.OnError and the operation returns no trades.
//
// NOTE: Not thread-safe. Wrap the engine in a serializing front end
// to drive it from multiple goroutines.
type Engine struct {
	handler   Handler
	allocator *Allocator
	orderBook *OrderBook

	// Reusable trade buffer for matching
	trades []Trade
}

// NewEngine creates and returns new Engine instance with an empty
// order book for the given symbol.
func NewEngine(handler Handler, symbol string) *Engine {
	allocator := NewAllocator()
	return &Engine{
		handler:   handler,
		allocator: allocator,
		orderBook: NewOrderBook(allocator, symbol),
		trades:    make([]Trade, 0, defaultReservedTradeSlots),
	}
}

// OrderBook returns the order book driven by the engine.
func (e *Engine) OrderBook() *OrderBook {
	return e.orderBook
}

// Snapshot returns the aggregated depth of the book, best prices first.
func (e *Engine) Snapshot() BookSnapshot {
	return e.orderBook.Snapshot()
}

////////////////////////////////////////////////////////////////
// Operations
////////////////////////////////////////////////////////////////

// AddOrder submits a new order to the engine. The order is matched
// against the opposite side of the book first. The unmatched
// remainder rests at the order's limit price when the time in force
// allows resting and is discarded otherwise.
//
// An order reusing the id of a resting order still matches first, but
// its remainder is rejected instead of resting. The resting order with
// that id keeps its place and is never filled by its namesake.
//
// The returned slice is valid until the next engine operation.
func (e *Engine) AddOrder(side OrderSide, tif OrderTimeInForce, id OrderID, quantity Quantity, price Price) []Trade {
	if err := validateOrder(side, id, quantity, price); err != nil {
		e.handler.OnError(e.orderBook, err)
		return nil
	}
	if !tif.Valid() {
		e.handler.OnError(e.orderBook, ErrInvalidOrderTif)
		return nil
	}

	trades, leaves := e.match(side, id, quantity, price)

	if leaves.IsZero() || tif == OrderTimeInForceIOC {
		return trades
	}
	order, err := e.orderBook.Add(side, id, leaves, price)
	if err != nil {
		e.handler.OnError(e.orderBook, err)
		return trades
	}
	e.handler.OnAddOrder(e.orderBook, order)
	return trades
}

// CancelOrder removes the resting order with the given id from the
// book. Cancelling an unknown id is rejected.
func (e *Engine) CancelOrder(id OrderID) {
	if !id.Valid() {
		e.handler.OnError(e.orderBook, ErrInvalidOrderID)
		return
	}
	order := e.orderBook.Order(id)
	if order == nil {
		e.handler.OnError(e.orderBook, ErrOrderNotFound)
		return
	}
	e.handler.OnDeleteOrder(e.orderBook, order)
	if err := e.orderBook.Cancel(id); err != nil {
		e.handler.OnError(e.orderBook, err)
	}
}

// ModifyOrder rewrites the terms of the resting order with the given
// id. A modify that changes nothing keeps the order's queue position
// and does nothing else. Any other modify behaves like a fresh order
// under the same id: the new terms are matched against the book first
// and the remainder rests at the tail of its price level, forfeiting
// the original queue position. A fully matched remainder removes the
// order.
//
// The returned slice is valid until the next engine operation.
func (e *Engine) ModifyOrder(id OrderID, side OrderSide, quantity Quantity, price Price) []Trade {
	if err := validateOrder(side, id, quantity, price); err != nil {
		e.handler.OnError(e.orderBook, err)
		return nil
	}
	order := e.orderBook.Order(id)
	if order == nil {
		e.handler.OnError(e.orderBook, ErrOrderNotFound)
		return nil
	}
	if order.side == side && order.price.Equals(price) && order.restQuantity.Equals(quantity) {
		// Strict no-op: nothing moves, nothing trades.
		return nil
	}

	// The pre-modification copy still rests under the same id, so the
	// id skip keeps the order from trading against itself here.
	trades, leaves := e.match(side, id, quantity, price)

	if leaves.IsZero() {
		e.handler.OnDeleteOrder(e.orderBook, order)
		if err := e.orderBook.Cancel(id); err != nil {
			e.handler.OnError(e.orderBook, err)
		}
		return trades
	}
	order, err := e.orderBook.Modify(side, id, leaves, price)
	if err != nil {
		e.handler.OnError(e.orderBook, err)
		return trades
	}
	e.handler.OnUpdateOrder(e.orderBook, order)
	return trades
}

// Clear drops all orders from both sides of the book.
func (e *Engine) Clear() {
	e.handler.OnClearOrderBook(e.orderBook)
	e.orderBook.Clear()
}

////////////////////////////////////////////////////////////////
// Internals
////////////////////////////////////////////////////////////////

func (e *Engine) match(side OrderSide, id OrderID, quantity Quantity, price Price) ([]Trade, Quantity) {
	trades, leaves, err := e.orderBook.Match(side, id, quantity, price, e.trades[:0])
	e.trades = trades
	if err != nil {
		e.handler.OnError(e.orderBook, err)
	}
	for _, trade := range trades {
		e.handler.OnExecuteTrade(e.orderBook, trade)
	}
	return trades, leaves
}

func validateOrder(side OrderSide, id OrderID, quantity Quantity, price Price) error {
	switch {
	case !side.Valid():
		return ErrInvalidOrderSide
	case !id.Valid():
		return ErrInvalidOrderID
	case quantity.IsZero():
		return ErrInvalidOrderQuantity
	case price.IsZero():
		return ErrInvalidOrderPrice
	}
	return nil
}
