package matching

//go:generate mockgen -destination=mocks/interfaces.go -package=mockmatching . Handler

// Handler represents an interface for handling all
// events of the matching engine.
//
// The engine invokes a handler callback for every state transition it
// performs, in the order the transitions happen. Handlers must not
// call back into the engine and must not retain the *Order they are
// given past the callback.
type Handler interface {
	// Order handling
	OnAddOrder(orderBook *OrderBook, order *Order)
	OnUpdateOrder(orderBook *OrderBook, order *Order)
	OnDeleteOrder(orderBook *OrderBook, order *Order)

	// Trade handling. Invoked once per fill, after the fill has been
	// applied to the book. A maker consumed to zero leaves the book
	// without a separate OnDeleteOrder call: the trade itself is the
	// removal notice.
	OnExecuteTrade(orderBook *OrderBook, trade Trade)

	// Order book handling
	OnClearOrderBook(orderBook *OrderBook)

	// Error handling. Invoked when a submitted operation is rejected.
	OnError(orderBook *OrderBook, err error)
}
