package matching

const (
	// defaultReservedOrderSlots specifies initial size of the hashmap storing orders by order id.
	defaultReservedOrderSlots = 1024

	// defaultReservedTradeSlots specifies initial capacity of the reusable trade buffer of the engine.
	defaultReservedTradeSlots = 1024
)
