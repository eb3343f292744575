package matching

// Trade is a single fill pairing a resting (maker) order with the
// incoming (taker) order that matched it. Maker fields carry the level
// price the fill happened at; taker fields carry the terms of the
// incoming order. Both quantities equal the fill size: the maker slot
// is normalized to the fill rather than showing the maker's residual.
type Trade struct {
	MakerID       OrderID
	MakerPrice    Price
	MakerQuantity Quantity

	TakerID       OrderID
	TakerPrice    Price
	TakerQuantity Quantity

	// maker keeps the resting order reachable for fill application
	// without an id lookup. Cleared when the fill is applied: the
	// pointer must never escape the book.
	maker *Order
}
