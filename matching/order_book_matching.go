package matching

// Match walks the opposite side of the book best price first and
// collects the trades an aggressive order of the given terms would
// produce, then applies the fills to the book. Trades are appended to
// the given slice to let the engine reuse its buffer across calls.
//
// Price levels are consumed in price order and each level queue in
// strict FIFO order. A resting order with the same id as the
// aggressor never trades: it is skipped and left untouched.
//
// The walk itself never mutates the book, so a fill application error
// cannot leave a level half consumed. Returns the extended trade
// slice and the unmatched remainder of the aggressive quantity.
func (ob *OrderBook) Match(side OrderSide, id OrderID, quantity Quantity, price Price, trades []Trade) ([]Trade, Quantity, error) {
	start := len(trades)
	leaves := quantity

	ob.treeForSide(side.Opposite()).IterateInOrder(func(level *PriceLevelL3) bool {
		if !priceCrosses(side, price, level.price) {
			return true
		}
		for e := level.queue.Front(); e != nil; e = e.Next() {
			order := e.Value
			if order.id == id {
				// Same owner on both sides of a fill.
				continue
			}
			fill := leaves.Min(order.restQuantity)
			trades = append(trades, Trade{
				MakerID:       order.id,
				MakerPrice:    order.price,
				MakerQuantity: fill,
				TakerID:       id,
				TakerPrice:    price,
				TakerQuantity: fill,
				maker:         order,
			})
			leaves = leaves.Sub(fill)
			if leaves.IsZero() {
				return true
			}
		}
		return false
	})

	err := ob.applyFills(trades[start:])
	return trades, leaves, err
}

// applyFills reduces or removes the maker of every collected trade.
func (ob *OrderBook) applyFills(trades []Trade) error {
	for i := range trades {
		trade := &trades[i]
		maker := trade.maker
		trade.maker = nil
		if maker.restQuantity.Equals(trade.MakerQuantity) {
			if err := ob.deleteOrder(maker); err != nil {
				return err
			}
			continue
		}
		maker.priceLevel.Value().setQuantity(maker, maker.restQuantity.Sub(trade.MakerQuantity))
	}
	return nil
}

// priceCrosses reports whether an aggressive order at price is willing
// to trade against a resting level at levelPrice.
func priceCrosses(side OrderSide, price, levelPrice Price) bool {
	if side == OrderSideBuy {
		return price.GreaterThanOrEqualTo(levelPrice)
	}
	return price.LessThanOrEqualTo(levelPrice)
}
