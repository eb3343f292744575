package main

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/quantonic/matchbook/matching"
)

// Matcher counts every engine callback so a run can be summarized
// after the stream ends.
type Matcher struct {
	orderUpdates   [3]uint64
	executedTrades uint64
	bookClears     uint64
	errors         uint64
	totalUpdates   uint64
}

func (m *Matcher) OnAddOrder(orderBook *matching.OrderBook, order *matching.Order) {
	atomic.AddUint64(&m.orderUpdates[0], 1)
	atomic.AddUint64(&m.totalUpdates, 1)
	// fmt.Printf("Added %s order %s with price %s and amount %s\n", order.Side(), order.ID(), order.Price(), order.RestQuantity())
}

func (m *Matcher) OnUpdateOrder(orderBook *matching.OrderBook, order *matching.Order) {
	atomic.AddUint64(&m.orderUpdates[1], 1)
	atomic.AddUint64(&m.totalUpdates, 1)
	// fmt.Printf("Updated order %s with price %s and amount %s\n", order.ID(), order.Price(), order.RestQuantity())
}

func (m *Matcher) OnDeleteOrder(orderBook *matching.OrderBook, order *matching.Order) {
	atomic.AddUint64(&m.orderUpdates[2], 1)
	atomic.AddUint64(&m.totalUpdates, 1)
	// fmt.Printf("Deleted order %s\n", order.ID())
}

func (m *Matcher) OnExecuteTrade(orderBook *matching.OrderBook, trade matching.Trade) {
	atomic.AddUint64(&m.executedTrades, 1)
	atomic.AddUint64(&m.totalUpdates, 1)
	// fmt.Printf("Executed trade %s x %s at %s\n", trade.MakerID, trade.MakerQuantity, trade.MakerPrice)
}

func (m *Matcher) OnClearOrderBook(orderBook *matching.OrderBook) {
	atomic.AddUint64(&m.bookClears, 1)
	atomic.AddUint64(&m.totalUpdates, 1)
}

func (m *Matcher) OnError(orderBook *matching.OrderBook, err error) {
	atomic.AddUint64(&m.errors, 1)
	log.Debug().Err(err).Str("symbol", orderBook.Symbol()).Msg("order rejected")
}

func (m *Matcher) PrintStatistics(elapsed time.Duration) {
	fmt.Printf("MATCHING ENGINE HANDLER:\n")
	fmt.Printf("Order adds %18d\n", m.orderUpdates[0])
	fmt.Printf("Order updates %15d\n", m.orderUpdates[1])
	fmt.Printf("Order deletes %15d\n", m.orderUpdates[2])
	fmt.Printf("Executed trades %13d\n", m.executedTrades)
	fmt.Printf("Order book clears %11d\n", m.bookClears)
	fmt.Printf("Errors %22d\n", m.errors)
	fmt.Printf("Total calls %17d\n", m.totalUpdates)
	fmt.Printf("Calls per second %12.0f\n", float64(m.totalUpdates)/elapsed.Seconds())
}
