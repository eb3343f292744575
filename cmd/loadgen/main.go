package main

import (
	"bufio"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"runtime/pprof"
	"time"

	"github.com/google/uuid"

	"github.com/quantonic/matchbook/matching"
	"github.com/quantonic/matchbook/protocol"
)

func main() {
	totalOrders := flag.Int("orders", 500000, "number of orders to submit")
	priceLevels := flag.Uint64("price-levels", 200, "unique price levels around the mid")
	basePrice := flag.Uint64("base-price", 10000, "mid price used for randomization")
	symbol := flag.String("symbol", "SIM", "symbol to trade")
	cancelEvery := flag.Int("cancel-every", 0, "cancel a random live order every N submissions")
	modifyEvery := flag.Int("modify-every", 0, "modify a random live order every N submissions")
	iocRatio := flag.Int("ioc-ratio", 5, "1 in N orders will be IOC instead of GFD")
	seed := flag.Int64("seed", time.Now().UnixNano(), "seed for deterministic random streams")
	emit := flag.Bool("emit", false, "write the command stream to stdout instead of matching it")
	cpuProfile := flag.String("cpuprofile", "", "write cpu profile to file")
	memProfile := flag.String("memprofile", "", "write heap profile to file")
	flag.Parse()

	rng := rand.New(rand.NewSource(*seed))

	if *cpuProfile != "" {
		f, err := os.Create(*cpuProfile)
		if err != nil {
			panic(err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			panic(err)
		}
		defer pprof.StopCPUProfile()
	}

	handler := &counters{}
	engine := matching.NewEngine(handler, *symbol)

	// -emit turns the generator into a stream source: the same random
	// flow is written in wire form for cmd/engine to replay.
	var out *bufio.Writer
	if *emit {
		out = bufio.NewWriter(os.Stdout)
	}

	// Submitted ids double as the pool cancels and modifies draw from.
	// Picking a consumed id is harmless, the engine rejects it.
	ids := make([]matching.OrderID, 0, *totalOrders)

	start := time.Now()
	for i := 0; i < *totalOrders; i++ {
		side, tif, quantity, price := nextRandomOrder(rng, *basePrice, *priceLevels, *iocRatio)
		id := matching.OrderID(uuid.NewString())
		if *emit {
			fmt.Fprintln(out, protocol.SubmitOrderMessage{
				Side: side, TimeInForce: tif, Price: price, Quantity: quantity, ID: id,
			})
		} else {
			engine.AddOrder(side, tif, id, quantity, price)
		}
		ids = append(ids, id)

		if *cancelEvery > 0 && i > 0 && i%*cancelEvery == 0 {
			target := ids[rng.Intn(i)]
			if *emit {
				fmt.Fprintln(out, protocol.CancelOrderMessage{ID: target})
			} else {
				engine.CancelOrder(target)
			}
		}
		if *modifyEvery > 0 && i > 0 && i%*modifyEvery == 0 {
			newSide, _, newQuantity, newPrice := nextRandomOrder(rng, *basePrice, *priceLevels, 0)
			target := ids[rng.Intn(i)]
			if *emit {
				fmt.Fprintln(out, protocol.ModifyOrderMessage{
					ID: target, Side: newSide, Price: newPrice, Quantity: newQuantity,
				})
			} else {
				engine.ModifyOrder(target, newSide, newQuantity, newPrice)
			}
		}
	}
	elapsed := time.Since(start)

	if *emit {
		if err := out.Flush(); err != nil {
			panic(err)
		}
		fmt.Fprintf(os.Stderr, "emitted %d orders in %s (seed=%d)\n",
			*totalOrders, elapsed.Truncate(time.Millisecond), *seed)
		return
	}

	if *memProfile != "" {
		f, err := os.Create(*memProfile)
		if err == nil {
			defer f.Close()
			_ = pprof.WriteHeapProfile(f)
		}
	}

	ordersPerSec := float64(*totalOrders) / elapsed.Seconds()
	tradesPerSec := float64(handler.trades) / elapsed.Seconds()
	snapshot := engine.Snapshot()

	fmt.Printf("submitted %d orders in %s (%.0f orders/s)\n", *totalOrders, elapsed.Truncate(time.Millisecond), ordersPerSec)
	fmt.Printf("matched %d trades (%.0f trades/s), rejected %d\n", handler.trades, tradesPerSec, handler.errors)
	fmt.Printf("resting %d orders on %d price levels\n", engine.OrderBook().Size(), len(snapshot.Bids)+len(snapshot.Asks))
	fmt.Printf("config: ioc-ratio=1/%d cancel-every=%d modify-every=%d seed=%d\n", *iocRatio, *cancelEvery, *modifyEvery, *seed)
}

func nextRandomOrder(rng *rand.Rand, mid, width uint64, iocRatio int) (matching.OrderSide, matching.OrderTimeInForce, matching.Quantity, matching.Price) {
	side := matching.OrderSideBuy
	if rng.Intn(2) == 1 {
		side = matching.OrderSideSell
	}

	// Buys band below the mid, sells above, so only the tails cross.
	var price uint64
	offset := uint64(rng.Int63n(int64(width)))
	if side == matching.OrderSideBuy {
		if mid > offset {
			price = mid - offset
		} else {
			price = 1
		}
	} else {
		price = mid + offset
	}

	tif := matching.OrderTimeInForceGFD
	if iocRatio > 0 && rng.Intn(iocRatio) == 0 {
		tif = matching.OrderTimeInForceIOC
	}

	quantity := uint64(rng.Int63n(5) + 1)

	return side, tif, matching.NewQuantity(quantity), matching.NewPrice(price)
}

// counters tallies fills and rejections. The engine is driven by one
// goroutine here, so plain increments suffice.
type counters struct {
	trades uint64
	errors uint64
}

func (c *counters) OnAddOrder(orderBook *matching.OrderBook, order *matching.Order)    {}
func (c *counters) OnUpdateOrder(orderBook *matching.OrderBook, order *matching.Order) {}
func (c *counters) OnDeleteOrder(orderBook *matching.OrderBook, order *matching.Order) {}
func (c *counters) OnClearOrderBook(orderBook *matching.OrderBook)                     {}

func (c *counters) OnExecuteTrade(orderBook *matching.OrderBook, trade matching.Trade) {
	c.trades++
}

func (c *counters) OnError(orderBook *matching.OrderBook, err error) {
	c.errors++
}
