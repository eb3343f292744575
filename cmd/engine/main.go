package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/quantonic/matchbook/matching"
	"github.com/quantonic/matchbook/session"
)

var _ matching.Handler = &Matcher{}

func main() {
	inputPath := flag.String("input", "", "command file to read (default stdin)")
	symbol := flag.String("symbol", "BTCUSD", "symbol traded by the order book")
	pipelined := flag.Bool("pipelined", false, "decode and match on separate goroutines")
	queueSize := flag.Int("queue-size", 0, "command queue length for pipelined mode")
	stats := flag.Bool("stats", false, "print handler statistics on exit")
	debug := flag.Bool("debug", false, "log skipped commands and rejected orders")
	flag.Parse()

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var input io.Reader = os.Stdin
	if *inputPath != "" {
		file, err := os.Open(*inputPath)
		if err != nil {
			log.Fatal().Err(err).Msg("opening command file")
		}
		defer file.Close()
		input = file
	}

	// Create matching engine
	handler := &Matcher{}
	engine := matching.NewEngine(handler, *symbol)

	// Create command session
	sess := session.New(engine, os.Stdout, session.Config{
		Pipelined: *pipelined,
		QueueSize: *queueSize,
	})

	// Run reading commands until the stream ends
	timeStart := time.Now()
	err := sess.Run(ctx, input)
	timeElapsed := time.Since(timeStart)
	if err != nil {
		log.Fatal().Err(err).Msg("session failed")
	}

	// Print statistics
	if *stats {
		fmt.Println()
		handler.PrintStatistics(timeElapsed)
		fmt.Println()
		fmt.Printf("Time elapsed: %f seconds\n", timeElapsed.Seconds())
	}
}
