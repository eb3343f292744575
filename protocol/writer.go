package protocol

import (
	"bufio"
	"fmt"
	"io"

	"github.com/quantonic/matchbook/matching"
)

// Writer renders engine results in wire form. Output is buffered:
// callers flush once per natural batch, typically after each command.
type Writer struct {
	w *bufio.Writer
}

// NewWriter creates and returns new Writer instance.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w)}
}

// WriteTrade writes a single trade line. The passive side comes first,
// then the aggressive side, both with the fill quantity.
func (w *Writer) WriteTrade(trade matching.Trade) error {
	_, err := fmt.Fprintf(w.w, "TRADE %s %s %s %s %s %s\n",
		trade.MakerID, trade.MakerPrice, trade.MakerQuantity,
		trade.TakerID, trade.TakerPrice, trade.TakerQuantity)
	return err
}

// WriteTrades writes one trade line per fill, in fill order.
func (w *Writer) WriteTrades(trades []matching.Trade) error {
	for _, trade := range trades {
		if err := w.WriteTrade(trade); err != nil {
			return err
		}
	}
	return nil
}

// WriteSnapshot writes the book depth: the sell side best (lowest)
// price first, then the buy side best (highest) price first. Empty
// sides print their header with no level lines.
func (w *Writer) WriteSnapshot(snapshot matching.BookSnapshot) error {
	if _, err := fmt.Fprintln(w.w, "SELL:"); err != nil {
		return err
	}
	for _, level := range snapshot.Asks {
		if _, err := fmt.Fprintf(w.w, "%s %s\n", level.Price, level.Volume); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w.w, "BUY:"); err != nil {
		return err
	}
	for _, level := range snapshot.Bids {
		if _, err := fmt.Fprintf(w.w, "%s %s\n", level.Price, level.Volume); err != nil {
			return err
		}
	}
	return nil
}

// Flush pushes buffered output to the underlying writer.
func (w *Writer) Flush() error {
	return w.w.Flush()
}
