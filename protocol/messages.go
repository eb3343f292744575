package protocol

import (
	"fmt"

	"github.com/quantonic/matchbook/matching"
)

// SubmitOrderMessage carries a BUY or SELL command.
type SubmitOrderMessage struct {
	Side        matching.OrderSide
	TimeInForce matching.OrderTimeInForce
	Price       matching.Price
	Quantity    matching.Quantity
	ID          matching.OrderID
}

// String renders the message in wire form.
func (m SubmitOrderMessage) String() string {
	return fmt.Sprintf("%s %s %s %s %s", m.Side, m.TimeInForce, m.Price, m.Quantity, m.ID)
}

// CancelOrderMessage carries a CANCEL command.
type CancelOrderMessage struct {
	ID matching.OrderID
}

// String renders the message in wire form.
func (m CancelOrderMessage) String() string {
	return fmt.Sprintf("CANCEL %s", m.ID)
}

// ModifyOrderMessage carries a MODIFY command.
type ModifyOrderMessage struct {
	ID       matching.OrderID
	Side     matching.OrderSide
	Price    matching.Price
	Quantity matching.Quantity
}

// String renders the message in wire form.
func (m ModifyOrderMessage) String() string {
	return fmt.Sprintf("MODIFY %s %s %s %s", m.ID, m.Side, m.Price, m.Quantity)
}

// PrintMessage carries a PRINT command.
type PrintMessage struct{}

// String renders the message in wire form.
func (m PrintMessage) String() string {
	return "PRINT"
}

// ClearMessage carries a CLEAR command.
type ClearMessage struct{}

// String renders the message in wire form.
func (m ClearMessage) String() string {
	return "CLEAR"
}

// UnknownMessage carries a line the decoder could not parse: unknown
// verb, wrong field count or an invalid field value.
type UnknownMessage struct {
	Line string
}

// String returns the raw line.
func (m UnknownMessage) String() string {
	return m.Line
}
