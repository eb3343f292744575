package protocol

import (
	"github.com/quantonic/matchbook/matching"
)

func parseOrderSide(token string) (matching.OrderSide, error) {
	switch token {
	case "BUY":
		return matching.OrderSideBuy, nil
	case "SELL":
		return matching.OrderSideSell, nil
	}
	return 0, ErrMalformedMessage
}

func parseTimeInForce(token string) (matching.OrderTimeInForce, error) {
	switch token {
	case "GFD":
		return matching.OrderTimeInForceGFD, nil
	case "IOC":
		return matching.OrderTimeInForceIOC, nil
	}
	return 0, ErrMalformedMessage
}

// parsePrice accepts strictly positive decimal integers. The scalar
// parser itself tolerates trailing garbage, so the digits check here
// is what enforces the token grammar.
func parsePrice(token string) (matching.Price, error) {
	if !isDigits(token) {
		return matching.NewZeroPrice(), ErrMalformedMessage
	}
	price, err := matching.ParsePrice(token)
	if err != nil || price.IsZero() {
		return matching.NewZeroPrice(), ErrMalformedMessage
	}
	return price, nil
}

// parseQuantity accepts strictly positive decimal integers.
func parseQuantity(token string) (matching.Quantity, error) {
	if !isDigits(token) {
		return matching.NewZeroQuantity(), ErrMalformedMessage
	}
	quantity, err := matching.ParseQuantity(token)
	if err != nil || quantity.IsZero() {
		return matching.NewZeroQuantity(), ErrMalformedMessage
	}
	return quantity, nil
}

func parseOrderID(token string) (matching.OrderID, error) {
	id := matching.OrderID(token)
	if !id.Valid() {
		return "", ErrMalformedMessage
	}
	return id, nil
}

func isDigits(s string) bool {
	if len(s) == 0 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
