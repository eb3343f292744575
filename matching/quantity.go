package matching

import (
	"lukechampine.com/uint128"
)

// Quantity is an order or level quantity expressed in indivisible lots.
// It is an unsigned 128-bit integer with checked arithmetic: operations
// panic on overflow and underflow instead of wrapping. Zero means
// "fully consumed" and never appears on a resting order.
type Quantity struct {
	v uint128.Uint128
}

// NewQuantity creates a new Quantity from a uint64.
func NewQuantity(v uint64) Quantity {
	return Quantity{v: uint128.From64(v)}
}

// NewZeroQuantity creates an exhausted Quantity.
func NewZeroQuantity() Quantity {
	return Quantity{}
}

// ParseQuantity parses a decimal string as a Quantity.
// The caller is responsible for rejecting non-digit input: parsing
// follows uint128 semantics and is not stricter than fmt scanning.
func ParseQuantity(s string) (Quantity, error) {
	v, err := uint128.FromString(s)
	if err != nil {
		return Quantity{}, err
	}
	return Quantity{v: v}, nil
}

// Add returns q + v. Panics on overflow.
func (q Quantity) Add(v Quantity) Quantity {
	q.v = q.v.Add(v.v)
	return q
}

// Sub returns q - v. The minuend must dominate: panics on underflow.
func (q Quantity) Sub(v Quantity) Quantity {
	q.v = q.v.Sub(v.v)
	return q
}

// Min returns the smaller of q and v.
func (q Quantity) Min(v Quantity) Quantity {
	if q.v.Cmp(v.v) <= 0 {
		return q
	}
	return v
}

// Cmp returns 1 if q > v, 0 if q == v, and -1 if q < v.
func (q Quantity) Cmp(v Quantity) int {
	return q.v.Cmp(v.v)
}

// IsZero returns true if q is fully consumed.
func (q Quantity) IsZero() bool {
	return q.v.IsZero()
}

// Equals returns true if q == v.
func (q Quantity) Equals(v Quantity) bool {
	return q.v.Equals(v.v)
}

// LessThan returns true if q < v.
func (q Quantity) LessThan(v Quantity) bool {
	return q.v.Cmp(v.v) < 0
}

// GreaterThan returns true if q > v.
func (q Quantity) GreaterThan(v Quantity) bool {
	return q.v.Cmp(v.v) > 0
}

func (q Quantity) String() string {
	return q.v.String()
}
