package matching

import (
	"lukechampine.com/uint128"
)

// Price is a limit price expressed in indivisible price units. It is an
// unsigned 128-bit integer with checked arithmetic: operations panic on
// overflow and underflow instead of wrapping. The zero price is the
// unset/invalid sentinel and never appears on a resting order.
type Price struct {
	v uint128.Uint128
}

// NewPrice creates a new Price from a uint64.
func NewPrice(v uint64) Price {
	return Price{v: uint128.From64(v)}
}

// NewZeroPrice creates an unset Price.
func NewZeroPrice() Price {
	return Price{}
}

// ParsePrice parses a decimal string as a Price.
// The caller is responsible for rejecting non-digit input: parsing
// follows uint128 semantics and is not stricter than fmt scanning.
func ParsePrice(s string) (Price, error) {
	v, err := uint128.FromString(s)
	if err != nil {
		return Price{}, err
	}
	return Price{v: v}, nil
}

// Cmp returns 1 if p > v, 0 if p == v, and -1 if p < v.
func (p Price) Cmp(v Price) int {
	return p.v.Cmp(v.v)
}

// IsZero returns true if p is the unset sentinel.
func (p Price) IsZero() bool {
	return p.v.IsZero()
}

// Equals returns true if p == v.
func (p Price) Equals(v Price) bool {
	return p.v.Equals(v.v)
}

// LessThan returns true if p < v.
func (p Price) LessThan(v Price) bool {
	return p.v.Cmp(v.v) < 0
}

// LessThanOrEqualTo returns true if p <= v.
func (p Price) LessThanOrEqualTo(v Price) bool {
	return p.v.Cmp(v.v) <= 0
}

// GreaterThan returns true if p > v.
func (p Price) GreaterThan(v Price) bool {
	return p.v.Cmp(v.v) > 0
}

// GreaterThanOrEqualTo returns true if p >= v.
func (p Price) GreaterThanOrEqualTo(v Price) bool {
	return p.v.Cmp(v.v) >= 0
}

func (p Price) String() string {
	return p.v.String()
}
