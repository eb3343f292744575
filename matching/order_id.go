package matching

// OrderID is an opaque order identifier. Identity is byte equality: two
// orders are the same order iff their identifiers are equal. The empty
// string is the unset/invalid sentinel and never denotes a live order.
type OrderID string

// Valid returns true if the identifier can denote a live order.
func (id OrderID) Valid() bool {
	return id != ""
}

func (id OrderID) String() string {
	return string(id)
}
