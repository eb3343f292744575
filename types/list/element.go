package list

// Element is a node of a linked list.
type Element[T any] struct {
	// next and prev pointers in the doubly-linked list of elements.
	// The list sentinel is not exposed: Next and Prev report nil at
	// the boundaries instead.
	next, prev *Element[T]

	// The list this element belongs to.
	list *List[T]

	// The value stored with this element.
	Value T
}

// Next returns the next list element or nil.
func (e *Element[T]) Next() *Element[T] {
	if p := e.next; e.list != nil && p != &e.list.root {
		return p
	}
	return nil
}

// Prev returns the previous list element or nil.
func (e *Element[T]) Prev() *Element[T] {
	if p := e.prev; e.list != nil && p != &e.list.root {
		return p
	}
	return nil
}
