package list

import (
	"sync"
)

// List is a doubly linked list with a sentinel root element.
//
// Elements may be allocated from an optional sync.Pool so that hot
// insert/remove cycles do not churn the garbage collector. Handles to
// elements stay valid until the element is removed from the list.
//
// NOTE: Not thread-safe.
type List[T any] struct {
	pool *sync.Pool // optional pool used to create/release list elements
	root Element[T] // sentinel element, only &root, root.prev and root.next are used
	len  int        // current list length excluding the sentinel
}

// NewList creates a new List instance.
func NewList[T any]() *List[T] {
	return NewListPooled[T](nil)
}

// NewListPooled creates a new List instance taking its elements from
// the given pool and releasing them back on removal. The pool must
// produce *Element[T] values.
func NewListPooled[T any](pool *sync.Pool) *List[T] {
	l := new(List[T])
	l.pool = pool
	l.root.next = &l.root
	l.root.prev = &l.root
	return l
}

// Front returns the first element of list l or nil if the list is empty.
func (l *List[T]) Front() *Element[T] {
	if l.len == 0 {
		return nil
	}
	return l.root.next
}

// Back returns the last element of list l or nil if the list is empty.
func (l *List[T]) Back() *Element[T] {
	if l.len == 0 {
		return nil
	}
	return l.root.prev
}

// Len returns the number of elements of list l.
func (l *List[T]) Len() int {
	return l.len
}

// PushFront inserts a new element e with value v at the front of list l and returns e.
func (l *List[T]) PushFront(v T) *Element[T] {
	l.lazyInit()
	return l.insertValue(v, &l.root)
}

// PushBack inserts a new element e with value v at the back of list l and returns e.
func (l *List[T]) PushBack(v T) *Element[T] {
	l.lazyInit()
	return l.insertValue(v, l.root.prev)
}

// MoveToBack moves element e to the back of list l.
// If e is not an element of l, the list is not modified.
// The element must not be nil.
func (l *List[T]) MoveToBack(e *Element[T]) {
	if e.list != l || l.root.prev == e {
		return
	}
	l.move(e, l.root.prev)
}

// Remove removes e from l if e is an element of list l.
// The element handle must not be used after removal: pooled lists
// recycle it immediately.
func (l *List[T]) Remove(e *Element[T]) (v T, err error) {
	if e == nil {
		err = ErrorListElementIsNil
		return
	}
	if e.list != l {
		err = ErrorListElementIsNotInTheList
		return
	}
	v = e.Value
	l.remove(e)
	return
}

// Clean removes all elements from list l, releasing them to the pool if one is used.
func (l *List[T]) Clean() {
	if l.pool != nil {
		for e := l.Front(); e != nil; {
			next := e.next
			// Value is left as is, it is overwritten on the next insert.
			e.next, e.prev, e.list = nil, nil, nil
			l.pool.Put(e)
			if next == &l.root {
				break
			}
			e = next
		}
	}
	l.root.next = &l.root
	l.root.prev = &l.root

	l.len = 0
}

// lazyInit lazily initializes a zero List value.
func (l *List[T]) lazyInit() {
	if l.root.next == nil {
		l.root.next = &l.root
		l.root.prev = &l.root
	}
}

// insert inserts e after at, increments l.len, and returns e.
func (l *List[T]) insert(e, at *Element[T]) *Element[T] {
	e.prev = at
	e.next = at.next
	e.prev.next = e
	e.next.prev = e
	e.list = l
	l.len++
	return e
}

// insertValue is a convenience wrapper for insert(&Element{Value: v}, at).
func (l *List[T]) insertValue(v T, at *Element[T]) (e *Element[T]) {
	if l.pool != nil {
		e = l.pool.Get().(*Element[T])
		e.Value = v
	} else {
		e = &Element[T]{Value: v}
	}
	return l.insert(e, at)
}

// move moves e to next to at.
func (l *List[T]) move(e, at *Element[T]) {
	if e == at {
		return
	}
	e.prev.next = e.next
	e.next.prev = e.prev

	e.prev = at
	e.next = at.next
	e.prev.next = e
	e.next.prev = e
}

// remove removes e from its list, decrements l.len.
func (l *List[T]) remove(e *Element[T]) {
	e.prev.next = e.next
	e.next.prev = e.prev
	l.len--

	// Value is left as is, it is overwritten on the next insert.
	e.next, e.prev, e.list = nil, nil, nil

	if l.pool != nil {
		l.pool.Put(e)
	}
}
