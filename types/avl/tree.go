package avl

import (
	"sync"

	"gopkg.in/typ.v4"
)

// Tree is a binary search tree (BST) for ordered keys, implemented as
// an AVL tree (Adelson-Velsky and Landis tree), a type of self-balancing
// BST. This guarantees O(log t) insertion, searching and deletion.
//
// The leftmost node is cached so that best-first consumers read it in
// O(1). In-order iteration visits keys in comparator order and may stop
// early, which is how matching walks a side until prices stop crossing.
//
// NOTE: Not thread-safe.
type Tree[K, V any] struct {
	compare  func(a, b K) int
	pool     *sync.Pool
	root     *Node[K, V]
	mostLeft *Node[K, V]
	size     int
}

////////////////////////////////////////////////////////////////

// NewOrderedTree creates a new AVL tree using a default comparator function
// for any ordered type (ints, uints, floats, strings).
func NewOrderedTree[K typ.Ordered, V any]() Tree[K, V] {
	return NewTree[K, V](typ.Compare[K])
}

// NewTree creates a new AVL tree using a comparator function that is
// expected to return 0 if a == b, -1 if a < b, and +1 if a > b.
func NewTree[K, V any](compare func(a, b K) int) Tree[K, V] {
	return Tree[K, V]{
		compare: compare,
	}
}

// NewTreePooled creates a new AVL tree using a comparator function that is
// expected to return 0 if a == b, -1 if a < b, and +1 if a > b.
// Pooled tree uses given pool for nodes creating/releasing. The pool
// must produce *Node[K, V] values.
func NewTreePooled[K, V any](compare func(a, b K) int, pool *sync.Pool) Tree[K, V] {
	return Tree[K, V]{
		compare: compare,
		pool:    pool,
	}
}

////////////////////////////////////////////////////////////////

// Size returns the amount of nodes in the tree.
func (t *Tree[K, V]) Size() int {
	return t.size
}

// Contains checks if a node with given key exists in the tree.
func (t *Tree[K, V]) Contains(key K) bool {
	return t.Find(key) != nil
}

// Find finds the node with given key in the tree, or nil.
func (t *Tree[K, V]) Find(key K) *Node[K, V] {
	if t.root == nil {
		return nil
	}
	return t.root.find(key, t.compare)
}

// Add inserts a node with given key and value to the tree.
// Duplicate keys are not allowed so error will be returned on duplicate.
func (t *Tree[K, V]) Add(key K, value V) (node *Node[K, V], err error) {
	if t.pool != nil {
		node = t.pool.Get().(*Node[K, V])
		node.key = key
		node.value = value
	} else {
		node = &Node[K, V]{
			key:   key,
			value: value,
		}
	}
	if t.root == nil {
		t.root = node
	} else {
		newRoot, err := t.root.add(node, t.compare)
		if err != nil {
			t.release(node)
			return nil, err
		}
		t.root = newRoot
	}
	t.size++
	if t.mostLeft == nil || t.compare(node.key, t.mostLeft.key) < 0 {
		t.mostLeft = node
	}
	return
}

// Remove removes the node with given key from the tree and returns its value.
func (t *Tree[K, V]) Remove(key K) (value V, err error) {
	if t.root == nil {
		err = ErrorTreeNodeNotFound
		return
	}
	var node, newRoot *Node[K, V]
	node, newRoot, err = t.root.remove(key, t.compare)
	if err != nil {
		return
	}
	t.root = newRoot
	t.size--
	value = node.value
	if t.mostLeft == node {
		if t.root != nil {
			t.mostLeft = t.root.MostLeft()
		} else {
			t.mostLeft = nil
		}
	}
	t.release(node)
	return
}

// MostLeft returns the leftmost node of the tree, or nil if the tree is empty.
func (t *Tree[K, V]) MostLeft() *Node[K, V] {
	return t.mostLeft
}

// Clear will reset this tree to an empty tree.
func (t *Tree[K, V]) Clear() {
	if t.root != nil && t.pool != nil {
		t.root.iteratePostOrder(func(node *Node[K, V]) bool {
			t.release(node)
			return false
		})
	}
	t.root = nil
	t.mostLeft = nil
	t.size = 0
}

// IteratePreOrder will iterate all values in this tree by first visiting each
// node's value, followed by its left branch, and then its right branch.
// Iteration stops early when f returns true.
func (t *Tree[K, V]) IteratePreOrder(f func(value V) bool) {
	if t.root == nil {
		return
	}
	t.root.iteratePreOrder(func(v *Node[K, V]) bool {
		return f(v.value)
	})
}

// IterateInOrder will iterate all values in this tree by first visiting each
// node's left branch, followed by its own value, and then its right branch.
// Values are visited in comparator order. Iteration stops early when f
// returns true.
func (t *Tree[K, V]) IterateInOrder(f func(value V) bool) {
	if t.root == nil {
		return
	}
	t.root.iterateInOrder(func(v *Node[K, V]) bool {
		return f(v.value)
	})
}

// IteratePostOrder will iterate all values in this tree by first visiting each
// node's left branch, followed by its right branch, and then its own value.
// Iteration stops early when f returns true.
func (t *Tree[K, V]) IteratePostOrder(f func(value V) bool) {
	if t.root == nil {
		return
	}
	t.root.iteratePostOrder(func(v *Node[K, V]) bool {
		return f(v.value)
	})
}

func (t *Tree[K, V]) release(node *Node[K, V]) {
	if t.pool == nil {
		return
	}
	*node = Node[K, V]{}
	t.pool.Put(node)
}
