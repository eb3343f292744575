package avl

// Node is a single node of the AVL tree. Node handles returned from
// Tree.Add and Tree.Find stay valid until the node's key is removed:
// rebalancing relinks nodes but never moves a key/value pair between
// them.
type Node[K, V any] struct {
	key    K
	value  V
	left   *Node[K, V]
	right  *Node[K, V]
	height int
}

// Key returns key of the tree node.
func (n *Node[K, V]) Key() K {
	return n.key
}

// Value returns value of the tree node.
func (n *Node[K, V]) Value() V {
	return n.value
}

// MostLeft returns the leftmost node of the subtree rooted at n.
func (n *Node[K, V]) MostLeft() *Node[K, V] {
	current := n
	for current.left != nil {
		current = current.left
	}
	return current
}

func (n *Node[K, V]) find(key K, compare func(a, b K) int) *Node[K, V] {
	current := n
	for current != nil {
		cmp := compare(key, current.key)
		switch {
		case cmp == 0:
			return current
		case cmp < 0:
			current = current.left
		default:
			current = current.right
		}
	}
	return nil
}

func (n *Node[K, V]) add(node *Node[K, V], compare func(a, b K) int) (*Node[K, V], error) {
	cmp := compare(node.key, n.key)
	switch {
	case cmp < 0:
		if n.left == nil {
			n.left = node
		} else {
			newLeft, err := n.left.add(node, compare)
			if err != nil {
				return nil, err
			}
			n.left = newLeft
		}
	case cmp > 0:
		if n.right == nil {
			n.right = node
		} else {
			newRight, err := n.right.add(node, compare)
			if err != nil {
				return nil, err
			}
			n.right = newRight
		}
	default:
		return nil, ErrorTreeNodeDuplicate
	}
	n.height = n.calcHeight()
	return n.rebalance(), nil
}

func (n *Node[K, V]) remove(key K, compare func(a, b K) int) (removed, replacement *Node[K, V], err error) {
	cmp := compare(key, n.key)
	switch {
	case cmp < 0:
		if n.left == nil {
			return nil, nil, ErrorTreeNodeNotFound
		}
		var newLeft *Node[K, V]
		removed, newLeft, err = n.left.remove(key, compare)
		if err != nil {
			return nil, nil, err
		}
		n.left = newLeft
	case cmp > 0:
		if n.right == nil {
			return nil, nil, ErrorTreeNodeNotFound
		}
		var newRight *Node[K, V]
		removed, newRight, err = n.right.remove(key, compare)
		if err != nil {
			return nil, nil, err
		}
		n.right = newRight
	default:
		switch {
		case n.left == nil && n.right == nil:
			return n, nil, nil
		case n.left == nil:
			return n, n.right, nil
		case n.right == nil:
			return n, n.left, nil
		default:
			// Two children: lift the in-order successor into n's place.
			// The successor node itself is relinked, not copied, so
			// outstanding handles to it stay valid.
			newRight, successor := n.right.popMostLeft()
			successor.left = n.left
			successor.right = newRight
			successor.height = successor.calcHeight()
			return n, successor.rebalance(), nil
		}
	}
	n.height = n.calcHeight()
	return removed, n.rebalance(), nil
}

func (n *Node[K, V]) popMostLeft() (child, mostLeft *Node[K, V]) {
	if n.left == nil {
		return n.right, n
	}
	newLeft, popped := n.left.popMostLeft()
	n.left = newLeft
	n.height = n.calcHeight()
	return n.rebalance(), popped
}

func (n *Node[K, V]) iteratePreOrder(f func(v *Node[K, V]) bool) bool {
	if f(n) {
		return true
	}
	if n.left != nil && n.left.iteratePreOrder(f) {
		return true
	}
	if n.right != nil && n.right.iteratePreOrder(f) {
		return true
	}
	return false
}

func (n *Node[K, V]) iterateInOrder(f func(v *Node[K, V]) bool) bool {
	if n.left != nil && n.left.iterateInOrder(f) {
		return true
	}
	if f(n) {
		return true
	}
	if n.right != nil && n.right.iterateInOrder(f) {
		return true
	}
	return false
}

func (n *Node[K, V]) iteratePostOrder(f func(v *Node[K, V]) bool) bool {
	if n.left != nil && n.left.iteratePostOrder(f) {
		return true
	}
	if n.right != nil && n.right.iteratePostOrder(f) {
		return true
	}
	return f(n)
}

// balanceFactor is positive for right-heavy subtrees and negative for
// left-heavy ones.
func (n *Node[K, V]) balanceFactor() int {
	return n.rightHeight() - n.leftHeight()
}

func (n *Node[K, V]) rebalance() *Node[K, V] {
	switch bf := n.balanceFactor(); {
	case bf > 1:
		if n.right.balanceFactor() < 0 {
			n.right = n.right.rotateRight()
		}
		return n.rotateLeft()
	case bf < -1:
		if n.left.balanceFactor() > 0 {
			n.left = n.left.rotateLeft()
		}
		return n.rotateRight()
	}
	return n
}

func (n *Node[K, V]) leftHeight() int {
	if n.left == nil {
		return -1
	}
	return n.left.height
}

func (n *Node[K, V]) rightHeight() int {
	if n.right == nil {
		return -1
	}
	return n.right.height
}

func (n *Node[K, V]) calcHeight() int {
	leftHeight, rightHeight := n.leftHeight(), n.rightHeight()
	if leftHeight > rightHeight {
		return 1 + leftHeight
	}
	return 1 + rightHeight
}

func (n *Node[K, V]) rotateLeft() *Node[K, V] {
	newRoot := n.right
	n.right = newRoot.left
	newRoot.left = n
	n.height = n.calcHeight()
	newRoot.height = newRoot.calcHeight()
	return newRoot
}

func (n *Node[K, V]) rotateRight() *Node[K, V] {
	newRoot := n.left
	n.left = newRoot.right
	newRoot.right = n
	n.height = n.calcHeight()
	newRoot.height = newRoot.calcHeight()
	return newRoot
}
