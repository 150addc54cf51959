package treelist

// node is a vertex of the order-statistics tree, augmented with the size and
// the height of the subtree rooted at it.
//
// A nil *node represents the empty subtree. Len, Height and balance are
// defined for nil receivers, so the empty subtree needs no shared sentinel
// node. Only non-nil nodes carry a value and children.
type node[T any] struct {
	value       T
	height      int
	size        int
	left, right *node[T]
}

func newNode[T any](value T) *node[T] {
	return &node[T]{value: value, height: 1, size: 1}
}

// Len returns the number of elements in the subtree, 0 for the empty subtree.
func (n *node[T]) Len() int {
	if n == nil {
		return 0
	}
	return n.size
}

// Height returns the height of the subtree, 0 for the empty subtree.
func (n *node[T]) Height() int {
	if n == nil {
		return 0
	}
	return n.height
}

func (n *node[T]) balance() int {
	if n == nil {
		return 0
	}
	return n.right.Height() - n.left.Height()
}

// update re-computes size and height from the children.
func (n *node[T]) update() {
	assert(n != nil, "update called for empty subtree")
	n.height = max(n.left.Height(), n.right.Height()) + 1
	n.size = n.left.Len() + n.right.Len() + 1
}

// nodeAt returns the node holding the element at rank index within the subtree.
// Time: O(h); Space: O(1)
func (n *node[T]) nodeAt(index int) *node[T] {
	assert(index >= 0 && index < n.Len(), "nodeAt: index out of subtree range")
	for n != nil {
		leftSize := n.left.Len()
		if index < leftSize {
			n = n.left
		} else if index > leftSize {
			index -= leftSize + 1
			n = n.right
		} else {
			return n
		}
	}
	panic("nodeAt: rank routing exceeded subtree size")
}

// insertAt inserts value at rank index and returns the new root of the
// subtree. Callers must replace their reference to n with the result, as
// rebalancing may rotate a different node to the top.
//
// Inserting at an index equal to the size of the left subtree descends left,
// placing the new element as the rightmost element of the left partition.
func (n *node[T]) insertAt(index int, value T) *node[T] {
	assert(index >= 0 && index <= n.Len(), "insertAt: index out of subtree range")
	if n == nil {
		return newNode(value)
	}
	if leftSize := n.left.Len(); index <= leftSize {
		n.left = n.left.insertAt(index, value)
	} else {
		n.right = n.right.insertAt(index-leftSize-1, value)
	}
	n.update()
	return n.rebalance()
}

// removeAt removes the element at rank index and returns the new root of the
// subtree. The node physically detached from the tree is stored in released.
// There is exactly one such node per call; released must be nil on entry.
//
// A node with two children is not detached. It takes over the value of its
// in-order successor, and the successor, which has no left child, is removed
// from the right subtree instead.
func (n *node[T]) removeAt(index int, released **node[T]) *node[T] {
	assert(index >= 0 && index < n.Len(), "removeAt: index out of subtree range")
	leftSize := n.left.Len()
	switch {
	case index < leftSize:
		n.left = n.left.removeAt(index, released)
	case index > leftSize:
		n.right = n.right.removeAt(index-leftSize-1, released)
	case n.left == nil && n.right == nil:
		n.detach(released)
		return nil
	case n.right == nil:
		child := n.left
		n.left = nil
		n.detach(released)
		return child
	case n.left == nil:
		child := n.right
		n.right = nil
		n.detach(released)
		return child
	default:
		n.value = n.right.leftmost().value
		n.right = n.right.removeAt(0, released)
	}
	n.update()
	return n.rebalance()
}

func (n *node[T]) detach(released **node[T]) {
	assert(*released == nil, "removeAt: more than one node released")
	assert(n.left == nil && n.right == nil, "removeAt: released node still owns a subtree")
	*released = n
}

func (n *node[T]) leftmost() *node[T] {
	for n.left != nil {
		n = n.left
	}
	return n
}

// rebalance restores the AVL property at n, given that both subtrees of n are
// balanced and their heights differ by at most 2. It returns the new root of
// the subtree.
func (n *node[T]) rebalance() *node[T] {
	bal := n.balance()
	assert(bal >= -2 && bal <= 2, "rebalance: subtree heights differ by more than 2")
	switch bal {
	case 2:
		if n.right.balance() == -1 {
			n.right = n.right.rotateRight()
		}
		n = n.rotateLeft()
	case -2:
		if n.left.balance() == 1 {
			n.left = n.left.rotateLeft()
		}
		n = n.rotateRight()
	}
	assert(n.balance() >= -1 && n.balance() <= 1, "rebalance: subtree still unbalanced")
	return n
}

// rotateLeft lifts the right child of n to the top of the subtree and returns it.
// Time: O(1); Space: O(1)
func (n *node[T]) rotateLeft() *node[T] {
	assert(n.right != nil, "rotateLeft: no right child")
	top := n.right
	n.right = top.left
	top.left = n
	n.update()
	top.update()
	return top
}

// rotateRight lifts the left child of n to the top of the subtree and returns it.
// Time: O(1); Space: O(1)
func (n *node[T]) rotateRight() *node[T] {
	assert(n.left != nil, "rotateRight: no left child")
	top := n.left
	n.left = top.right
	top.right = n
	n.update()
	top.update()
	return top
}

// buildBalanced creates a perfectly balanced subtree holding the elements
// at(lo) … at(hi-1), splitting recursively at the middle element.
// Time: O(n)
func buildBalanced[T any](lo, hi int, at func(int) T) *node[T] {
	if lo >= hi {
		return nil
	}
	mid := lo + (hi-lo)/2
	n := &node[T]{value: at(mid)}
	n.left = buildBalanced(lo, mid, at)
	n.right = buildBalanced(mid+1, hi, at)
	n.update()
	return n
}
