package treelist

import "fmt"

// Check validates the structural invariants of the list's tree: every node is
// reachable from exactly one parent, and every node has a correct cached
// height, a correct cached size and a balance factor in {-1, 0, 1}.
//
// A correct implementation never fails this check through the public API;
// it is meant for tests. Check returns an error wrapping ErrStructureViolated.
// Time: O(n)
func (l *List[T]) Check() error {
	if l == nil {
		return fmt.Errorf("%w: nil list", ErrInvalidConfig)
	}
	visited := make(map[*node[T]]struct{}, l.root.Len())
	if err := checkNode(l.root, visited); err != nil {
		tracer().Errorf("treelist: %v", err)
		return err
	}
	return nil
}

func checkNode[T any](n *node[T], visited map[*node[T]]struct{}) error {
	if n == nil {
		return nil
	}
	if _, seen := visited[n]; seen {
		return fmt.Errorf("%w: node %p reachable more than once", ErrNotATree, n)
	}
	visited[n] = struct{}{}
	if err := checkNode(n.left, visited); err != nil {
		return err
	}
	if err := checkNode(n.right, visited); err != nil {
		return err
	}
	if h := max(n.left.Height(), n.right.Height()) + 1; n.height != h {
		return fmt.Errorf("%w: node %p has height %d, should be %d", ErrHeightMismatch, n, n.height, h)
	}
	if s := n.left.Len() + n.right.Len() + 1; n.size != s {
		return fmt.Errorf("%w: node %p has size %d, should be %d", ErrSizeMismatch, n, n.size, s)
	}
	if b := n.balance(); b < -1 || b > 1 {
		return fmt.Errorf("%w: node %p has balance %d", ErrUnbalanced, n, b)
	}
	return nil
}

// NodeInfo describes a single tree node for diagnostic purposes.
type NodeInfo[T any] struct {
	Value    T
	Index    int  // position of the element in the list
	Depth    int  // 0 for the root
	Height   int  // height of the subtree rooted at the node
	Size     int  // number of elements in the subtree rooted at the node
	Balance  int  // right height minus left height
	HasLeft  bool // node has a left subtree
	HasRight bool // node has a right subtree
}

// WalkStructure visits all nodes of the underlying tree in order and reports
// their shape. Walking stops early if fn returns false.
func (l *List[T]) WalkStructure(fn func(NodeInfo[T]) bool) {
	if l == nil || fn == nil {
		return
	}
	walkNode(l.root, 0, 0, fn)
}

func walkNode[T any](n *node[T], offset, depth int, fn func(NodeInfo[T]) bool) bool {
	if n == nil {
		return true
	}
	if !walkNode(n.left, offset, depth+1, fn) {
		return false
	}
	index := offset + n.left.Len()
	info := NodeInfo[T]{
		Value:    n.value,
		Index:    index,
		Depth:    depth,
		Height:   n.height,
		Size:     n.size,
		Balance:  n.balance(),
		HasLeft:  n.left != nil,
		HasRight: n.right != nil,
	}
	if !fn(info) {
		return false
	}
	return walkNode(n.right, index+1, depth+1, fn)
}
