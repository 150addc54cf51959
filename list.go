package treelist

import (
	"fmt"
)

// List is an ordered sequence of elements of type T with logarithmic
// indexed access, insertion and removal.
//
// A list created by
//
//	List[T]{}
//
// is a valid empty list without a length limit. Use NewWithConfig to set a
// maximum length.
type List[T any] struct {
	root    *node[T]
	maxLen  int    // 0 means math.MaxInt
	version uint64 // incremented by every structural mutation
}

// New creates an empty list.
func New[T any]() *List[T] {
	return &List[T]{}
}

// NewWithConfig creates an empty list with a validated configuration.
func NewWithConfig[T any](cfg Config) (*List[T], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg = cfg.normalized()
	return &List[T]{maxLen: cfg.MaxLen}, nil
}

// Filled creates a list of count elements, each of them equal to value.
// A negative count is an error.
// Time: O(n)
func Filled[T any](count int, value T) (*List[T], error) {
	if count < 0 {
		return nil, fmt.Errorf("%w: negative element count %d", ErrIndexOutOfBounds, count)
	}
	l := New[T]()
	l.root = buildBalanced(0, count, func(int) T { return value })
	tracer().Debugf("treelist: filled list with %d elements, height %d", count, l.Height())
	return l, nil
}

// FromSlice creates a list holding copies of items, in order.
// Time: O(n)
func FromSlice[T any](items []T) *List[T] {
	l := New[T]()
	l.root = buildBalanced(0, len(items), func(i int) T { return items[i] })
	return l
}

// Config returns the effective configuration of the list.
func (l *List[T]) Config() Config {
	return Config{MaxLen: l.maxLen}.normalized()
}

// Len returns the number of elements in the list.
// Time: O(1)
func (l *List[T]) Len() int {
	if l == nil {
		return 0
	}
	return l.root.Len()
}

// IsEmpty reports whether the list has no elements.
func (l *List[T]) IsEmpty() bool {
	return l.Len() == 0
}

// Height returns the height of the underlying tree, where 0 means empty.
func (l *List[T]) Height() int {
	if l == nil {
		return 0
	}
	return l.root.Height()
}

// At returns the element at index.
// Time: O(log n)
func (l *List[T]) At(index int) (T, error) {
	p, err := l.Ref(index)
	if err != nil {
		var zero T
		return zero, err
	}
	return *p, nil
}

// Ref returns a pointer to the element at index, allowing it to be read and
// written in place. The pointer stays valid until the element is erased;
// erasing other elements may move values between nodes, so it must not be
// kept across structural mutations.
// Time: O(log n)
func (l *List[T]) Ref(index int) (*T, error) {
	if index < 0 || index >= l.Len() {
		return nil, fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfBounds, index, l.Len())
	}
	return &l.root.nodeAt(index).value, nil
}

// Set replaces the element at index with value. Set does not change the
// structure of the list and does not invalidate iterators.
// Time: O(log n)
func (l *List[T]) Set(index int, value T) error {
	p, err := l.Ref(index)
	if err != nil {
		return err
	}
	*p = value
	return nil
}

// Insert inserts value at index. Elements at positions index and above shift
// up by one position. index may be equal to Len(), which appends value.
// Time: O(log n)
func (l *List[T]) Insert(index int, value T) error {
	if l == nil {
		return fmt.Errorf("%w: nil list", ErrInvalidConfig)
	}
	size := l.Len()
	if index < 0 || index > size {
		return fmt.Errorf("%w: insert at %d, length %d", ErrIndexOutOfBounds, index, size)
	}
	if size == l.Config().MaxLen {
		return fmt.Errorf("%w: length %d", ErrCapacityExceeded, size)
	}
	l.root = l.root.insertAt(index, value)
	l.version++
	return nil
}

// PushBack appends value to the end of the list.
func (l *List[T]) PushBack(value T) error {
	return l.Insert(l.Len(), value)
}

// PushFront prepends value to the start of the list.
func (l *List[T]) PushFront(value T) error {
	return l.Insert(0, value)
}

// Erase removes the element at index and returns it. Elements above index
// shift down by one position.
// Time: O(log n)
func (l *List[T]) Erase(index int) (T, error) {
	var zero T
	size := l.Len()
	if index < 0 || index >= size {
		return zero, fmt.Errorf("%w: erase at %d, length %d", ErrIndexOutOfBounds, index, size)
	}
	value := l.root.nodeAt(index).value
	var released *node[T]
	l.root = l.root.removeAt(index, &released)
	assert(released != nil, "erase: no node released")
	released.value = zero
	l.version++
	return value, nil
}

// PopBack removes the last element and returns it.
// It is an error to call PopBack for an empty list.
func (l *List[T]) PopBack() (T, error) {
	if l.IsEmpty() {
		var zero T
		return zero, fmt.Errorf("%w: pop from empty list", ErrIndexOutOfBounds)
	}
	return l.Erase(l.Len() - 1)
}

// Clear removes all elements from the list.
func (l *List[T]) Clear() {
	if l == nil || l.root == nil {
		return
	}
	tracer().Debugf("treelist: clearing list of %d elements", l.root.Len())
	l.root = nil
	l.version++
}

// ToSlice returns the elements of the list as a slice.
// Time: O(n)
func (l *List[T]) ToSlice() []T {
	out := make([]T, 0, l.Len())
	l.ForEach(func(_ int, v T) bool {
		out = append(out, v)
		return true
	})
	return out
}

// ForEach calls fn for every element in order, together with its index.
// Iteration stops early if fn returns false. fn must not modify the
// structure of the list; if it does, ForEach panics with
// ErrIteratorInvalidated.
func (l *List[T]) ForEach(fn func(index int, value T) bool) {
	if l == nil || fn == nil {
		return
	}
	i := 0
	for it := l.Begin(); !it.AtEnd(); it.advance() {
		if !fn(i, it.cur.value) {
			return
		}
		if err := it.valid(); err != nil {
			panic(err)
		}
		i++
	}
}
