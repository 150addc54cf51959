package treelist

import (
	"iter"
)

// Iterator is a forward cursor over the elements of a list, in order.
//
// An iterator keeps the path of not yet visited ancestors on an explicit
// stack, giving amortized O(1) and worst case O(log n) per step. It is bound
// to the state of the list it has been created from: after an insertion,
// removal or clear on that list, Value and Next return ErrIteratorInvalidated.
// Replacing element values with Set or through Ref is not a structural change.
//
// The zero value is an end iterator not bound to any list.
type Iterator[T any] struct {
	list    *List[T]
	stack   []*node[T] // ancestors still to be visited
	cur     *node[T]   // nil at end
	version uint64
}

// Begin returns an iterator positioned at the first element of the list.
// For an empty list, Begin is equal to End.
func (l *List[T]) Begin() Iterator[T] {
	it := Iterator[T]{list: l}
	if l == nil {
		return it
	}
	it.version = l.version
	it.pushLeftSpine(l.root)
	it.pop()
	return it
}

// End returns the iterator positioned behind the last element of the list.
func (l *List[T]) End() Iterator[T] {
	it := Iterator[T]{list: l}
	if l != nil {
		it.version = l.version
	}
	return it
}

// AtEnd reports whether the iterator is positioned behind the last element.
func (it *Iterator[T]) AtEnd() bool {
	return it.cur == nil
}

// Equal reports whether two iterators point to the same position.
func (it *Iterator[T]) Equal(other Iterator[T]) bool {
	return it.cur == other.cur
}

// Value returns the element the iterator points to.
func (it *Iterator[T]) Value() (T, error) {
	var zero T
	if err := it.valid(); err != nil {
		return zero, err
	}
	if it.cur == nil {
		return zero, ErrInvalidIterator
	}
	return it.cur.value, nil
}

// Next advances the iterator to the next element. Advancing an iterator
// which is already at the end is an error.
func (it *Iterator[T]) Next() error {
	if err := it.valid(); err != nil {
		return err
	}
	if it.cur == nil {
		return ErrInvalidIterator
	}
	it.advance()
	return nil
}

func (it *Iterator[T]) valid() error {
	if it.list != nil && it.list.version != it.version {
		tracer().Debugf("treelist: iterator of version %d used on list version %d",
			it.version, it.list.version)
		return ErrIteratorInvalidated
	}
	return nil
}

func (it *Iterator[T]) advance() {
	assert(it.cur != nil, "iterator advanced past end")
	if it.cur.right != nil {
		it.pushLeftSpine(it.cur.right)
	}
	it.pop()
}

func (it *Iterator[T]) pushLeftSpine(n *node[T]) {
	for ; n != nil; n = n.left {
		it.stack = append(it.stack, n)
	}
}

func (it *Iterator[T]) pop() {
	if len(it.stack) == 0 {
		it.cur = nil
		return
	}
	it.cur = it.stack[len(it.stack)-1]
	it.stack = it.stack[:len(it.stack)-1]
}

// All returns an iterator over index/element pairs in order.
// The list must not be structurally modified during iteration; a loop body
// which does so panics with ErrIteratorInvalidated.
func (l *List[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		l.ForEach(yield)
	}
}

// Values returns an iterator over all elements in order.
// The list must not be structurally modified during iteration; a loop body
// which does so panics with ErrIteratorInvalidated.
func (l *List[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		l.ForEach(func(_ int, v T) bool {
			return yield(v)
		})
	}
}
