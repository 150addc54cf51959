/*
Package treelist implements an ordered, random-access sequence container.

Lists

A List stores its elements in a height-balanced binary tree where every node
is augmented with the size of the subtree rooted at it (an order-statistics
tree). Positions are never stored explicitly: element i is found by descending
from the root and comparing i with the size of the left subtree. This makes
indexed access, insertion and removal at arbitrary positions logarithmic.

	Operation     |   List          |  Slice
	--------------+-----------------+--------
	Index         |   O(log n)      |   O(1)
	Insert        |   O(log n)      |   O(n)
	Erase         |   O(log n)      |   O(n)
	Iterate       |   O(n)          |   O(n)
	Append        |   O(log n)      |   O(1) amortized

After every insertion or removal the nodes on the path back to the root
re-compute their cached size and height and are rotated if they lean to one
side by more than one level (AVL discipline). The height of a list of n
elements therefore never exceeds 1.44·log2(n+2).

A list created by

	treelist.New[T]()

is empty and ready to use. Lists are not safe for concurrent mutation.
Iterators are bound to the state of the list they were created from;
any insertion, removal or clear invalidates them, which is detected and
reported as ErrIteratorInvalidated.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.
*/
package treelist

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'treelist'
func tracer() tracing.Trace {
	return tracing.Select("treelist")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
