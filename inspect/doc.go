/*
Package inspect renders the internal tree of a treelist.List to a console.

Trees are printed sideways: the root is at the left margin, right subtrees
above and left subtrees below their parent, one node per line. Nodes are
colored by balance factor, which makes lopsided regions easy to spot when
debugging.

	inspect.Print(list)

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.
*/
package inspect

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'treelist'
func tracer() tracing.Trace {
	return tracing.Select("treelist")
}
