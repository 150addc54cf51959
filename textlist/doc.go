/*
Package textlist holds text in tree lists, one element per user-perceived
character or per line.

Editing text at arbitrary positions is what a treelist.List is good at.
FromString splits a string into grapheme clusters (as defined by Unicode
UAX#29), so that positions in the list correspond to what a user would
call a character. LoadLines streams a text file into a list of lines,
broadcasting loaded lines to interested parties while the file is read.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.
*/
package textlist

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'treelist'
func tracer() tracing.Trace {
	return tracing.Select("treelist")
}
