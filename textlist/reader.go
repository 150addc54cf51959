package textlist

import (
	"io"

	"github.com/npillmayer/treelist"
)

// Reader returns a reader for the text held in l, with sep inserted between
// adjacent elements. Use an empty sep for lists of grapheme clusters and "\n"
// for lists of lines.
//
// The reader iterates over l; structural changes of l while reading make
// Read return treelist.ErrIteratorInvalidated.
func Reader(l *treelist.List[string], sep string) io.Reader {
	return &listReader{it: l.Begin(), sep: sep}
}

type listReader struct {
	it      treelist.Iterator[string]
	sep     string
	pending string // unread bytes of the current element
	started bool   // at least one element consumed
}

func (lr *listReader) Read(p []byte) (n int, err error) {
	for n < len(p) {
		if lr.pending == "" {
			if lr.it.AtEnd() {
				if n == 0 {
					return 0, io.EOF
				}
				return n, nil
			}
			s, err := lr.it.Value()
			if err != nil {
				return n, err
			}
			if err = lr.it.Next(); err != nil {
				return n, err
			}
			if lr.started {
				s = lr.sep + s
			}
			lr.started = true
			lr.pending = s
			continue
		}
		c := copy(p[n:], lr.pending)
		n += c
		lr.pending = lr.pending[c:]
	}
	return n, nil
}
