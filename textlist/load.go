package textlist

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/guiguan/caster"
	"github.com/npillmayer/treelist"
)

var (
	// ErrNotRegularFile signals an attempt to load something other than a file.
	ErrNotRegularFile = errors.New("textlist: not a regular file")
	// ErrInvalidUTF8 signals a line which is not valid UTF-8 text.
	ErrInvalidUTF8 = errors.New("textlist: invalid UTF-8")
	// ErrLoadInterrupted signals that loading stopped before the end of file.
	ErrLoadInterrupted = errors.New("textlist: loading interrupted")
)

// progressInterval is the number of lines between two progress reports.
const progressInterval = 256

// Progress reports the state of a running LoadLines.
type Progress struct {
	Lines int   // lines loaded so far
	Bytes int64 // bytes consumed so far
	Size  int64 // size of the file in bytes
	Done  bool  // set for the final report only
}

// textFile represents an OS file which will be loaded into a list of lines.
type textFile struct {
	path string
	info os.FileInfo
	file *os.File
	cast *caster.Caster // broadcasts lines as they are read
}

// messages broadcast while loading
type (
	lineLoaded struct {
		text   string
		offset int64 // bytes consumed including this line
	}
	loadFinished struct {
		err error
	}
)

// LoadLines reads a UTF-8 text file and returns a list holding its lines,
// without line terminators. A final line without a terminating newline counts
// as a line, an empty file yields an empty list.
//
// The file is read by a separate goroutine, which broadcasts every line it
// reads. The calling goroutine collects lines into the list, while progress,
// if non-nil, is called from yet another goroutine every few hundred lines.
// A final report with Done set is issued from the calling goroutine after
// loading succeeded. Cancelling ctx stops loading.
func LoadLines(ctx context.Context, path string, progress func(Progress)) (*treelist.List[string], error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	tf, err := openFile(ctx, path)
	if err != nil {
		return nil, err
	}
	defer tf.cast.Close()
	lines, ok := tf.cast.Sub(ctx, 64)
	if !ok {
		tf.file.Close()
		return nil, interruption(ctx)
	}
	var wg sync.WaitGroup
	if progress != nil {
		if ticks, ok := tf.cast.Sub(ctx, 64); ok {
			wg.Add(1)
			go func() {
				defer wg.Done()
				reportProgress(ticks, tf.info.Size(), progress)
			}()
		}
	}
	go tf.publishLines()
	list := treelist.New[string]()
	err = collectLines(ctx, lines, list)
	tf.cast.Close() // unblocks the reader on early return
	wg.Wait()
	if err != nil {
		tracer().Errorf("textlist: loading %s: %v", path, err)
		return nil, err
	}
	tracer().Debugf("textlist: loaded %d lines from %s", list.Len(), path)
	if progress != nil {
		progress(Progress{Lines: list.Len(), Bytes: tf.info.Size(), Size: tf.info.Size(), Done: true})
	}
	return list, nil
}

// openFile opens an OS file for reading, checking that it is a regular file.
func openFile(ctx context.Context, path string) (*textFile, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return nil, err
	} else if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s", ErrNotRegularFile, path)
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return &textFile{
		path: path,
		info: fi,
		file: file,
		cast: caster.New(ctx),
	}, nil
}

// publishLines reads lines from the file and broadcasts them. It ends with
// a loadFinished message, unless the caster has been closed.
func (tf *textFile) publishLines() {
	defer tf.file.Close()
	r := bufio.NewReader(tf.file)
	var offset int64
	for n := 1; ; n++ {
		s, err := r.ReadString('\n')
		if len(s) > 0 {
			offset += int64(len(s))
			s = strings.TrimSuffix(strings.TrimSuffix(s, "\n"), "\r")
			if !utf8.ValidString(s) {
				tf.cast.Pub(loadFinished{err: fmt.Errorf("%w: %s line %d", ErrInvalidUTF8, tf.path, n)})
				return
			}
			if !tf.cast.Pub(lineLoaded{text: s, offset: offset}) {
				return
			}
		}
		if err == io.EOF {
			tf.cast.Pub(loadFinished{})
			return
		} else if err != nil {
			tf.cast.Pub(loadFinished{err: err})
			return
		}
	}
}

func collectLines(ctx context.Context, ch <-chan interface{}, list *treelist.List[string]) error {
	for msg := range ch {
		switch m := msg.(type) {
		case lineLoaded:
			if err := list.PushBack(m.text); err != nil {
				return err
			}
		case loadFinished:
			return m.err
		}
	}
	return interruption(ctx)
}

func reportProgress(ch <-chan interface{}, size int64, progress func(Progress)) {
	lines := 0
	for msg := range ch {
		switch m := msg.(type) {
		case lineLoaded:
			lines++
			if lines%progressInterval == 0 {
				progress(Progress{Lines: lines, Bytes: m.offset, Size: size})
			}
		case loadFinished:
			return
		}
	}
}

func interruption(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return ErrLoadInterrupted
}
