package textlist

import (
	"fmt"
	"strings"
	"sync"

	"github.com/npillmayer/treelist"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
)

var setupGraphemes sync.Once

// graphemes splits s into grapheme clusters. The empty string has none.
func graphemes(s string) []string {
	if s == "" {
		return nil
	}
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	gstr := grapheme.StringFromString(s)
	clusters := make([]string, gstr.Len())
	for i := range clusters {
		clusters[i] = gstr.Nth(i)
	}
	return clusters
}

// FromString creates a list holding the grapheme clusters of s, in order.
func FromString(s string) *treelist.List[string] {
	return treelist.FromSlice(graphemes(s))
}

// FromRunes creates a list holding the runes of s, in order.
func FromRunes(s string) *treelist.List[rune] {
	return treelist.FromSlice([]rune(s))
}

// InsertString inserts the grapheme clusters of s into l, starting at
// position at. On error, l is left unchanged.
func InsertString(l *treelist.List[string], at int, s string) error {
	if at < 0 || at > l.Len() {
		return fmt.Errorf("%w: insert text at %d, length %d", treelist.ErrIndexOutOfBounds, at, l.Len())
	}
	for i, c := range graphemes(s) {
		if err := l.Insert(at+i, c); err != nil {
			// roll back; positions at … at+i-1 are known to be valid
			for j := i - 1; j >= 0; j-- {
				_, _ = l.Erase(at + j)
			}
			return err
		}
	}
	return nil
}

// String concatenates the elements of l.
func String(l *treelist.List[string]) string {
	var sb strings.Builder
	for s := range l.Values() {
		sb.WriteString(s)
	}
	return sb.String()
}

// Width returns the display width of the text in l, measured in fixed-width
// positions ("en"s). If context is nil, uax11.LatinContext is used.
func Width(l *treelist.List[string], context *uax11.Context) int {
	s := String(l)
	if s == "" {
		return 0
	}
	if context == nil {
		context = uax11.LatinContext
	}
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	return uax11.StringWidth(grapheme.StringFromString(s), context)
}
