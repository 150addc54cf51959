package inspect

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/npillmayer/treelist"
	"golang.org/x/term"
)

// Options control the output of Dump. A nil *Options selects defaults.
type Options struct {
	Width   int                            // maximum line width; 0 means terminal width
	Indent  int                            // columns per tree level; 0 means 4
	Details bool                           // append size, height and balance of each node
	Colors  bool                           // color nodes by balance factor
	Palette map[int]*color.Color           // colors per balance factor, optional
	Label   func(value interface{}) string // formats element values, optional
}

const (
	defaultIndent = 4
	defaultWidth  = 80
)

// Print outputs the tree of l to stdout, with options derived from the
// current terminal.
func Print[T any](l *treelist.List[T]) error {
	return Dump(os.Stdout, l, &Options{Colors: !color.NoColor})
}

// Dump writes the tree of l to w, one node per line.
func Dump[T any](w io.Writer, l *treelist.List[T], opts *Options) error {
	opts = normalize(opts)
	var infos []treelist.NodeInfo[T]
	l.WalkStructure(func(info treelist.NodeInfo[T]) bool {
		infos = append(infos, info)
		return true
	})
	if len(infos) == 0 {
		_, err := io.WriteString(w, "(empty)\n")
		return err
	}
	// reverse in-order puts right subtrees on top
	for i := len(infos) - 1; i >= 0; i-- {
		if err := dumpNode(w, infos[i], opts); err != nil {
			tracer().Errorf("inspect: %v", err)
			return err
		}
	}
	return nil
}

func dumpNode[T any](w io.Writer, info treelist.NodeInfo[T], opts *Options) error {
	indent := strings.Repeat(" ", info.Depth*opts.Indent)
	label := opts.Label(info.Value)
	if opts.Details {
		label += fmt.Sprintf(" #%d h=%d b=%+d", info.Size, info.Height, info.Balance)
	}
	label = truncate(label, opts.Width-len(indent))
	if _, err := io.WriteString(w, indent); err != nil {
		return err
	}
	if opts.Colors {
		c := opts.Palette[info.Balance]
		if c == nil {
			c = alarm
		}
		if _, err := c.Fprint(w, label); err != nil {
			return err
		}
	} else if _, err := io.WriteString(w, label); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

func truncate(s string, width int) string {
	r := []rune(s)
	if width < 1 {
		return "…"
	} else if len(r) <= width {
		return s
	}
	return string(r[:width-1]) + "…"
}

// alarm colors nodes with a balance factor missing from the palette.
var alarm = func() *color.Color {
	c := color.New(color.FgRed, color.Bold)
	c.EnableColor()
	return c
}()

// colorsEnabled returns copies of the colors in palette, forced to output
// colors. Colors of the caller stay untouched.
func colorsEnabled(palette map[int]*color.Color) map[int]*color.Color {
	enabled := make(map[int]*color.Color, len(palette))
	for b, c := range palette {
		if c == nil {
			continue
		}
		cc := *c
		cc.EnableColor()
		enabled[b] = &cc
	}
	return enabled
}

func makeDefaultPalette() map[int]*color.Color {
	return map[int]*color.Color{
		-1: color.New(color.FgYellow),
		0:  color.New(color.FgGreen),
		+1: color.New(color.FgCyan),
	}
}

func normalize(opts *Options) *Options {
	o := Options{}
	if opts != nil {
		o = *opts
	}
	if o.Width <= 0 {
		o.Width = terminalWidth()
	}
	if o.Indent <= 0 {
		o.Indent = defaultIndent
	}
	if o.Palette == nil {
		o.Palette = makeDefaultPalette()
	}
	if o.Colors {
		o.Palette = colorsEnabled(o.Palette)
	}
	if o.Label == nil {
		o.Label = func(v interface{}) string { return fmt.Sprintf("%v", v) }
	}
	return &o
}

// terminalWidth checks whether stdout is a terminal, and if so returns its
// width.
func terminalWidth() int {
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		w, _, err := term.GetSize(fd)
		if err == nil && w > 0 {
			return w
		}
		tracer().Infof("inspect: cannot read terminal size: %v", err)
	}
	return defaultWidth
}
