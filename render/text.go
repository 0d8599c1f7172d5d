package render

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/npillmayer/ordtree/btree"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

// ColorMode selects whether Text emits terminal color escape sequences.
type ColorMode int

const (
	ColorAuto   ColorMode = iota // colorize if the writer is a terminal
	ColorAlways                  // always colorize
	ColorNever                   // never colorize
)

// Options control the plain-text dump. The zero value prints keys only and
// colorizes terminals.
type Options struct {
	Values bool // print key=value instead of keys only
	Color  ColorMode
	Indent string // indentation per level, defaults to two spaces
}

// palette holds the colors for the parts of a dump line.
type palette struct {
	inner, leaf, key, value *color.Color
}

func makePalette(enabled bool) palette {
	p := palette{
		inner: color.New(color.FgMagenta, color.Bold),
		leaf:  color.New(color.FgGreen),
		key:   color.New(color.FgBlue),
		value: color.New(color.FgYellow),
	}
	for _, c := range []*color.Color{p.inner, p.leaf, p.key, p.value} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

var setupGraphemes sync.Once

// displayWidth returns the number of terminal cells s occupies.
func displayWidth(s string) int {
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	return uax11.StringWidth(grapheme.StringFromString(s), uax11.LatinContext)
}

// isTerminal checks whether w is connected to a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Text writes an indented dump of tree to w, one node per line. Inner nodes
// are marked with "node", leaves with "leaf". Cells are padded to a common
// display width, so keys of sibling nodes line up.
func Text[K, V any](w io.Writer, tree *btree.Tree[K, V], opts *Options) error {
	if opts == nil {
		opts = &Options{}
	}
	indent := opts.Indent
	if indent == "" {
		indent = "  "
	}
	colorize := opts.Color == ColorAlways || (opts.Color == ColorAuto && isTerminal(w))
	p := makePalette(colorize)

	type line struct {
		depth int
		leaf  bool
		keys  []string
		vals  []string
	}
	var lines []line
	cellWidth := 0
	tree.Walk(func(v btree.NodeView[K, V]) bool {
		l := line{depth: v.Depth(), leaf: v.IsLeaf()}
		for i, k := range v.Keys() {
			ks := fmt.Sprint(k)
			cell := ks
			l.keys = append(l.keys, ks)
			if opts.Values {
				vs := fmt.Sprint(v.Values()[i])
				l.vals = append(l.vals, vs)
				cell = ks + "=" + vs
			}
			cellWidth = max(cellWidth, displayWidth(cell))
		}
		lines = append(lines, l)
		return true
	})
	tracer().Debugf("render: dumping %d nodes, cell width %d", len(lines), cellWidth)

	var b strings.Builder
	for _, l := range lines {
		b.WriteString(strings.Repeat(indent, l.depth))
		if l.leaf {
			b.WriteString(p.leaf.Sprint("leaf"))
		} else {
			b.WriteString(p.inner.Sprint("node"))
		}
		for i, k := range l.keys {
			b.WriteByte(' ')
			width := displayWidth(k)
			b.WriteString(p.key.Sprint(k))
			if opts.Values {
				b.WriteByte('=')
				b.WriteString(p.value.Sprint(l.vals[i]))
				width += 1 + displayWidth(l.vals[i])
			}
			if i < len(l.keys)-1 {
				b.WriteString(strings.Repeat(" ", cellWidth-width))
			}
		}
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())
	return err
}
