// Package element lays out a tree of Elements into a ly.Buffer. Each Element
// paints its own content at the top of its box and stacks its children
// vertically beneath it.
package element

import (
	"git.sr.ht/~rockorager/ly"
	"git.sr.ht/~rockorager/ly/value"
)

// Contenter is the part of an Element which differs between kinds of
// Element: what it paints and how much room that takes. Both sizes are
// measured against the padded area of the Element and are clamped to it.
type Contenter interface {
	Content(buf ly.Buffer)
	ContentWidth(buf ly.Buffer) int
	ContentHeight(buf ly.Buffer) int
}

// Element is a node of the layout tree
type Element struct {
	ID string

	// Margin is the space kept around the Element by its parent. Padding is
	// the space inside the Element's box kept free of content and children.
	Margin  Edges
	Padding Edges

	// Width and Height limit the box given to the Element by its parent.
	// Relative units resolve against the parent's padded area. Auto takes
	// all the remaining space.
	Width  Unit
	Height Unit

	// Transparent elements do not paint their fg and bg attributes or their
	// Decoration
	Transparent bool

	// Decoration is painted over the whole box, before padding is applied
	Decoration ly.Widget

	content  Contenter
	classes  map[string]struct{}
	attrs    map[string]value.Value
	children []*Element
	parent   *Element
}

type empty struct{}

func (empty) Content(ly.Buffer)           {}
func (empty) ContentWidth(ly.Buffer) int  { return 0 }
func (empty) ContentHeight(ly.Buffer) int { return 0 }

// New returns an Element painting c. A nil Contenter paints nothing.
func New(id string, c Contenter) *Element {
	if c == nil {
		c = empty{}
	}
	return &Element{
		ID:      id,
		content: c,
		classes: make(map[string]struct{}),
		attrs:   make(map[string]value.Value),
	}
}

// NewRoot returns an Element with no content, which only holds children
func NewRoot() *Element {
	return New("", nil)
}

func (e *Element) Content() Contenter {
	return e.content
}

func (e *Element) SetContent(c Contenter) {
	if c == nil {
		c = empty{}
	}
	e.content = c
}

// Render paints the Element and its children into buf. If the padding does
// not leave at least one cell in each direction, nothing is painted.
func (e *Element) Render(buf ly.Buffer) {
	width, height := buf.Size()
	pad := e.Padding.Resolve(width, height)
	if !pad.Fits(width, height) {
		return
	}
	if !e.Transparent {
		e.paint(buf)
	}
	usable := buf.SubBuffer(
		pad.Left,
		pad.Top,
		width-pad.Left-pad.Right,
		height-pad.Top-pad.Bottom,
	)
	c := e.content
	if c == nil {
		c = empty{}
	}
	cw := clamp(c.ContentWidth(usable), 0, usable.Width())
	ch := clamp(c.ContentHeight(usable), 0, usable.Height())
	if cw > 0 && ch > 0 {
		c.Content(usable.SubBuffer(0, 0, cw, ch))
	}
	e.layout(usable, ch)
}

// paint applies the fg and bg attributes and the Decoration to the box
func (e *Element) paint(buf ly.Buffer) {
	fg, hasFg := e.color("fg")
	bg, hasBg := e.color("bg")
	if hasFg || hasBg {
		width, height := buf.Size()
		for row := 0; row < height; row += 1 {
			for col := 0; col < width; col += 1 {
				cell := buf.Get(col, row)
				cell.Glyph = " "
				if hasFg {
					cell.Foreground = fg
				}
				if hasBg {
					cell.Background = bg
				}
			}
		}
	}
	if e.Decoration != nil {
		e.Decoration.Render(buf)
	}
}

// color returns the color named by the attribute key. Attributes which are
// missing or do not name a color are ignored.
func (e *Element) color(key string) (ly.Color, bool) {
	s, err := e.Attr(key).AsString()
	if err != nil {
		return 0, false
	}
	c, err := ly.ParseColor(s)
	if err != nil {
		return 0, false
	}
	return c, true
}

// layout stacks the children vertically inside usable, beginning offset rows
// down. A child whose margin does not fit in the remaining space ends the
// stack.
func (e *Element) layout(usable ly.Buffer, offset int) {
	width, height := usable.Size()
	for _, child := range e.children {
		remaining := height - offset
		m := child.Margin.Resolve(width, remaining)
		if !m.Fits(width, remaining) {
			return
		}
		w := width - m.Left - m.Right
		h := remaining - m.Top - m.Bottom
		if !child.Width.IsAuto() {
			w = min(w, child.Width.Resolve(width))
		}
		if !child.Height.IsAuto() {
			h = min(h, child.Height.Resolve(height))
		}
		child.Render(usable.SubBuffer(m.Left, offset+m.Top, w, h))
		offset += m.Top + h + m.Bottom
	}
}

func clamp(v, lo, hi int) int {
	switch {
	case v < lo:
		return lo
	case v > hi:
		return hi
	default:
		return v
	}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
