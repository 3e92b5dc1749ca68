// Package text is a block of wrapped text
package text

import "git.sr.ht/~rockorager/ly"

// Text prints its text wrapped to the width of the buffer. A zero color
// leaves that color of the cells as it is.
type Text struct {
	Text       string
	Foreground ly.Color
	Background ly.Color
}

func New(s string) *Text {
	return &Text{Text: s}
}

func (t *Text) Render(buf ly.Buffer) {
	buf.PrintFunc(t.Text, func(c *ly.Cell, glyph string) {
		c.Glyph = glyph
		if t.Foreground != 0 {
			c.Foreground = t.Foreground
		}
		if t.Background != 0 {
			c.Background = t.Background
		}
	})
}

func (t *Text) Content(buf ly.Buffer) {
	t.Render(buf)
}

// ContentWidth is the widest wrapped line
func (t *Text) ContentWidth(buf ly.Buffer) int {
	cols, _ := ly.Measure(t.Text, buf.Width())
	return cols
}

// ContentHeight is the number of wrapped lines
func (t *Text) ContentHeight(buf ly.Buffer) int {
	_, rows := ly.Measure(t.Text, buf.Width())
	return rows
}
