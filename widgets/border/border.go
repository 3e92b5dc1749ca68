// Package border draws frames around buffers
package border

import "git.sr.ht/~rockorager/ly"

// Glyphs is the set of graphemes a frame is drawn with
type Glyphs struct {
	Horizontal  string
	Vertical    string
	TopLeft     string
	TopRight    string
	BottomRight string
	BottomLeft  string
}

var (
	ASCII = Glyphs{
		Horizontal:  "-",
		Vertical:    "|",
		TopLeft:     "+",
		TopRight:    "+",
		BottomRight: "+",
		BottomLeft:  "+",
	}
	Rounded = Glyphs{
		Horizontal:  "─",
		Vertical:    "│",
		TopLeft:     "╭",
		TopRight:    "╮",
		BottomRight: "╯",
		BottomLeft:  "╰",
	}
)

// Block is a frame around the edge of its buffer. Buffers smaller than 2x2
// are left alone.
type Block struct {
	Foreground ly.Color
	// Glyphs defaults to ASCII
	Glyphs *Glyphs
}

func (b *Block) Render(buf ly.Buffer) {
	g := ASCII
	if b.Glyphs != nil {
		g = *b.Glyphs
	}
	All(buf, g, b.Foreground)
}

// Content draws the frame. A Block fills the whole area it is given.
func (b *Block) Content(buf ly.Buffer) {
	b.Render(buf)
}

func (b *Block) ContentWidth(buf ly.Buffer) int {
	return buf.Width()
}

func (b *Block) ContentHeight(buf ly.Buffer) int {
	return buf.Height()
}

// Inner returns the part of buf inside a frame drawn by All
func Inner(buf ly.Buffer) ly.Buffer {
	w, h := buf.Size()
	if w < 2 || h < 2 {
		return buf.SubBuffer(0, 0, 0, 0)
	}
	return buf.SubBuffer(1, 1, w-2, h-2)
}

func set(buf ly.Buffer, col int, row int, glyph string, fg ly.Color) {
	cell := buf.Get(col, row)
	cell.Glyph = glyph
	if fg != 0 {
		cell.Foreground = fg
	}
}

// All draws a frame around buf and returns the part inside it
func All(buf ly.Buffer, g Glyphs, fg ly.Color) ly.Buffer {
	w, h := buf.Size()
	if w < 2 || h < 2 {
		return Inner(buf)
	}
	set(buf, 0, 0, g.TopLeft, fg)
	set(buf, 0, h-1, g.BottomLeft, fg)
	set(buf, w-1, 0, g.TopRight, fg)
	set(buf, w-1, h-1, g.BottomRight, fg)
	for i := 1; i < (w - 1); i += 1 {
		set(buf, i, 0, g.Horizontal, fg)
		set(buf, i, h-1, g.Horizontal, fg)
	}
	for i := 1; i < (h - 1); i += 1 {
		set(buf, 0, i, g.Vertical, fg)
		set(buf, w-1, i, g.Vertical, fg)
	}
	return Inner(buf)
}

// Left draws a line down the left edge of buf and returns the rest
func Left(buf ly.Buffer, g Glyphs, fg ly.Color) ly.Buffer {
	w, h := buf.Size()
	if w < 1 {
		return buf
	}
	for i := 0; i < h; i += 1 {
		set(buf, 0, i, g.Vertical, fg)
	}
	return buf.SubBuffer(1, 0, w-1, h)
}

// Right draws a line down the right edge of buf and returns the rest
func Right(buf ly.Buffer, g Glyphs, fg ly.Color) ly.Buffer {
	w, h := buf.Size()
	if w < 1 {
		return buf
	}
	for i := 0; i < h; i += 1 {
		set(buf, w-1, i, g.Vertical, fg)
	}
	return buf.SubBuffer(0, 0, w-1, h)
}

// Top draws a line along the top edge of buf and returns the rest
func Top(buf ly.Buffer, g Glyphs, fg ly.Color) ly.Buffer {
	w, h := buf.Size()
	if h < 1 {
		return buf
	}
	for i := 0; i < w; i += 1 {
		set(buf, i, 0, g.Horizontal, fg)
	}
	return buf.SubBuffer(0, 1, w, h-1)
}

// Bottom draws a line along the bottom edge of buf and returns the rest
func Bottom(buf ly.Buffer, g Glyphs, fg ly.Color) ly.Buffer {
	w, h := buf.Size()
	if h < 1 {
		return buf
	}
	for i := 0; i < w; i += 1 {
		set(buf, i, h-1, g.Horizontal, fg)
	}
	return buf.SubBuffer(0, 0, w, h-1)
}
