package ly

// Print writes text into the buffer starting at the top left. Text wraps at
// the width of the buffer and a line break begins a new row. Anything which
// overflows the height is dropped. Only glyphs are written, the colors of the
// cells are left as they are. Print returns the position following the last
// grapheme written.
func (b Buffer) Print(text string) (col int, row int) {
	return b.print(text, func(c *Cell, glyph string) {
		c.Glyph = glyph
	})
}

// PrintStyled is like Print but also sets the colors of each written cell
func (b Buffer) PrintStyled(text string, fg Color, bg Color) (col int, row int) {
	return b.print(text, func(c *Cell, glyph string) {
		c.Glyph = glyph
		c.Foreground = fg
		c.Background = bg
	})
}

// PrintFunc lays text out like Print, calling set for every cell written.
// The trailing columns of a wide grapheme are passed an empty glyph.
func (b Buffer) PrintFunc(text string, set func(c *Cell, glyph string)) (col int, row int) {
	return b.print(text, set)
}

func (b Buffer) print(text string, set func(*Cell, string)) (col int, row int) {
	cols, rows := b.Size()
	if cols <= 0 || rows <= 0 {
		return 0, 0
	}
	return wrap(text, cols, rows, func(col int, row int, char Character) {
		set(b.Get(col, row), char.Grapheme)
		// the trailing columns of a wide grapheme are continuation cells
		for i := 1; i < char.Width && col+i < cols; i += 1 {
			set(b.Get(col+i, row), "")
		}
	})
}

// Measure returns the size text takes when printed into a buffer of the given
// width: the widest row and the number of rows
func Measure(text string, width int) (cols int, rows int) {
	if text == "" {
		return 0, 0
	}
	if width <= 0 {
		return 0, 0
	}
	_, last := wrap(text, width, -1, func(col int, row int, char Character) {
		if end := col + char.Width; end > cols {
			cols = end
		}
	})
	if cols > width {
		cols = width
	}
	return cols, last + 1
}

// wrap lays text out in rows of width cells, calling put for each grapheme
// with its position. A negative rows means no height limit. Widths are at
// least 1.
func wrap(text string, cols int, rows int, put func(col int, row int, char Character)) (col int, row int) {
	if cols <= 0 || rows == 0 {
		return 0, 0
	}
	for _, char := range Characters(text) {
		if rows > 0 && row >= rows {
			break
		}
		if char.Grapheme == "\n" || char.Grapheme == "\r\n" {
			col = 0
			row += 1
			continue
		}
		if char.Width < 1 {
			char.Width = 1
		}
		if col+char.Width > cols && col > 0 {
			col = 0
			row += 1
			if rows > 0 && row >= rows {
				break
			}
		}
		put(col, row, char)
		col += char.Width
	}
	return col, row
}
