// Package align positions a fixed size box within a buffer
package align

import "git.sr.ht/~rockorager/ly"

// Center returns a view centered vertically and horizontally within the
// parent buffer
func Center(parent ly.Buffer, cols int, rows int) ly.Buffer {
	pCols, pRows := parent.Size()
	row := (pRows / 2) - (rows / 2)
	col := (pCols / 2) - (cols / 2)
	return sub(parent, col, row, cols, rows)
}

func TopLeft(parent ly.Buffer, cols int, rows int) ly.Buffer {
	return sub(parent, 0, 0, cols, rows)
}

func TopMiddle(parent ly.Buffer, cols int, rows int) ly.Buffer {
	pCols, _ := parent.Size()
	col := (pCols / 2) - (cols / 2)
	return sub(parent, col, 0, cols, rows)
}

func TopRight(parent ly.Buffer, cols int, rows int) ly.Buffer {
	pCols, _ := parent.Size()
	col := pCols - cols
	return sub(parent, col, 0, cols, rows)
}

func BottomLeft(parent ly.Buffer, cols int, rows int) ly.Buffer {
	_, pRows := parent.Size()
	row := pRows - rows
	return sub(parent, 0, row, cols, rows)
}

func BottomMiddle(parent ly.Buffer, cols int, rows int) ly.Buffer {
	pCols, pRows := parent.Size()
	row := pRows - rows
	col := (pCols / 2) - (cols / 2)
	return sub(parent, col, row, cols, rows)
}

func BottomRight(parent ly.Buffer, cols int, rows int) ly.Buffer {
	pCols, pRows := parent.Size()
	row := pRows - rows
	col := pCols - cols
	return sub(parent, col, row, cols, rows)
}

// sub shrinks a box which does not fit in the parent so the view never
// extends past it
func sub(parent ly.Buffer, col int, row int, cols int, rows int) ly.Buffer {
	pCols, pRows := parent.Size()
	if cols > pCols {
		cols = pCols
	}
	if rows > pRows {
		rows = pRows
	}
	if col < 0 {
		col = 0
	}
	if row < 0 {
		row = 0
	}
	return parent.SubBuffer(col, row, cols, rows)
}

// Widget renders a child Widget in a box of Cols x Rows positioned within
// the buffer by Position
type Widget struct {
	Child    ly.Widget
	Cols     int
	Rows     int
	Position func(parent ly.Buffer, cols int, rows int) ly.Buffer
}

func (w *Widget) Render(buf ly.Buffer) {
	if w.Child == nil {
		return
	}
	pos := w.Position
	if pos == nil {
		pos = Center
	}
	w.Child.Render(pos(buf, w.Cols, w.Rows))
}
