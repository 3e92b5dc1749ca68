package ly

import (
	"fmt"
	"strings"
)

// grid is the backing store for a family of Buffers. It is only ever reached
// through a Buffer.
type grid struct {
	cells [][]Cell // indexed [row][col]
	cols  int
	rows  int

	// scratch absorbs reads and writes on a zero-area grid
	scratch Cell
}

func newGrid(cols int, rows int, fg Color, bg Color) *grid {
	if cols <= 0 || rows <= 0 {
		cols, rows = 0, 0
	}
	g := &grid{
		cells: make([][]Cell, rows),
		cols:  cols,
		rows:  rows,
	}
	for row := range g.cells {
		g.cells[row] = make([]Cell, cols)
		for col := range g.cells[row] {
			g.cells[row][col] = blank(fg, bg)
		}
	}
	return g
}

// at returns the cell at col, row clamped into the grid
func (g *grid) at(col int, row int) *Cell {
	if g.cols == 0 || g.rows == 0 {
		g.scratch = Cell{}
		return &g.scratch
	}
	col = clamp(col, 0, g.cols-1)
	row = clamp(row, 0, g.rows-1)
	return &g.cells[row][col]
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

// Buffer is a rectangular view onto a grid of Cells. Buffers derived from one
// another with SubBuffer share the same grid: a write through any view is
// visible through every overlapping view. Copying a Buffer copies the view,
// never the cells.
type Buffer struct {
	grid   *grid
	col    int // col offset into the grid
	row    int // row offset into the grid
	width  int
	height int
}

// NewBuffer allocates a new grid of width x height cells, each a space with
// the given colors, and returns a view of the whole grid
func NewBuffer(width int, height int, fg Color, bg Color) Buffer {
	g := newGrid(width, height, fg, bg)
	return Buffer{
		grid:   g,
		width:  g.cols,
		height: g.rows,
	}
}

// Get returns the cell at x, y relative to the view. Coordinates which fall
// outside the grid are clamped to the nearest valid column and row, so Get
// never fails.
func (b Buffer) Get(x int, y int) *Cell {
	if b.grid == nil {
		return &Cell{}
	}
	return b.grid.at(b.col+x, b.row+y)
}

// SubBuffer returns a view sharing b's grid with its origin at x, y relative
// to b. The size is not validated: reads beyond the grid are clamped by Get.
func (b Buffer) SubBuffer(x int, y int, width int, height int) Buffer {
	return Buffer{
		grid:   b.grid,
		col:    b.col + x,
		row:    b.row + y,
		width:  width,
		height: height,
	}
}

// Size returns the width and height of the view, in cells
func (b Buffer) Size() (width int, height int) {
	return b.width, b.height
}

func (b Buffer) Width() int {
	return b.width
}

func (b Buffer) Height() int {
	return b.height
}

// Fill sets every cell of the view to cell
func (b Buffer) Fill(cell Cell) {
	for row := 0; row < b.height; row += 1 {
		for col := 0; col < b.width; col += 1 {
			*b.Get(col, row) = cell
		}
	}
}

// Clear fills the view with spaces in the given colors
func (b Buffer) Clear(fg Color, bg Color) {
	b.Fill(blank(fg, bg))
}

// Widget is anything which paints itself into a Buffer
type Widget interface {
	Render(Buffer)
}

// TickWidget is a Widget whose output depends on the frame counter
type TickWidget interface {
	RenderTick(buf Buffer, tick int64)
}

// Render paints v into the buffer. Widgets paint themselves; any other value
// is converted to text and printed.
func (b Buffer) Render(v any) {
	switch v := v.(type) {
	case Widget:
		v.Render(b)
	case TickWidget:
		v.RenderTick(b, 0)
	case fmt.Stringer:
		b.Print(v.String())
	case string:
		b.Print(v)
	default:
		b.Print(fmt.Sprint(v))
	}
}

// String returns the glyphs of the view, one line per row
func (b Buffer) String() string {
	sb := strings.Builder{}
	for row := 0; row < b.height; row += 1 {
		if row > 0 {
			sb.WriteByte('\n')
		}
		for col := 0; col < b.width; col += 1 {
			sb.WriteString(b.Get(col, row).Glyph)
		}
	}
	return sb.String()
}
