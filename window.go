package ly

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-runewidth"
	"golang.org/x/exp/slog"

	"git.sr.ht/~rockorager/ly/term"
)

// Window is the screen compositor. Widgets paint the next frame into the back
// buffer; Render compares it to the front buffer, which holds what the
// terminal currently shows, and writes only the cells which changed.
type Window struct {
	front Buffer
	back  Buffer

	width  int
	height int

	defaultFg Color
	defaultBg Color

	w    *writer
	size func() (int, int, error)
	log  *slog.Logger

	// refresh forces the next render to write every cell
	refresh bool
	// running terminal state, carried between frames
	fg         Color
	bg         Color
	styleKnown bool

	stats Stats
}

// Stats describe the most recent frame
type Stats struct {
	Frames  int // total frames rendered
	Cells   int // cells written in the last frame
	Moves   int // cursor moves in the last frame
	Bytes   int // bytes written in the last frame
	Refresh bool
}

// NewWindow returns a Window sized to the terminal. An error querying the
// size of the terminal is returned to the caller.
func NewWindow(opts Options) (*Window, error) {
	win := &Window{
		defaultFg: opts.DefaultForeground,
		defaultBg: opts.DefaultBackground,
		size:      opts.Size,
		log:       opts.Logger,
		refresh:   true,
	}
	if win.defaultFg == 0 {
		win.defaultFg = White
	}
	if win.defaultBg == 0 {
		win.defaultBg = Black
	}
	out := opts.Output
	if out == nil {
		out = os.Stdout
	}
	win.w = newWriter(out, opts.SynchronizedUpdate)
	if win.size == nil {
		win.size = stdoutSize
	}
	if win.log == nil {
		win.log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	cols, rows, err := win.size()
	if err != nil {
		return nil, fmt.Errorf("couldn't get terminal size: %w", err)
	}
	win.allocate(cols, rows)
	return win, nil
}

func stdoutSize() (int, int, error) {
	size, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return 0, 0, err
	}
	return size.Cols, size.Rows, nil
}

func (win *Window) allocate(cols int, rows int) {
	win.front = NewBuffer(cols, rows, win.defaultFg, win.defaultBg)
	win.back = NewBuffer(cols, rows, win.defaultFg, win.defaultBg)
	win.width = win.front.Width()
	win.height = win.front.Height()
	win.refresh = true
}

// Back returns a view of the whole frame under construction
func (win *Window) Back() Buffer {
	return win.back
}

// SubBuffer returns a view of part of the frame under construction
func (win *Window) SubBuffer(x int, y int, width int, height int) Buffer {
	return win.back.SubBuffer(x, y, width, height)
}

// Size returns the size of the window in cells
func (win *Window) Size() (width int, height int) {
	return win.width, win.height
}

// Stats returns statistics about the most recent frame
func (win *Window) Stats() Stats {
	return win.stats
}

// Refresh forces the next Render to write the entire screen. Traditionally,
// this should be bound to Ctrl+l
func (win *Window) Refresh() {
	win.refresh = true
}

// Resize queries the terminal size and, if it changed, reallocates both
// buffers at the new size. Prior contents are lost and the next Render
// redraws everything. It is safe to call every frame. Resize reports whether
// the size changed.
func (win *Window) Resize() (bool, error) {
	cols, rows, err := win.size()
	if err != nil {
		return false, fmt.Errorf("couldn't get terminal size: %w", err)
	}
	if cols == win.width && rows == win.height {
		return false, nil
	}
	win.log.Debug("resize", "cols", cols, "rows", rows)
	win.allocate(cols, rows)
	return true, nil
}

// Render writes the difference between the back and front buffers to the
// terminal, moves the back buffer into the front, and blanks the back buffer
// for the next frame.
func (win *Window) Render() error {
	var (
		refresh = win.refresh
		// position of the terminal cursor, -1 when unknown
		curCol = -1
		curRow = -1
		reset  = blank(win.defaultFg, win.defaultBg)
	)
	if refresh {
		win.styleKnown = false
	}
	win.stats = Stats{
		Frames:  win.stats.Frames + 1,
		Refresh: refresh,
	}
	for row := 0; row < win.height; row += 1 {
		for col := 0; col < win.width; col += 1 {
			next := win.back.Get(col, row)
			last := win.front.Get(col, row)
			if *next == *last && !refresh {
				*next = reset
				continue
			}
			*last = *next
			if next.Glyph == "" {
				// The wide grapheme to the left covers this
				// column
				*next = reset
				continue
			}
			if curCol != col || curRow != row {
				_, _ = win.w.Printf(cup, row+1, col+1)
				win.stats.Moves += 1
			}
			if !win.styleKnown || win.fg != next.Foreground {
				win.fg = next.Foreground
				_, _ = win.w.WriteString(win.fg.EncodeFg())
			}
			if !win.styleKnown || win.bg != next.Background {
				win.bg = next.Background
				_, _ = win.w.WriteString(win.bg.EncodeBg())
			}
			win.styleKnown = true
			_, _ = win.w.WriteString(next.Glyph)
			win.stats.Cells += 1

			curCol = col + advance(next.Glyph)
			curRow = row
			*next = reset
		}
	}
	win.refresh = false
	n, err := win.w.Flush()
	win.stats.Bytes = n
	if err != nil {
		// The terminal no longer matches front
		win.refresh = true
		return fmt.Errorf("couldn't write frame: %w", err)
	}
	win.log.Debug("rendered",
		"cells", win.stats.Cells,
		"moves", win.stats.Moves,
		"bytes", n,
		"refresh", refresh,
	)
	return nil
}

// advance returns how many columns the terminal cursor moves when glyph is
// written
func advance(glyph string) int {
	w := runewidth.StringWidth(glyph)
	if w < 1 {
		return 1
	}
	return w
}
