// Package term talks to the controlling terminal: it reports the terminal's
// dimensions and switches it in and out of raw, alternate-screen mode.
package term

import (
	"fmt"
	"io"

	"golang.org/x/term"
)

const (
	altScreenEnter = "\x1b[?1049h"
	altScreenLeave = "\x1b[?1049l"
	cursorHome     = "\x1b[H"
	cursorHide     = "\x1b[?25l"
	cursorShow     = "\x1b[?25h"
	sgrReset       = "\x1b[m"
	clearScreen    = "\x1b[2J"
)

// Size is the size of a terminal
type Size struct {
	Cols   int
	Rows   int
	XPixel int
	YPixel int
}

// Console is a terminal which has been put in raw mode and switched to the
// alternate screen
type Console struct {
	fd    int
	out   io.Writer
	state *term.State
}

// Open puts the terminal referred to by fd into raw mode, enters the
// alternate screen on out and hides the cursor
func Open(fd int, out io.Writer) (*Console, error) {
	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("term: make raw: %w", err)
	}
	c := &Console{
		fd:    fd,
		out:   out,
		state: state,
	}
	_, err = io.WriteString(out, altScreenEnter+clearScreen+cursorHome+cursorHide)
	if err != nil {
		_ = term.Restore(fd, state)
		return nil, err
	}
	return c, nil
}

// Size reports the console's current size
func (c *Console) Size() (Size, error) {
	return GetSize(c.fd)
}

// ResetCursor moves the cursor to the upper left corner
func (c *Console) ResetCursor() error {
	_, err := io.WriteString(c.out, cursorHome)
	return err
}

// Close leaves the alternate screen, shows the cursor and restores the
// terminal to the state it was in before Open
func (c *Console) Close() error {
	_, _ = io.WriteString(c.out, sgrReset+cursorShow+altScreenLeave)
	return term.Restore(c.fd, c.state)
}
