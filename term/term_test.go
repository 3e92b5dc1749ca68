//go:build linux || darwin || freebsd || netbsd || openbsd

package term

import (
	"bytes"
	"testing"

	"github.com/creack/pty"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openPty(t *testing.T, cols, rows uint16) int {
	t.Helper()
	ptmx, tty, err := pty.Open()
	if err != nil {
		t.Skipf("no pty available: %v", err)
	}
	t.Cleanup(func() {
		_ = tty.Close()
		_ = ptmx.Close()
	})
	require.NoError(t, pty.Setsize(ptmx, &pty.Winsize{Rows: rows, Cols: cols}))
	return int(tty.Fd())
}

func TestGetSize(t *testing.T) {
	fd := openPty(t, 80, 24)
	size, err := GetSize(fd)
	require.NoError(t, err)
	assert.Equal(t, 80, size.Cols)
	assert.Equal(t, 24, size.Rows)
}

func TestGetSizeNotATerminal(t *testing.T) {
	_, err := GetSize(-1)
	assert.Error(t, err)
}

func TestConsole(t *testing.T) {
	fd := openPty(t, 10, 3)
	out := &bytes.Buffer{}

	c, err := Open(fd, out)
	require.NoError(t, err)
	assert.Contains(t, out.String(), altScreenEnter)
	assert.Contains(t, out.String(), cursorHide)

	size, err := c.Size()
	require.NoError(t, err)
	assert.Equal(t, Size{Cols: 10, Rows: 3}, Size{Cols: size.Cols, Rows: size.Rows})

	require.NoError(t, c.Close())
	assert.Contains(t, out.String(), altScreenLeave)
	assert.Contains(t, out.String(), cursorShow)
}
