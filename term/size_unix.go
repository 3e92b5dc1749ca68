//go:build aix || darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris || zos

package term

import (
	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// GetSize reports the size of the terminal referred to by fd
func GetSize(fd int) (Size, error) {
	ws, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ)
	if err != nil {
		cols, rows, err := term.GetSize(fd)
		if err != nil {
			return Size{}, err
		}
		return Size{
			Cols: cols,
			Rows: rows,
		}, nil
	}
	return Size{
		Cols:   int(ws.Col),
		Rows:   int(ws.Row),
		XPixel: int(ws.Xpixel),
		YPixel: int(ws.Ypixel),
	}, nil
}
