package ly

import (
	"io"

	"golang.org/x/exp/slog"
)

// Options configure a Window. The zero value is ready to use
type Options struct {
	// Output receives the escape sequences. Defaults to os.Stdout
	Output io.Writer
	// Size reports the terminal's current size in cells. Defaults to the
	// size of the terminal attached to os.Stdout
	Size func() (cols int, rows int, err error)
	// DefaultForeground is the foreground of a blank cell. Defaults to
	// White
	DefaultForeground Color
	// DefaultBackground is the background of a blank cell. Defaults to
	// Black
	DefaultBackground Color
	// SynchronizedUpdate wraps every frame in DEC mode 2026 so supporting
	// terminals present it atomically
	SynchronizedUpdate bool
	// Logger is an optional slog.Logger that the Window will log to. ly
	// uses stdlib levels for logging
	Logger *slog.Logger
}
