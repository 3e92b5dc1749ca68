// Command fill bounces a colored box around the screen. It is a stress test
// for the compositor: each frame only the cells the box entered or left are
// written.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"golang.org/x/exp/slog"

	"git.sr.ht/~rockorager/ly"
	"git.sr.ht/~rockorager/ly/term"
)

type model struct {
	rowOff int
	colOff int

	colDir int
	rowDir int

	cols int
	rows int

	color    int
	colorDir int
}

func (m *model) update() {
	if m.color == 255 {
		m.colorDir = -1
	}
	if m.color == 0 {
		m.colorDir = 1
	}
	m.color += m.colorDir
	m.colOff += m.colDir
	m.rowOff += m.rowDir
}

func (m *model) Render(buf ly.Buffer) {
	cols, rows := buf.Size()
	if m.colOff+m.cols >= cols {
		m.colDir = -1
	}
	if m.colOff <= 0 {
		m.colDir = 1
	}
	if m.rowOff+m.rows >= rows {
		m.rowDir = -1
	}
	if m.rowOff <= 0 {
		m.rowDir = 1
	}
	bg := ly.RGBColor(uint8(m.color), 64, uint8(255-m.color))
	buf.SubBuffer(m.colOff, m.rowOff, m.cols, m.rows).Clear(ly.White, bg)
}

func main() {
	interval := flag.Duration("interval", 10*time.Millisecond, "time between frames")
	flag.Parse()

	log := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      slog.LevelDebug,
		TimeFormat: "15:04:05.000",
	}))
	if err := run(*interval, log); err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}
}

func run(interval time.Duration, log *slog.Logger) error {
	console, err := term.Open(int(os.Stdin.Fd()), os.Stdout)
	if err != nil {
		return err
	}
	defer console.Close()

	win, err := ly.NewWindow(ly.Options{
		SynchronizedUpdate: true,
		Logger:             log,
	})
	if err != nil {
		return err
	}

	quit := make(chan struct{})
	go func() {
		// any key quits
		b := make([]byte, 1)
		_, _ = os.Stdin.Read(b)
		close(quit)
	}()

	m := &model{
		cols: 16,
		rows: 8,
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	var cells, bytes int
	for {
		select {
		case <-quit:
			stats := win.Stats()
			fmt.Fprintf(os.Stderr, "%d frames, %d cells, %d bytes\n", stats.Frames, cells, bytes)
			return nil
		case <-ticker.C:
		}
		if _, err := win.Resize(); err != nil {
			return err
		}
		m.update()
		win.Back().Render(m)
		if err := win.Render(); err != nil {
			return err
		}
		stats := win.Stats()
		cells += stats.Cells
		bytes += stats.Bytes
	}
}
