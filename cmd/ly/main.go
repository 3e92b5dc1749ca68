// Command ly renders a layout file to the terminal until q is pressed
package main

import (
	_ "embed"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
	"golang.org/x/exp/slog"

	"git.sr.ht/~rockorager/ly"
	"git.sr.ht/~rockorager/ly/element"
	"git.sr.ht/~rockorager/ly/layout"
	"git.sr.ht/~rockorager/ly/term"
	"git.sr.ht/~rockorager/ly/value"
	"git.sr.ht/~rockorager/ly/widgets/spinner"
	"git.sr.ht/~rockorager/ly/widgets/text"
)

//go:embed default.yaml
var defaultLayout string

var log *slog.Logger

func main() {
	layoutPath := flag.String("layout", "", "layout file to render (default: built in)")
	logPath := flag.String("log", "", "write debug logs to this file")
	fps := flag.Int("fps", 30, "frames per second")
	sync := flag.Bool("sync", false, "wrap frames in synchronized updates")
	flag.Parse()

	log = slog.New(slog.NewTextHandler(io.Discard, nil))
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		defer f.Close()
		log = slog.New(tint.NewHandler(f, &tint.Options{
			AddSource:  true,
			Level:      slog.LevelDebug,
			TimeFormat: "15:04:05.000",
		}))
	}

	if *fps < 1 {
		fmt.Fprintln(os.Stderr, "fps must be at least 1")
		os.Exit(2)
	}

	root, err := loadLayout(*layoutPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := run(root, *fps, *sync); err != nil {
		log.Error("exiting", "error", err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadLayout(path string) (*element.Element, error) {
	if path == "" {
		return layout.Load(strings.NewReader(defaultLayout))
	}
	return layout.LoadFile(path)
}

func run(root *element.Element, fps int, sync bool) error {
	console, err := term.Open(int(os.Stdin.Fd()), os.Stdout)
	if err != nil {
		return err
	}
	defer console.Close()

	win, err := ly.NewWindow(ly.Options{
		Output: os.Stdout,
		Size: func() (int, int, error) {
			size, err := console.Size()
			return size.Cols, size.Rows, err
		},
		SynchronizedUpdate: sync,
		Logger:             log,
	})
	if err != nil {
		return err
	}

	input := make(chan byte, 64)
	go readInput(os.Stdin, input)

	state := value.NewState()
	spinners := root.FindClass(layout.SpinnerClass)
	status := root.FindID("status")

	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()
	start := time.Now()
	var tick int64
	for !state.ShouldExit() {
		select {
		case b, ok := <-input:
			if !ok {
				state.Set(value.KeyExit, value.Bool(true))
				continue
			}
			handleKey(state, win, b)
			continue
		case <-ticker.C:
		}

		tick += 1
		state.Set(value.KeyTick, value.Int(tick))
		state.Set(value.KeyFPS, value.Float(float64(tick)/time.Since(start).Seconds()))

		resized, err := win.Resize()
		if err != nil {
			return err
		}
		if resized {
			cols, rows := win.Size()
			log.Debug("resized", "cols", cols, "rows", rows)
		}

		for _, el := range spinners {
			if s, ok := el.Content().(*spinner.Model); ok {
				s.Update(tick)
			}
		}
		if status != nil {
			if txt, ok := status.Content().(*text.Text); ok {
				txt.Text = statusLine(state)
			}
		}

		win.Back().Render(root)
		if err := win.Render(); err != nil {
			return err
		}
	}
	log.Info("quit", "ticks", tick)
	return nil
}

func handleKey(state *value.State, win *ly.Window, b byte) {
	state.Set("key", value.String(string(rune(b))))
	switch b {
	case 'q', 0x03:
		state.Set(value.KeyExit, value.Bool(true))
	case 'r':
		win.Refresh()
	}
}

func statusLine(state *value.State) string {
	fps, _ := state.Get(value.KeyFPS).AsFloat()
	line := fmt.Sprintf("tick %d  %.1f fps", state.Tick(), fps)
	if key := state.Get("key"); !key.Empty() {
		line += fmt.Sprintf("  last key %q", key.String())
	}
	return line
}

// readInput forwards bytes read from r until it fails
func readInput(r io.Reader, ch chan<- byte) {
	defer close(ch)
	buf := make([]byte, 64)
	for {
		n, err := r.Read(buf)
		for _, b := range buf[:n] {
			ch <- b
		}
		if err != nil {
			if err != io.EOF {
				log.Error("reading input", "error", err)
			}
			return
		}
	}
}
