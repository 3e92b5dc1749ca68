package main

import (
	"os"
	"time"

	"git.sr.ht/~rockorager/ly"
	"git.sr.ht/~rockorager/ly/term"
	"git.sr.ht/~rockorager/ly/widgets/align"
)

func main() {
	console, err := term.Open(int(os.Stdin.Fd()), os.Stdout)
	if err != nil {
		panic(err)
	}
	defer console.Close()
	win, err := ly.NewWindow(ly.Options{})
	if err != nil {
		panic(err)
	}

	quit := make(chan struct{})
	go func() {
		b := make([]byte, 1)
		_, _ = os.Stdin.Read(b)
		close(quit)
	}()

	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()
	for {
		buf := win.Back()
		first := align.Center(buf, 13, 1)
		second := align.Center(buf, 21, 1).SubBuffer(0, 1, 21, 1)
		first.Print("Hello, World!")
		second.PrintStyled("Press any key to exit", ly.Cyan, ly.Black)
		if err := win.Render(); err != nil {
			panic(err)
		}
		select {
		case <-quit:
			return
		case <-ticker.C:
			if _, err := win.Resize(); err != nil {
				panic(err)
			}
		}
	}
}
