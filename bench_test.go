package ly_test

import (
	"io"
	"testing"

	"git.sr.ht/~rockorager/ly"
)

const benchText = "😀🔮🌍📝test string ｗｉｄｅ é"

func BenchmarkCharacters(b *testing.B) {
	for i := 0; i < b.N; i += 1 {
		_ = ly.Characters(benchText)
	}
}

func BenchmarkPrint(b *testing.B) {
	buf := ly.NewBuffer(80, 24, ly.White, ly.Black)
	for i := 0; i < b.N; i += 1 {
		buf.Print(benchText)
	}
}

func BenchmarkRender(b *testing.B) {
	newWindow := func(b *testing.B) *ly.Window {
		win, err := ly.NewWindow(ly.Options{
			Output: io.Discard,
			Size: func() (int, int, error) {
				return 200, 60, nil
			},
		})
		if err != nil {
			b.Fatal(err)
		}
		return win
	}

	b.Run("static", func(b *testing.B) {
		win := newWindow(b)
		for i := 0; i < b.N; i += 1 {
			win.Back().Print(benchText)
			if err := win.Render(); err != nil {
				b.Fatal(err)
			}
		}
	})
	b.Run("full", func(b *testing.B) {
		win := newWindow(b)
		for i := 0; i < b.N; i += 1 {
			win.Refresh()
			win.Back().Print(benchText)
			if err := win.Render(); err != nil {
				b.Fatal(err)
			}
		}
	})
}
