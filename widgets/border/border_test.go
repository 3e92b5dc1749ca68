package border

import (
	"testing"

	"git.sr.ht/~rockorager/ly"
	"github.com/stretchr/testify/assert"
)

func TestBlock(t *testing.T) {
	buf := ly.NewBuffer(4, 3, ly.White, ly.Black)
	b := &Block{Foreground: ly.Cyan}
	b.Render(buf)
	assert.Equal(t, "+--+\n|  |\n+--+", buf.String())
	assert.Equal(t, ly.Cyan, buf.Get(0, 0).Foreground)
	assert.Equal(t, ly.White, buf.Get(1, 1).Foreground)
	assert.Equal(t, ly.Black, buf.Get(0, 0).Background)
}

func TestBlockRounded(t *testing.T) {
	buf := ly.NewBuffer(3, 2, ly.White, ly.Black)
	b := &Block{Glyphs: &Rounded}
	b.Render(buf)
	assert.Equal(t, "╭─╮\n╰─╯", buf.String())
	assert.Equal(t, ly.White, buf.Get(0, 0).Foreground)
}

func TestBlockTooSmall(t *testing.T) {
	for _, size := range [][2]int{{1, 5}, {5, 1}, {0, 0}} {
		buf := ly.NewBuffer(size[0], size[1], ly.White, ly.Black)
		before := buf.String()
		(&Block{}).Render(buf)
		assert.Equal(t, before, buf.String())
	}
}

func TestInner(t *testing.T) {
	buf := ly.NewBuffer(5, 4, ly.White, ly.Black)
	inner := All(buf, ASCII, 0)
	w, h := inner.Size()
	assert.Equal(t, 3, w)
	assert.Equal(t, 2, h)
	inner.Print("abcdef")
	assert.Equal(t, "+---+\n|abc|\n|def|\n+---+", buf.String())

	w, h = Inner(ly.NewBuffer(1, 1, 0, 0)).Size()
	assert.Equal(t, 0, w)
	assert.Equal(t, 0, h)
}

func TestEdges(t *testing.T) {
	buf := ly.NewBuffer(4, 3, ly.White, ly.Black)
	rest := Top(buf, ASCII, 0)
	rest = Left(rest, ASCII, 0)
	rest = Right(rest, ASCII, 0)
	rest = Bottom(rest, ASCII, 0)
	w, h := rest.Size()
	assert.Equal(t, 2, w)
	assert.Equal(t, 1, h)
	rest.Print("xy")
	assert.Equal(t, "----\n|xy|\n|--|", buf.String())
}

func TestContenter(t *testing.T) {
	buf := ly.NewBuffer(6, 2, 0, 0)
	b := &Block{}
	assert.Equal(t, 6, b.ContentWidth(buf))
	assert.Equal(t, 2, b.ContentHeight(buf))
}
